// Package loader reads experiment result files into schema datasets.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/huangsam/rankviz/schema"
	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by the loader.
var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrInvalidDataset    = errors.New("invalid dataset")
)

// FileLoader decodes and validates dataset files. It implements contract.DatasetLoader.
type FileLoader struct {
	validate *validator.Validate
}

// New returns a FileLoader ready for use.
func New() *FileLoader {
	return &FileLoader{validate: validator.New()}
}

var defaultLoader = New()

// LoadFile reads a dataset with the package default loader.
func LoadFile(path string) (*schema.Dataset, error) {
	return defaultLoader.LoadFile(path)
}

// Load decodes a dataset from r with the package default loader.
func Load(r io.Reader, format schema.DatasetFormat) (*schema.Dataset, error) {
	return defaultLoader.Load(r, format)
}

// FormatOf maps a file extension to its dataset format.
func FormatOf(path string) (schema.DatasetFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return schema.JSONDataset, nil
	case ".yaml", ".yml":
		return schema.YAMLDataset, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads the dataset at path, choosing the decoder by extension.
func (l *FileLoader) LoadFile(path string) (*schema.Dataset, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := l.Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return ds, nil
}

// Load decodes, validates and converts a dataset of the given format.
func (l *FileLoader) Load(r io.Reader, format schema.DatasetFormat) (*schema.Dataset, error) {
	var raw wireDataset
	switch format {
	case schema.JSONDataset:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode json: %v", ErrInvalidDataset, err)
		}
	case schema.YAMLDataset:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidDataset, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := l.validate.Struct(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataset, describeValidation(err))
	}
	if err := checkUnique(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return raw.toDataset(), nil
}

// describeValidation turns validator errors into one readable line.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Namespace()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", fe.Namespace(), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

// checkUnique rejects repeated metric names and ranking positions.
func checkUnique(raw *wireDataset) error {
	names := make(map[string]struct{}, len(raw.MetricConfigs))
	for _, m := range raw.MetricConfigs {
		if _, ok := names[m.MetricName]; ok {
			return fmt.Errorf("metric %q declared more than once", m.MetricName)
		}
		names[m.MetricName] = struct{}{}
	}
	positions := make(map[int]struct{}, len(raw.Ranking))
	for _, r := range raw.Ranking {
		if _, ok := positions[r.Position]; ok {
			return fmt.Errorf("position %d appears more than once", r.Position)
		}
		positions[r.Position] = struct{}{}
	}
	return nil
}
