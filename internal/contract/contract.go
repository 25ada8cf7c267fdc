// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"io"

	"github.com/huangsam/rankviz/schema"
)

// DatasetLoader reads experiment results into a dataset.
// This allows the command layer to be tested without touching the filesystem.
type DatasetLoader interface {
	// LoadFile reads and validates the dataset at path.
	LoadFile(path string) (*schema.Dataset, error)

	// Load reads and validates a dataset of the given format from r.
	Load(r io.Reader, format schema.DatasetFormat) (*schema.Dataset, error)
}
