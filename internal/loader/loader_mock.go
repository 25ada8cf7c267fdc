package loader

import (
	"io"

	"github.com/huangsam/rankviz/internal/contract"
	"github.com/huangsam/rankviz/schema"
	"github.com/stretchr/testify/mock"
)

// MockDatasetLoader is a mock implementation of DatasetLoader for testing.
type MockDatasetLoader struct {
	mock.Mock
}

var _ contract.DatasetLoader = &MockDatasetLoader{} // Compile-time check
var _ contract.DatasetLoader = &FileLoader{}

// LoadFile implements the DatasetLoader interface.
func (m *MockDatasetLoader) LoadFile(path string) (*schema.Dataset, error) {
	args := m.Called(path)
	ds, _ := args.Get(0).(*schema.Dataset)
	return ds, args.Error(1)
}

// Load implements the DatasetLoader interface.
func (m *MockDatasetLoader) Load(r io.Reader, format schema.DatasetFormat) (*schema.Dataset, error) {
	args := m.Called(r, format)
	ds, _ := args.Get(0).(*schema.Dataset)
	return ds, args.Error(1)
}
