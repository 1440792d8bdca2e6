package importer

import (
	"errors"
	"fmt"
	"os"
)

// ErrInputUnavailable is wrapped by every error that means the export could
// not be obtained at all.
var ErrInputUnavailable = errors.New("inventory export unavailable")

// Source yields the raw bytes of an inventory export.
//
// Precondition: name identifies an export within the source.
// Postcondition: returns the export bytes, or an error wrapping
// ErrInputUnavailable.
type Source interface {
	Load(name string) ([]byte, error)
}

// FileSource reads exports from the local filesystem.
type FileSource struct{}

// Load reads the file at path.
func (FileSource) Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return data, nil
}
