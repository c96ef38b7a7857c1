// Package export writes assembled meshes to disk.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/plantmesh/pkg/geom"
)

// Supported output formats.
const (
	FormatOBJ    = "obj"
	FormatBinary = "bin"
)

// ErrUnknownFormat is returned for an output format with no writer.
var ErrUnknownFormat = errors.New("unknown output format")

// Write encodes mesh in format and writes it to path, creating the parent
// directory if needed. The OBJ object is named after the file.
func Write(path, format string, mesh *geom.Mesh) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if format != FormatOBJ && format != FormatBinary {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	switch format {
	case FormatOBJ:
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		err = WriteOBJ(f, mesh, name)
	case FormatBinary:
		err = WriteBinary(f, mesh)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
