package pom

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Writer persists manifests on a filesystem.
type Writer struct {
	fs afero.Fs
}

// NewWriter returns a Writer on fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// NewOSWriter returns a Writer on the OS filesystem.
func NewOSWriter() *Writer {
	return NewWriter(afero.NewOsFs())
}

// Write renders m and stores it at path, creating parent directories.
func (w *Writer) Write(m *types.Manifest, path string) error {
	logger := logging.GetLogger("pom")

	data, err := Render(m)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "Unable to render pom file.")
	}

	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "Unable to create directory %s", dir).
			WithDetail("path", dir)
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return writeError(err, path)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr == nil {
		writeErr = w.fs.Rename(tmpName, path)
	}
	if writeErr != nil {
		if rmErr := w.fs.Remove(tmpName); rmErr != nil {
			logger.Debug().Err(rmErr).Str("path", tmpName).Msg("Failed to remove temporary file")
		}
		return writeError(writeErr, path)
	}

	logger.Info().Str("path", path).Int("bytes", len(data)).Msg("Wrote BOM")
	return nil
}

func writeError(err error, path string) error {
	return errors.Wrap(err, errors.ErrFileWrite, "Unable to write pom file.").WithDetail("path", path)
}
