package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// TempDir creates a temporary directory for tests and returns its path.
// The directory is automatically cleaned up when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// WriteFs writes content to name on fs, creating parent directories.
func WriteFs(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(name), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", name, err)
	}
	if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// ReadFs returns the content of name on fs.
func ReadFs(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, name)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", name, err)
	}
	return string(data)
}

// AssertNoFileFs fails the test if name exists on fs.
func AssertNoFileFs(t *testing.T, fs afero.Fs, name string) {
	t.Helper()
	exists, err := afero.Exists(fs, name)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", name, err)
	}
	if exists {
		t.Errorf("Expected %s not to exist", name)
	}
}
