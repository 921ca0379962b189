package pom

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/testutil"
)

// renameFailFs fails every rename, simulating a filesystem error after the
// content was written.
type renameFailFs struct {
	afero.Fs
}

func (renameFailFs) Rename(oldname, newname string) error {
	return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: os.ErrPermission}
}

func TestWriter_CreatesDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs)

	require.NoError(t, w.Write(sampleManifest(), "/work/target/nested/bom-pom.xml"))

	expected, err := Render(sampleManifest())
	require.NoError(t, err)
	assert.Equal(t, string(expected), testutil.ReadFs(t, fs, "/work/target/nested/bom-pom.xml"))

	entries, err := afero.ReadDir(fs, "/work/target/nested")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriter_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFs(t, fs, "/out/bom-pom.xml", "stale")

	require.NoError(t, NewWriter(fs).Write(sampleManifest(), "/out/bom-pom.xml"))

	assert.Contains(t, testutil.ReadFs(t, fs, "/out/bom-pom.xml"), "<artifactId>acme-bom</artifactId>")
}

func TestWriter_ReadOnlyFilesystem(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := NewWriter(fs).Write(sampleManifest(), "/out/bom-pom.xml")

	require.Error(t, err)
	assert.True(t, errors.IsIOError(err))
}

func TestWriter_FailedRenameLeavesNoFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	testutil.WriteFs(t, mem, "/out/keep.txt", "x")

	err := NewWriter(renameFailFs{mem}).Write(sampleManifest(), "/out/bom-pom.xml")

	require.Error(t, err)
	assert.Equal(t, errors.ErrFileWrite, errors.GetErrorCode(err))
	testutil.AssertNoFileFs(t, mem, "/out/bom-pom.xml")
	entries, readErr := afero.ReadDir(mem, "/out")
	require.NoError(t, readErr)
	assert.Len(t, entries, 1, "temporary file removed")
}
