package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crcsum/internal/adapters/fs"
	"go.trai.ch/crcsum/internal/core/domain"
)

func taskPaths(tasks []domain.FileTask) []string {
	paths := make([]string, len(tasks))
	for i, task := range tasks {
		paths[i] = task.Path
	}
	return paths
}

// setupTree creates:
//
//	dir/
//	  a.txt
//	  b[00000000].bin
//	  download.part
//	  sub/
//	    nested.txt
//	  link -> sub
func setupTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "b[00000000].bin"), "b")
	writeFile(t, filepath.Join(dir, "download.part"), "p")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o750))
	writeFile(t, filepath.Join(dir, "sub", "nested.txt"), "n")
	require.NoError(t, os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "link")))
	return dir
}

func TestLister_Directory(t *testing.T) {
	dir := setupTree(t)

	tasks, err := fs.NewLister().List([]string{dir}, []string{"*.part"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b[00000000].bin"),
	}, taskPaths(tasks))
}

func TestLister_DefaultsToWorkingDirectory(t *testing.T) {
	dir := setupTree(t)
	t.Chdir(dir)

	tasks, err := fs.NewLister().List(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "b[00000000].bin", "download.part"}, taskPaths(tasks))
}

func TestLister_ExplicitFiles(t *testing.T) {
	dir := setupTree(t)
	missing := filepath.Join(dir, "missing.txt")

	tasks, err := fs.NewLister().List([]string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "sub"),
		missing,
		filepath.Join(dir, "download.part"),
	}, []string{"*.part"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		missing,
		filepath.Join(dir, "download.part"),
	}, taskPaths(tasks), "explicit files bypass ignores, directories are dropped")
}

func TestLister_SingleFile(t *testing.T) {
	dir := setupTree(t)
	path := filepath.Join(dir, "a.txt")

	tasks, err := fs.NewLister().List([]string{path}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, taskPaths(tasks))
}

func TestLister_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o700) }) //nolint:gosec // Test directory permissions

	_, err := fs.NewLister().List([]string{locked}, nil)
	require.ErrorIs(t, err, domain.ErrListFailed)
}
