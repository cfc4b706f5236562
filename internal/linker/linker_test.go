package linker

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/stretchr/testify/require"
)

const (
	debugDB   = "target/debug/compile_commands.json"
	releaseDB = "target/release/compile_commands.json"
)

func TestRelink_CreatesLink(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/p/"+debugDB, []byte("[]"))

	require.NoError(t, Relink(fs, debugDB, "/p/compile_commands.json"))

	target, err := fs.Readlink("/p/compile_commands.json")
	require.NoError(t, err)
	require.Equal(t, debugDB, target)
	requireNoTempLinks(t, fs)
}

func TestRelink_ReplacesLinkFromOtherProfile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/p/"+debugDB, []byte("[]"))
	fs.AddFile("/p/"+releaseDB, []byte("[]"))
	fs.AddSymlink(releaseDB, "/p/compile_commands.json")

	require.NoError(t, Relink(fs, debugDB, "/p/compile_commands.json"))

	target, err := fs.Readlink("/p/compile_commands.json")
	require.NoError(t, err)
	require.Equal(t, debugDB, target)
	requireNoTempLinks(t, fs)
}

func TestRelink_ReplacesDanglingLink(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/p")
	fs.AddSymlink(releaseDB, "/p/compile_commands.json")

	require.NoError(t, Relink(fs, debugDB, "/p/compile_commands.json"))

	target, err := fs.Readlink("/p/compile_commands.json")
	require.NoError(t, err)
	require.Equal(t, debugDB, target)
}

func TestRelink_RemovesRegularFile(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/p/compile_commands.json", []byte("hand written"))

	require.NoError(t, Relink(fs, debugDB, "/p/compile_commands.json"))

	target, err := fs.Readlink("/p/compile_commands.json")
	require.NoError(t, err)
	require.Equal(t, debugDB, target)
}

func TestRelink_ConflictingDirectory(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/p/compile_commands.json/keep.txt", []byte("user data"))

	err := Relink(fs, debugDB, "/p/compile_commands.json")
	require.ErrorIs(t, err, cerrors.LinkReplaceFailed)
	require.True(t, fs.Exists("/p/compile_commands.json/keep.txt"))
	requireNoTempLinks(t, fs)
}

func TestRelink_RemoveFailure(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/p/compile_commands.json", []byte("locked"))
	fs.RemoveErrors["/p/compile_commands.json"] = errors.New("operation not permitted")

	err := Relink(fs, debugDB, "/p/compile_commands.json")
	require.ErrorIs(t, err, cerrors.LinkReplaceFailed)
	require.Contains(t, err.Error(), "operation not permitted")
}

func TestUnlink(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddSymlink(debugDB, "/p/compile_commands.json")

	require.NoError(t, Unlink(fs, "/p/compile_commands.json"))
	require.False(t, fs.Exists("/p/compile_commands.json"))
	require.NoError(t, Unlink(fs, "/p/compile_commands.json"))
}

func TestRelink_OSFileSystem(t *testing.T) {
	root := t.TempDir()
	fs := filesystem.NewOSFileSystem()
	for _, db := range []string{debugDB, releaseDB} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.Dir(db)), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(root, db), []byte(db), 0644))
	}
	link := filepath.Join(root, "compile_commands.json")

	require.NoError(t, Relink(fs, releaseDB, link))
	require.NoError(t, Relink(fs, debugDB, link))

	data, err := os.ReadFile(link)
	require.NoError(t, err)
	require.Equal(t, debugDB, string(data))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasPrefix(e.Name(), "."), "leftover %s", e.Name())
	}
}

func requireNoTempLinks(t *testing.T, fs *filesystem.MockFileSystem) {
	t.Helper()
	for path := range fs.GetFiles() {
		require.False(t, strings.HasPrefix(filepath.Base(path), ".compile_commands.json."), "leftover %s", path)
	}
}
