package workspace

import (
	"testing"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/models"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceDetect_Binary(t *testing.T) {
	fs := NewProjectBuilder("/home/dev/demo").
		WithManifest("demo", models.KindBinary).
		Build()

	ws := New(fs)
	require.NoError(t, ws.Detect())
	require.Equal(t, "/home/dev/demo", ws.RootPath)
	require.Equal(t, "demo", ws.Manifest.Name)
	require.Equal(t, models.KindBinary, ws.Manifest.Kind)
	require.Equal(t, "0.1.0", ws.Manifest.Version)
	require.True(t, ws.IsProject())
}

func TestWorkspaceDetect_TypeAlias(t *testing.T) {
	fs := NewProjectBuilder("/p").
		WithRawManifest("name: mylib\ntype: lib\n").
		Build()

	ws := New(fs)
	require.NoError(t, ws.Detect())
	require.Equal(t, models.KindLibrary, ws.Manifest.Kind)
	require.Empty(t, ws.Manifest.Version)
}

func TestWorkspaceDetect_NotAProject(t *testing.T) {
	fs := filesystem.NewMockFileSystem()

	ws := New(fs)
	err := ws.Detect()
	require.ErrorIs(t, err, cerrors.NotAProject)
	require.False(t, ws.IsProject())
}

func TestWorkspaceDetect_DoesNotWalkUp(t *testing.T) {
	fs := NewProjectBuilder("/p").
		WithManifest("demo", models.KindBinary).
		AddFile("src/main.c", "int main(void) { return 0; }").
		Build()
	fs.SetCurrentDir("/p/src")

	err := New(fs).Detect()
	require.ErrorIs(t, err, cerrors.NotAProject)
	require.Contains(t, err.Error(), "/p/carton.yaml")
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		kind     cerrors.Kind
		contains string
	}{
		{name: "empty", manifest: "", kind: cerrors.MalformedManifest, contains: "empty"},
		{name: "not yaml", manifest: "name: [unterminated", kind: cerrors.MalformedManifest},
		{name: "scalar document", manifest: "just text", kind: cerrors.MalformedManifest},
		{name: "missing name", manifest: "kind: bin\n", kind: cerrors.MalformedManifest, contains: `"name"`},
		{name: "name not string", manifest: "name: [a]\nkind: bin\n", kind: cerrors.MalformedManifest, contains: "must be a string"},
		{name: "name not filesystem safe", manifest: "name: a/b\nkind: bin\n", kind: cerrors.MalformedManifest},
		{name: "missing kind", manifest: "name: demo\n", kind: cerrors.MalformedManifest, contains: `"kind"`},
		{name: "kind not string", manifest: "name: demo\nkind: 3\n", kind: cerrors.MalformedManifest, contains: "must be a string"},
		{name: "unsupported kind", manifest: "name: demo\nkind: dylib\n", kind: cerrors.UnsupportedKind, contains: "dylib"},
		{name: "version not string", manifest: "name: demo\nkind: bin\nversion: 1.5\n", kind: cerrors.MalformedManifest},
		{name: "version not semver", manifest: "name: demo\nkind: bin\nversion: banana\n", kind: cerrors.MalformedManifest, contains: "banana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest("/p/carton.yaml", []byte(tt.manifest))
			require.Error(t, err)
			require.Equal(t, tt.kind, cerrors.KindOf(err))
			if tt.contains != "" {
				require.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestParseManifest_KindPreferredOverType(t *testing.T) {
	m, err := ParseManifest("carton.yaml", []byte("name: demo\nkind: lib\ntype: bin\n"))
	require.NoError(t, err)
	require.Equal(t, models.KindLibrary, m.Kind)
}

func TestValidateProjectName(t *testing.T) {
	for _, name := range []string{"demo", "my-lib", "my_lib", "lib2", "gtk+3", "a.b"} {
		require.NoError(t, ValidateProjectName(name), name)
	}
	for _, name := range []string{"", ".", "..", "-flag", ".hidden", "has space", "a/b", "naïve"} {
		require.Error(t, ValidateProjectName(name), name)
	}
}

func TestReadManifest_BuildDescriptionWithoutManifest(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/p/meson.build", []byte("project('p', 'c')"))

	_, err := ReadManifest(fs, "/p")
	require.ErrorIs(t, err, cerrors.NotAProject)
	require.Contains(t, err.Error(), "meson.build alone")
}
