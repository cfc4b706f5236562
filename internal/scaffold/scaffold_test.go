package scaffold

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/denormal/go-gitignore"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_Layouts(t *testing.T) {
	templates, err := Builtin()
	require.NoError(t, err)

	paths := func(kind models.ProjectKind) []string {
		var out []string
		for _, tmpl := range ForKind(templates, kind) {
			out = append(out, tmpl.Path)
		}
		return out
	}

	require.ElementsMatch(t, []string{
		"carton.yaml",
		"meson.build",
		"src/meson.build",
		"src/main.c",
		".clang-format",
		".gitignore",
	}, paths(models.KindBinary))

	require.ElementsMatch(t, []string{
		"carton.yaml",
		"meson.build",
		"include/meson.build",
		"include/{{ .Project }}.h",
		"src/meson.build",
		"src/lib.c",
		"tests/meson.build",
		"tests/test.c",
		".clang-format",
		".gitignore",
	}, paths(models.KindLibrary))
}

func TestRender_TrimsAndTerminates(t *testing.T) {
	out, err := Render("t", "\n\n  hello {{ .Project }}  \n\n\n", NewData("demo", models.KindBinary))
	require.NoError(t, err)
	require.Equal(t, "hello demo\n", out)
}

func TestRender_SprigFunctions(t *testing.T) {
	data := Data{Project: "demo", Kind: models.KindLibrary}
	out, err := Render("t", `{{ .Project | quote }} {{ .Version | default "0.1.0" }} {{ .Project | upper }}`, data)
	require.NoError(t, err)
	require.Equal(t, "\"demo\" 0.1.0 DEMO\n", out)
}

func TestRender_Errors(t *testing.T) {
	data := NewData("demo", models.KindBinary)

	_, err := Render("t", "{{ .Project ", data)
	require.Error(t, err)

	_, err = Render("t", "{{ .Missing }}", data)
	require.Error(t, err)

	_, err = Render("t", `{{ "{{ .Project }}" }}`, data)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpanded")
}

func TestLoad_RejectsBadFrontmatter(t *testing.T) {
	tests := map[string]string{
		"no matter": "just a body\n",
		"no path":   "---\nkinds: [bin]\n---\nbody\n",
		"no kinds":  "---\npath: a.txt\n---\nbody\n",
		"bad kind":  "---\npath: a.txt\nkinds: [dylib]\n---\nbody\n",
		"bad yaml":  "---\npath: [a\n---\nbody\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"templates/x.tmpl": &fstest.MapFile{Data: []byte(content)},
			}
			_, err := Load(fsys)
			require.Error(t, err)
		})
	}
}

func TestMaterialize_Library(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/mylib")

	m, err := NewMaterializer(fs)
	require.NoError(t, err)

	written, err := m.Materialize("/work/mylib", models.KindLibrary, "mylib")
	require.NoError(t, err)
	require.Len(t, written, 10)

	require.Equal(t, []string{
		".clang-format",
		".gitignore",
		"carton.yaml",
		"include/",
		"include/meson.build",
		"include/mylib.h",
		"meson.build",
		"src/",
		"src/lib.c",
		"src/meson.build",
		"tests/",
		"tests/meson.build",
		"tests/test.c",
	}, fs.Tree("/work/mylib"))

	for _, rel := range written {
		content, err := fs.ReadFile("/work/mylib/" + rel)
		require.NoError(t, err)
		require.NotContains(t, string(content), "{{", rel)
		require.True(t, strings.HasSuffix(string(content), "\n"), rel)
		require.False(t, strings.HasSuffix(string(content), "\n\n"), rel)
	}

	lib, err := fs.ReadFile("/work/mylib/src/lib.c")
	require.NoError(t, err)
	require.Contains(t, string(lib), "#include <mylib.h>")

	test, err := fs.ReadFile("/work/mylib/tests/test.c")
	require.NoError(t, err)
	require.Contains(t, string(test), "#include <mylib.h>")

	manifest, err := fs.ReadFile("/work/mylib/carton.yaml")
	require.NoError(t, err)
	require.Equal(t, "name: \"mylib\"\nkind: lib\nversion: 0.1.0\n", string(manifest))
}

func TestMaterialize_BinarySnapshot(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/hello")

	m, err := NewMaterializer(fs)
	require.NoError(t, err)

	written, err := m.Materialize("/work/hello", models.KindBinary, "hello")
	require.NoError(t, err)
	require.NotContains(t, written, "include/meson.build")
	require.NotContains(t, written, "tests/test.c")

	var b strings.Builder
	for _, path := range fs.Tree("/work/hello") {
		if strings.HasSuffix(path, "/") {
			continue
		}
		content, err := fs.ReadFile("/work/hello/" + path)
		require.NoError(t, err)
		b.WriteString("==> " + path + "\n")
		b.Write(content)
	}
	snaps.MatchSnapshot(t, b.String())
}

func TestMaterialize_GitIgnoreCoversBuildState(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/hello")

	m, err := NewMaterializer(fs)
	require.NoError(t, err)
	_, err = m.Materialize("/work/hello", models.KindBinary, "hello")
	require.NoError(t, err)

	data, err := fs.ReadFile("/work/hello/.gitignore")
	require.NoError(t, err)
	ignore := gitignore.New(bytes.NewReader(data), "/work/hello", nil)

	tests := []struct {
		path    string
		isDir   bool
		ignored bool
	}{
		{"target", true, true},
		{"compile_commands.json", false, true},
		{".compile_commands.json.V1StGXR8", false, true},
		{"src/main.c", false, false},
		{"carton.yaml", false, false},
	}
	for _, tt := range tests {
		match := ignore.Relative(tt.path, tt.isDir)
		require.Equal(t, tt.ignored, match != nil && match.Ignore(), tt.path)
	}
}

var errDiskFull = errors.New("disk full")

func TestMaterialize_WriteFailureKeepsPartialTree(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/work/hello")
	fs.WriteErrors["/work/hello/src/main.c"] = errDiskFull

	m, err := NewMaterializer(fs)
	require.NoError(t, err)

	_, err = m.Materialize("/work/hello", models.KindBinary, "hello")
	require.ErrorIs(t, err, errDiskFull)
	require.True(t, fs.Exists("/work/hello/src"))
}

