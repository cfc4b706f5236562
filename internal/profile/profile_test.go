package profile

import (
	"testing"

	"github.com/jakoblorz/carton/internal/models"
	"github.com/jakoblorz/carton/internal/workspace"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	debug := Resolve(models.ProfileDebug)
	require.Equal(t, "target/debug", debug.Dir)
	require.Equal(t, "debug", debug.BuildType)
	require.Equal(t, "target/debug/compile_commands.json", debug.CompileDatabase())
	require.Equal(t, "target/debug/src/demo", debug.Artifact("demo"))

	release := Resolve(models.ProfileRelease)
	require.Equal(t, "target/release", release.Dir)
	require.Equal(t, "release", release.BuildType)
	require.Equal(t, "target/release/src/demo", release.Artifact("demo"))
	require.Equal(t, "target/release/meson-logs/testlog.txt", release.TestLog())
}

func TestIsConfigured(t *testing.T) {
	fs := workspace.NewProjectBuilder("/p").
		WithManifest("demo", models.KindBinary).
		Configured(models.ProfileRelease).
		Build()

	require.True(t, IsConfigured(fs, "/p", Resolve(models.ProfileRelease).Dir))
	require.False(t, IsConfigured(fs, "/p", Resolve(models.ProfileDebug).Dir))

	fs.AddFile("/p/target/debug", []byte("not a directory"))
	require.False(t, IsConfigured(fs, "/p", Resolve(models.ProfileDebug).Dir))

	require.NoError(t, fs.RemoveAll("/p/target"))
	require.False(t, IsConfigured(fs, "/p", Resolve(models.ProfileRelease).Dir))
}
