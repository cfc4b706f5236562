package cli

import (
	"strings"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/toolchain"
	"github.com/jakoblorz/carton/internal/tui"
	"github.com/jakoblorz/carton/internal/workspace"
	"github.com/spf13/cobra"
)

// DoctorCommand handles the doctor command
type DoctorCommand struct {
	app *app
}

// NewDoctorCommand creates a new doctor command
func NewDoctorCommand(a *app) *cobra.Command {
	cmd := &DoctorCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that meson, ninja and git are installed",
		Long: `Look up meson, ninja and git on PATH. Inside a project, also check that
.gitignore ignores target/ and compile_commands.json.`,
		Args: noArgs,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the doctor command
func (c *DoctorCommand) Run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var missing []string
	for _, probe := range toolchain.ProbePrograms(c.app.lookPath, toolchain.DefaultPrograms, "git") {
		switch {
		case probe.Found():
			tui.Status(out, "Found", "%s %s", probe.Program, tui.SubtleStyle.Render(probe.Path))
		case probe.Required:
			tui.Status(out, "Missing", "%s (required)", probe.Program)
			missing = append(missing, probe.Program)
		default:
			tui.Warn(cmd.ErrOrStderr(), "%s not found; new projects will not be put under version control", probe.Program)
		}
	}

	ws := workspace.New(c.app.fs)
	if ws.IsProject() {
		if err := ws.Detect(); err != nil {
			return err
		}
		unignored, err := workspace.UnignoredBuildOutputs(c.app.fs, ws.RootPath)
		if err != nil {
			return cerrors.Wrap(cerrors.IOFailed, err, "failed to check %s", workspace.GitIgnoreFile)
		}
		if len(unignored) > 0 {
			tui.Warn(cmd.ErrOrStderr(), "%s does not ignore %s", workspace.GitIgnoreFile, strings.Join(unignored, ", "))
		} else {
			tui.Status(out, "Ignored", "%s/ and %s", workspace.TargetDirName, workspace.CompileDatabaseFile)
		}
	}

	if len(missing) > 0 {
		return cerrors.New(cerrors.ToolMissing, "required tools not found on PATH: %s", strings.Join(missing, ", "))
	}
	return nil
}
