package cli

import (
	"github.com/jakoblorz/carton/internal/models"
	"github.com/spf13/cobra"
)

// BuildCommand handles the build command
type BuildCommand struct {
	app     *app
	release bool
}

// NewBuildCommand creates a new build command
func NewBuildCommand(a *app) *cobra.Command {
	cmd := &BuildCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "build [--release]",
		Short: "Compile the current project",
		Long: `Configure target/<profile> with meson if it does not exist yet, compile it
with ninja and point compile_commands.json at its compile database.`,
		Args: noArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVarP(&cmd.release, "release", "r", false, "Build with the release profile")

	return cobraCmd
}

// Run executes the build command
func (c *BuildCommand) Run(cmd *cobra.Command, args []string) error {
	return c.app.orchestrator(cmd).Build(cmd.Context(), models.ProfileFromRelease(c.release))
}
