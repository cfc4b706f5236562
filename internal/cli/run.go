package cli

import (
	"github.com/jakoblorz/carton/internal/models"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	app     *app
	release bool
}

// NewRunCommand creates a new run command
func NewRunCommand(a *app) *cobra.Command {
	cmd := &RunCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "run [--release] [-- <args>...]",
		Short: "Build and run the project's executable",
		Long: `Build the current binary project and run target/<profile>/src/<name>.
Arguments after -- are passed to the program unchanged, and the program's
exit status becomes carton's.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVarP(&cmd.release, "release", "r", false, "Run the release build")
	cobraCmd.Flags().SetInterspersed(false)

	return cobraCmd
}

// Run executes the run command
func (c *RunCommand) Run(cmd *cobra.Command, args []string) error {
	return c.app.orchestrator(cmd).Run(cmd.Context(), models.ProfileFromRelease(c.release), args)
}
