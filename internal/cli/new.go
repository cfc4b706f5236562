package cli

import (
	"errors"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/models"
	"github.com/jakoblorz/carton/internal/tui"
	"github.com/spf13/cobra"
)

// NewCommand handles the new command
type NewCommand struct {
	app         *app
	bin         bool
	lib         bool
	interactive bool
}

// NewNewCommand creates a new new command
func NewNewCommand(a *app) *cobra.Command {
	cmd := &NewCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "new [--bin | --lib | -i] <path>",
		Short: "Create a new carton project",
		Long: `Create a new C project at <path>. The project is named after the last
path segment. --bin (the default) creates an application, --lib a library
with a public header and a test executable.`,
		Args: exactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolVar(&cmd.bin, "bin", false, "Use a binary (application) template [default]")
	cobraCmd.Flags().BoolVar(&cmd.lib, "lib", false, "Use a library template")
	cobraCmd.Flags().BoolVarP(&cmd.interactive, "interactive", "i", false, "Choose the template interactively")
	cobraCmd.MarkFlagsMutuallyExclusive("bin", "lib", "interactive")

	return cobraCmd
}

// Run executes the new command
func (c *NewCommand) Run(cmd *cobra.Command, args []string) error {
	path := args[0]

	kind, err := c.kind(path)
	if err != nil {
		return err
	}

	return c.app.orchestrator(cmd).NewProject(cmd.Context(), kind, path)
}

func (c *NewCommand) kind(path string) (models.ProjectKind, error) {
	switch {
	case c.lib:
		return models.KindLibrary, nil
	case c.interactive:
		if !c.app.isTerminal() {
			return "", cerrors.New(cerrors.Usage, "--interactive requires a terminal; pass --bin or --lib instead")
		}
		kind, err := c.app.prompt.Run(path)
		if errors.Is(err, tui.ErrAborted) {
			return "", cerrors.Wrap(cerrors.Usage, err, "no project created")
		}
		if err != nil {
			return "", cerrors.Wrap(cerrors.IOFailed, err, "failed to run prompt")
		}
		return kind, nil
	default:
		return models.KindBinary, nil
	}
}
