package cli

import (
	"github.com/spf13/cobra"
)

// NewTestCommand creates a new test command
func NewTestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the project's tests in the debug profile",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.orchestrator(cmd).Test(cmd.Context())
		},
	}
}
