package cli

import (
	"github.com/spf13/cobra"
)

// NewCleanCommand creates a new clean command
func NewCleanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove target/ and compile_commands.json",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.orchestrator(cmd).Clean()
		},
	}
}
