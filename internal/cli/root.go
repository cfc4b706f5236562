package cli

import (
	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/git"
	"github.com/jakoblorz/carton/internal/tui"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, gitClient git.GitClient, options ...Option) *cobra.Command {
	a := newApp(fs, gitClient, options...)

	rootCmd := &cobra.Command{
		Use:   "carton",
		Short: "Create and build C projects with meson and ninja",
		Long: `A cargo-like front end for meson and ninja.

carton scaffolds new C projects, keeps one build directory per profile under
target/, and points compile_commands.json at the most recent build.`,
		Version:       a.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Print debug logs to stderr")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cerrors.Wrap(cerrors.Usage, err, "invalid usage of `%s`", cmd.CommandPath())
	})

	// Add subcommands
	rootCmd.AddCommand(NewNewCommand(a))
	rootCmd.AddCommand(NewBuildCommand(a))
	rootCmd.AddCommand(NewTestCommand(a))
	rootCmd.AddCommand(NewRunCommand(a))
	rootCmd.AddCommand(NewCleanCommand(a))
	rootCmd.AddCommand(NewDoctorCommand(a))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	fs := filesystem.NewOSFileSystem()
	gitClient := git.NewOSGitClient()

	rootCmd := NewRootCommand(fs, gitClient, WithVersion(version))

	if err := rootCmd.Execute(); err != nil {
		err = classify(err)
		tui.Error(rootCmd.ErrOrStderr(), err.Error())
		return err
	}

	return nil
}

// classify tags errors that carton did not produce itself. Those come from
// cobra's argument and flag validation and are usage errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := cerrors.As(err); ok {
		return err
	}
	return cerrors.Wrap(cerrors.Usage, err, "invalid usage")
}

// exactArgs is cobra.ExactArgs returning a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return cerrors.Wrap(cerrors.Usage, err, "invalid usage of `%s`", cmd.CommandPath())
		}
		return nil
	}
}

// noArgs is cobra.NoArgs returning a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return cerrors.Wrap(cerrors.Usage, err, "invalid usage of `%s`", cmd.CommandPath())
	}
	return nil
}
