package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/restlog/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration file management commands",
		// Configuration commands do not need an existing configuration.
		PersistentPreRun: func(*cobra.Command, []string) {},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration file",
		Long: `Writes the default configuration to the given path
(or to .restlog.yaml in the current directory).

An existing file is never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			app.ExecuteConfigInitCommand(cmd.Context(), path)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
