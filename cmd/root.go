package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/winapp/winapp-cli/internal/driver/winappdriver"
	"github.com/winapp/winapp-cli/internal/output"
	"github.com/winapp/winapp-cli/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "winapp-cli",
	Short: "Detect and drive Windows application UIs",
	Long:  "A CLI tool that lets AI agents detect a Windows application's UI technology and drive its menus, dialogs, and forms through WinAppDriver.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("server", winappdriver.DefaultServerURL, "WinAppDriver server URL")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")

		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
