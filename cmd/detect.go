package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/winapp/winapp-cli/internal/output"
)

var detectCmd = &cobra.Command{
	Use:   "detect <app>",
	Short: "Detect an application's UI technology",
	Long: `Connect to an application window and report its detected UI technology:
java, dotnet_wpf, dotnet_winforms, uwp, win32, or unknown.

The app argument is a window title substring, or an executable path to
launch (e.g. 'notepad.exe').`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runDetect(cmd *cobra.Command, args []string) error {
	app := args[0]

	sess, err := connectSession(cmd, app)
	if err != nil {
		return err
	}
	defer sess.Disconnect()

	window := sess.Window()
	return output.Print(output.DetectResult{
		App:       app,
		Type:      sess.Type().String(),
		ClassName: window.ClassName,
		Framework: window.FrameworkID,
		Title:     window.Title,
		TS:        time.Now().Unix(),
	})
}
