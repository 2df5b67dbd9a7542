package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/winapp/winapp-cli/internal/output"
)

var navigateCmd = &cobra.Command{
	Use:   "navigate <app> <path>",
	Short: "Navigate an application menu by labels",
	Long: `Walk an application's menu using the strategy matching its UI technology.
The path lists menu labels separated by '->'; the last segment is the item
to select.

Examples:
  winapp-cli navigate "My IDE" "File -> New Project"
  winapp-cli navigate notepad.exe "Format -> Font"`,
	Args: cobra.ExactArgs(2),
	RunE: runNavigate,
}

func init() {
	rootCmd.AddCommand(navigateCmd)
	navigateCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runNavigate(cmd *cobra.Command, args []string) error {
	app, path := args[0], args[1]

	menuPath, target, err := splitMenuPath(path)
	if err != nil {
		return err
	}

	sess, err := connectSession(cmd, app)
	if err != nil {
		return err
	}
	defer sess.Disconnect()

	if err := sess.NavigateMenu(menuPath, target); err != nil {
		return err
	}
	return output.Print(output.NavigateResult{
		App:    app,
		Type:   sess.Type().String(),
		Path:   append(menuPath, target),
		Status: "ok",
		TS:     time.Now().Unix(),
	})
}
