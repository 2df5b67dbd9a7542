package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/winapp/winapp-cli/internal/model"
	"github.com/winapp/winapp-cli/internal/output"
)

var fillCmd = &cobra.Command{
	Use:   "fill <app> <value>...",
	Short: "Fill a dialog's input fields in order",
	Long: `Identify the open dialog and assign each value to its input fields in
field order. The value count must match the field count; on a mismatch no
field is written.

Example:
  winapp-cli fill "My IDE" "demo-project" "C:\work\demo"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFill,
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().Float64("timeout", 5, "Max seconds to wait for the dialog")
	fillCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runFill(cmd *cobra.Command, args []string) error {
	app, values := args[0], args[1:]
	timeout, _ := cmd.Flags().GetFloat64("timeout")

	sess, err := connectSession(cmd, app)
	if err != nil {
		return err
	}
	defer sess.Disconnect()

	info, err := sess.IdentifyDialog(time.Duration(timeout * float64(time.Second)))
	if err != nil {
		return err
	}
	if info.Kind == model.DialogNone {
		return fmt.Errorf("no dialog found in %q", app)
	}

	if err := sess.FillFormInputs(values); err != nil {
		return err
	}
	return output.Print(output.FillResult{
		App:    app,
		Filled: len(values),
		Status: "ok",
		TS:     time.Now().Unix(),
	})
}
