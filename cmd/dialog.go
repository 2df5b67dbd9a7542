package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/winapp/winapp-cli/internal/model"
	"github.com/winapp/winapp-cli/internal/output"
	"github.com/winapp/winapp-cli/internal/strategy"
)

var dialogCmd = &cobra.Command{
	Use:   "dialog <app>",
	Short: "Wait for a dialog and classify it",
	Long: `Wait for a dialog to open in the application and classify it as
multi_input_form, single_input_form, button_dialog, none, or unknown,
listing its input fields and buttons.`,
	Args: cobra.ExactArgs(1),
	RunE: runDialog,
}

func init() {
	rootCmd.AddCommand(dialogCmd)
	dialogCmd.Flags().Float64("timeout", 5, "Max seconds to wait for the dialog")
	dialogCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runDialog(cmd *cobra.Command, args []string) error {
	app := args[0]
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
	return output.Print(dialogResult(app, info))
}

func dialogResult(app string, info strategy.DialogInfo) output.DialogResult {
	result := output.DialogResult{
		App:  app,
		Kind: string(info.Kind),
		TS:   time.Now().Unix(),
	}
	for _, f := range info.Fields {
		result.Fields = append(result.Fields, output.FieldInfo{Role: model.MapRole(f.Role), Name: f.Name})
	}
	for _, b := range info.Buttons {
		result.Buttons = append(result.Buttons, b.Name)
	}
	return result
}
