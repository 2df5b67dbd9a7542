package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/winapp/winapp-cli/internal/model"
	"github.com/winapp/winapp-cli/internal/output"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List top-level application windows",
	Long:  "List the top-level application windows on the desktop with their title and window class.",
	Args:  cobra.NoArgs,
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().String("filter", "", "Only windows whose title contains this substring")
	windowsCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runWindows(cmd *cobra.Command, args []string) error {
	filter, _ := cmd.Flags().GetString("filter")

	windows, err := newDriver(cmd).ListWindows()
	if err != nil {
		return err
	}
	if filter != "" {
		matched := make([]model.Window, 0, len(windows))
		for _, w := range windows {
			if strings.Contains(strings.ToLower(w.Title), strings.ToLower(filter)) {
				matched = append(matched, w)
			}
		}
		windows = matched
	}
	return output.Print(output.WindowsResult{
		Windows: windows,
		TS:      time.Now().Unix(),
	})
}
