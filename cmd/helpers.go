package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/driver/winappdriver"
	"github.com/winapp/winapp-cli/internal/session"
	"github.com/winapp/winapp-cli/internal/strategy"
)

// newDriver builds the WinAppDriver client from the root --server flag.
func newDriver(cmd *cobra.Command) driver.Driver {
	serverURL, _ := cmd.Flags().GetString("server")
	return winappdriver.New(serverURL)
}

// connectSession opens a session for the given window, classifying the
// application and binding its strategy.
func connectSession(cmd *cobra.Command, app string) (*session.Session, error) {
	return session.Connect(newDriver(cmd), strategy.NewRegistry(), app)
}

// splitMenuPath splits "File -> New -> Project" into the intermediate menu
// segments and the final target item.
func splitMenuPath(path string) ([]string, string, error) {
	parts := strings.Split(path, "->")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		seg := strings.TrimSpace(p)
		if seg == "" {
			return nil, "", fmt.Errorf("empty segment in menu path %q", path)
		}
		segments = append(segments, seg)
	}
	if len(segments) < 2 {
		return nil, "", fmt.Errorf("menu path needs a menu and a target item, got %q", path)
	}
	return segments[:len(segments)-1], segments[len(segments)-1], nil
}

// splitRawPath splits a navigation path into trimmed display segments.
func splitRawPath(path string) []string {
	parts := strings.Split(path, "->")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
