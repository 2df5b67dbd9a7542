package server

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/winapp/winapp-cli/internal/model"
	"github.com/winapp/winapp-cli/internal/navpath"
	"github.com/winapp/winapp-cli/internal/output"
	"github.com/winapp/winapp-cli/internal/session"
	"github.com/winapp/winapp-cli/internal/strategy"
	"gopkg.in/yaml.v3"
)

// resultToText serializes a result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

func floatParam(params map[string]interface{}, key string, def float64) float64 {
	if v, ok := params[key].(float64); ok {
		return v
	}
	return def
}

func stringSliceParam(params map[string]interface{}, key string) []string {
	raw, ok := params[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func (s *Server) handleDetect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(app)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	window := sess.Window()
	return mcp.NewToolResultText(resultToText(output.DetectResult{
		App:       app,
		Type:      sess.Type().String(),
		ClassName: window.ClassName,
		Framework: window.FrameworkID,
		Title:     window.Title,
		TS:        time.Now().Unix(),
	})), nil
}

func (s *Server) handleNavigate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	path := stringParam(params, "path", "")

	steps, err := navpath.Parse(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(app)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := runNavigation(sess, steps); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.NavigateResult{
		App:    app,
		Type:   sess.Type().String(),
		Path:   splitPath(path),
		Status: "ok",
		TS:     time.Now().Unix(),
	})), nil
}

// runNavigation dispatches a parsed path: pure label paths go through the
// bound strategy's menu walk, anything with keystroke steps runs raw.
func runNavigation(sess *session.Session, steps []navpath.Step) error {
	labels := make([]string, 0, len(steps))
	for _, st := range steps {
		if st.Kind != navpath.StepText {
			return sess.RunSteps(steps)
		}
		labels = append(labels, st.Text)
	}
	if len(labels) < 2 {
		return fmt.Errorf("menu path needs a menu and a target item, got %q", labels[0])
	}
	return sess.NavigateMenu(labels[:len(labels)-1], labels[len(labels)-1])
}

func splitPath(path string) []string {
	parts := strings.Split(path, "->")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (s *Server) handleDialog(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	timeout := floatParam(params, "timeout", 5)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(app)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := sess.IdentifyDialog(time.Duration(timeout * float64(time.Second)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(dialogResult(app, info))), nil
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

func (s *Server) handleFill(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	values := stringSliceParam(params, "values")

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessionFor(app)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := sess.FillFormInputs(values); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.FillResult{
		App:    app,
		Filled: len(values),
		Status: "ok",
		TS:     time.Now().Unix(),
	})), nil
}

func (s *Server) handleWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	windows, err := s.driver.ListWindows()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.WindowsResult{
		Windows: windows,
		TS:      time.Now().Unix(),
	})), nil
}

func (s *Server) handleDisconnect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.dropSession(app); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("disconnected: %s\n", app)), nil
}
