// Package server exposes the automation operations as MCP tools so AI
// agents can drive application windows without shell overhead. It keeps a
// table of connected sessions so an agent pays the detect-and-bind cost
// once per window.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/winapp/winapp-cli/internal/driver"
	"github.com/winapp/winapp-cli/internal/session"
	"github.com/winapp/winapp-cli/internal/strategy"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server with the driver, the strategy registry, and
// the session table.
type Server struct {
	driver   driver.Driver
	registry *strategy.Registry

	mu       sync.Mutex
	sessions map[string]*session.Session

	mcp *mcpserver.MCPServer
}

// New creates and configures an MCP server with all winapp-cli tools.
func New(d driver.Driver, reg *strategy.Registry) *Server {
	s := &Server{
		driver:   d,
		registry: reg,
		sessions: make(map[string]*session.Session),
	}

	s.mcp = mcpserver.NewMCPServer(
		"winapp-cli",
		"1.0.0",
	)

	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// detect_app
	s.mcp.AddTool(
		mcp.NewTool("detect_app",
			mcp.WithDescription("Connect to an application window and detect its UI technology (java, dotnet_wpf, dotnet_winforms, uwp, win32, unknown). The connection is kept for later tool calls."),
			mcp.WithString("app", mcp.Description("Window title substring or executable path"), mcp.Required()),
		),
		s.handleDetect,
	)

	// navigate_menu
	s.mcp.AddTool(
		mcp.NewTool("navigate_menu",
			mcp.WithDescription("Navigate an application menu. Plain paths like 'File -> New Project' walk the menu by labels; brace steps like '{Alt+F} -> Create Project' send raw keystrokes."),
			mcp.WithString("app", mcp.Description("Window title substring or executable path"), mcp.Required()),
			mcp.WithString("path", mcp.Description("Navigation path, segments separated by '->'"), mcp.Required()),
		),
		s.handleNavigate,
	)

	// identify_dialog
	s.mcp.AddTool(
		mcp.NewTool("identify_dialog",
			mcp.WithDescription("Wait for a dialog to open and classify it (multi_input_form, single_input_form, button_dialog, none, unknown), listing its input fields and buttons"),
			mcp.WithString("app", mcp.Description("Window title substring or executable path"), mcp.Required()),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default: 5)")),
		),
		s.handleDialog,
	)

	// fill_form
	s.mcp.AddTool(
		mcp.NewTool("fill_form",
			mcp.WithDescription("Fill the input fields of the most recently identified dialog, in field order. The value count must match the field count."),
			mcp.WithString("app", mcp.Description("Window title substring or executable path"), mcp.Required()),
			mcp.WithArray("values", mcp.Description("Values in field order"), mcp.Required()),
		),
		s.handleFill,
	)

	// list_windows
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List the top-level application windows on the desktop"),
		),
		s.handleWindows,
	)

	// disconnect
	s.mcp.AddTool(
		mcp.NewTool("disconnect",
			mcp.WithDescription("Release the session held for an application window"),
			mcp.WithString("app", mcp.Description("Window title substring or executable path"), mcp.Required()),
		),
		s.handleDisconnect,
	)
}
