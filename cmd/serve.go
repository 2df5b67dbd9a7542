package cmd

import (
	"github.com/spf13/cobra"
	"github.com/winapp/winapp-cli/internal/server"
	"github.com/winapp/winapp-cli/internal/strategy"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing winapp-cli tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the winapp-cli
commands as tools. AI agents can call tools directly without shell overhead,
and connected sessions are kept between calls.

Supported transports:
  stdio             Standard I/O (default, for Claude Code / MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  winapp-cli serve
  winapp-cli serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	srv := server.New(newDriver(cmd), strategy.NewRegistry())
	defer srv.Close()

	return srv.Serve(server.Config{
		Transport: transport,
		Port:      port,
	})
}
