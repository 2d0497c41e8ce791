package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/edgesnap/internal/config"
	"github.com/1broseidon/edgesnap/internal/ipc"
)

const (
	ServerName    = "edgesnap"
	ServerVersion = "0.1.0"
)

// Daemon is the IPC surface the tools call. *ipc.Client satisfies it.
type Daemon interface {
	GetStatus() (*ipc.StatusData, error)
	GetEdges() (*ipc.EdgesData, error)
	GetMonitors() (*ipc.MonitorsData, error)
	Reload() error
}

// Server exposes daemon introspection over MCP.
type Server struct {
	mcpServer *mcpsdk.Server
	daemon    Daemon
	// loadConfig backs explain_config; swapped in tests.
	loadConfig func() (*config.LoadResult, error)
}

// NewServer creates an MCP server that forwards to the running daemon.
func NewServer(daemon Daemon) *Server {
	s := &Server{
		daemon:     daemon,
		loadConfig: config.LoadWithSources,
	}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Report whether a move or resize grab is running and the counters for keyboard and pointer steps, resisted steps, snaps and timeout releases since the daemon started.",
	}, s.handleGetStatus)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_edges",
		Description: "List the edges that resist the grabbed window, or a preview for the active window when no grab is running. Edges can be filtered by side and class.",
	}, s.handleGetEdges)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_monitors",
		Description: "List monitors with their full bounds and the usable area left after dock struts.",
	}, s.handleGetMonitors)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "reload_config",
		Description: "Ask the daemon to reload its configuration file. Invalid files are rejected and the running config is kept.",
	}, s.handleReloadConfig)
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "explain_config",
		Description: "Show the effective value of a config key (e.g. resistance.window.keyboard_towards) and the file and line that set it.",
	}, s.handleExplainConfig)
}
