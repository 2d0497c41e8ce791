package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/edgesnap/internal/config"
	"github.com/1broseidon/edgesnap/internal/ipc"
)

var (
	validSides   = map[string]bool{"left": true, "right": true, "top": true, "bottom": true}
	validClasses = map[string]bool{"window": true, "monitor": true, "screen": true}
)

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.daemon.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, fmt.Errorf("daemon not reachable: %w", err)
	}
	g := status.Grab
	return nil, GetStatusOutput{
		UptimeSeconds: status.UptimeSeconds,
		GrabActive:    g.Active,
		GrabKind:      g.Kind,
		Window:        uint32(g.Window),
		Grabs:         g.Grabs,
		Confirmed:     g.Confirmed,
		Cancelled:     g.Cancelled,
		TimedOut:      g.TimedOut,
		KeyboardSteps: g.KeyboardSteps,
		PointerSteps:  g.PointerSteps,
		Resisted:      g.Resisted,
		Snapped:       g.Snapped,
		Released:      g.Released,
	}, nil
}

func (s *Server) handleGetEdges(_ context.Context, _ *mcpsdk.CallToolRequest, args GetEdgesInput) (*mcpsdk.CallToolResult, GetEdgesOutput, error) {
	if args.Side != "" && !validSides[args.Side] {
		return nil, GetEdgesOutput{}, fmt.Errorf("invalid side %q: must be left, right, top or bottom", args.Side)
	}
	if args.Class != "" && !validClasses[args.Class] {
		return nil, GetEdgesOutput{}, fmt.Errorf("invalid class %q: must be window, monitor or screen", args.Class)
	}

	data, err := s.daemon.GetEdges()
	if err != nil {
		return nil, GetEdgesOutput{}, err
	}

	out := GetEdgesOutput{
		Window: data.Window,
		Live:   data.Live,
		Counts: data.Counts,
		Edges:  make([]ipc.EdgeInfo, 0, len(data.Edges)),
	}
	for _, e := range data.Edges {
		if args.Side != "" && e.Side != args.Side {
			continue
		}
		if args.Class != "" && e.Class != args.Class {
			continue
		}
		out.Edges = append(out.Edges, e)
	}
	return nil, out, nil
}

func (s *Server) handleGetMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetMonitorsInput) (*mcpsdk.CallToolResult, GetMonitorsOutput, error) {
	data, err := s.daemon.GetMonitors()
	if err != nil {
		return nil, GetMonitorsOutput{}, err
	}
	return nil, GetMonitorsOutput{Monitors: data.Monitors}, nil
}

func (s *Server) handleReloadConfig(_ context.Context, _ *mcpsdk.CallToolRequest, _ ReloadConfigInput) (*mcpsdk.CallToolResult, ReloadConfigOutput, error) {
	if err := s.daemon.Reload(); err != nil {
		return nil, ReloadConfigOutput{}, fmt.Errorf("reload failed: %w", err)
	}
	return nil, ReloadConfigOutput{Reloaded: true}, nil
}

func (s *Server) handleExplainConfig(_ context.Context, _ *mcpsdk.CallToolRequest, args ExplainConfigInput) (*mcpsdk.CallToolResult, ExplainConfigOutput, error) {
	if args.Path == "" {
		return nil, ExplainConfigOutput{}, fmt.Errorf("path is required")
	}
	res, err := s.loadConfig()
	if err != nil {
		return nil, ExplainConfigOutput{}, err
	}
	value, src, err := config.Explain(res, args.Path)
	if err != nil {
		return nil, ExplainConfigOutput{}, err
	}
	return nil, ExplainConfigOutput{
		Path:   args.Path,
		Value:  value,
		Source: src.String(),
	}, nil
}
