package mcp

import "github.com/1broseidon/edgesnap/internal/ipc"

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	UptimeSeconds int64  `json:"uptime_seconds"`
	GrabActive    bool   `json:"grab_active"`
	GrabKind      string `json:"grab_kind,omitempty"`
	Window        uint32 `json:"window,omitempty"`
	Grabs         uint64 `json:"grabs"`
	Confirmed     uint64 `json:"confirmed"`
	Cancelled     uint64 `json:"cancelled"`
	TimedOut      uint64 `json:"timed_out"`
	KeyboardSteps uint64 `json:"keyboard_steps"`
	PointerSteps  uint64 `json:"pointer_steps"`
	Resisted      uint64 `json:"resisted"`
	Snapped       uint64 `json:"snapped"`
	Released      uint64 `json:"released"`
}

// GetEdgesInput is the input for the get_edges tool.
type GetEdgesInput struct {
	Side  string `json:"side,omitempty" jsonschema:"Only return edges on this side: left, right, top or bottom"`
	Class string `json:"class,omitempty" jsonschema:"Only return edges of this class: window, monitor or screen"`
}

// GetEdgesOutput is the output for the get_edges tool.
type GetEdgesOutput struct {
	Window uint32         `json:"window"`
	Live   bool           `json:"live"`
	Counts map[string]int `json:"counts"`
	Edges  []ipc.EdgeInfo `json:"edges"`
}

// GetMonitorsInput is the input for the get_monitors tool.
type GetMonitorsInput struct{}

// GetMonitorsOutput is the output for the get_monitors tool.
type GetMonitorsOutput struct {
	Monitors []ipc.MonitorInfo `json:"monitors"`
}

// ReloadConfigInput is the input for the reload_config tool.
type ReloadConfigInput struct{}

// ReloadConfigOutput is the output for the reload_config tool.
type ReloadConfigOutput struct {
	Reloaded bool `json:"reloaded"`
}

// ExplainConfigInput is the input for the explain_config tool.
type ExplainConfigInput struct {
	Path string `json:"path" jsonschema:"required,Dotted config key such as grab_timeout or resistance.monitor.pixels_towards"`
}

// ExplainConfigOutput is the output for the explain_config tool.
type ExplainConfigOutput struct {
	Path   string `json:"path"`
	Value  any    `json:"value"`
	Source string `json:"source"`
}
