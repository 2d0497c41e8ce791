package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/movemode"
)

// CommandType represents different IPC command types
type CommandType string

const (
	CommandReload      CommandType = "RELOAD"
	CommandGetStatus   CommandType = "GET_STATUS"
	CommandGetEdges    CommandType = "GET_EDGES"
	CommandGetMonitors CommandType = "GET_MONITORS"
)

// Request represents an IPC request from client to server
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData represents the data returned by GET_STATUS
type StatusData struct {
	UptimeSeconds int64          `json:"uptime_seconds"`
	DaemonRunning bool           `json:"daemon_running"`
	Grab          movemode.Stats `json:"grab"`
}

// EdgeInfo is one cached edge.
type EdgeInfo struct {
	Side     string `json:"side"`
	Class    string `json:"class"`
	Position int    `json:"position"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

// EdgesData represents the data returned by GET_EDGES
type EdgesData struct {
	Window uint32         `json:"window"`
	Live   bool           `json:"live"` // taken from a running grab
	Counts map[string]int `json:"counts"`
	Edges  []EdgeInfo     `json:"edges"`
}

// NewEdgesData flattens a cache side by side, each side in cache order.
func NewEdgesData(cache *edges.Cache, window edges.WindowID, live bool) EdgesData {
	data := EdgesData{
		Window: uint32(window),
		Live:   live,
		Counts: make(map[string]int),
	}
	if cache == nil {
		return data
	}

	for class, n := range cache.CountByClass() {
		data.Counts[class.String()] = n
	}
	for _, side := range edges.Sides {
		for _, e := range cache.Side(side) {
			extent := e.Extent()
			data.Edges = append(data.Edges, EdgeInfo{
				Side:     side.String(),
				Class:    e.Class.String(),
				Position: e.Position(),
				Start:    extent.Start,
				End:      extent.End,
			})
		}
	}
	return data
}

// Area is a rectangle in root coordinates.
type Area struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MonitorInfo represents information about a single monitor
type MonitorInfo struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Bounds Area   `json:"bounds"`
	Usable Area   `json:"usable"`
}

// MonitorsData represents the data returned by GET_MONITORS
type MonitorsData struct {
	Monitors []MonitorInfo `json:"monitors"`
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}
