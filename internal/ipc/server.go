package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/1broseidon/edgesnap/internal/config"
	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
	"github.com/1broseidon/edgesnap/internal/movemode"
	"github.com/1broseidon/edgesnap/internal/platform"
	"github.com/1broseidon/edgesnap/internal/runtimepath"
)

// reloadHandoff bounds how long RELOAD waits for the daemon loop to take
// the new config.
const reloadHandoff = 2 * time.Second

// connTimeout bounds how long one client may hold a connection.
const connTimeout = 5 * time.Second

// GrabState is the part of the grab driver the server reports on.
type GrabState interface {
	Stats() movemode.Stats
	PreviewEdges() (*edges.Cache, platform.WindowID, error)
}

// Server handles IPC requests from clients
type Server struct {
	socketPath string
	listener   net.Listener
	cfg        *config.Config
	cfgMu      sync.RWMutex
	load       func() (*config.Config, error)
	grabs      GrabState
	backend    platform.Backend
	startTime  time.Time
	reloadChan chan<- *config.Config
	handoff    time.Duration
	stopped    atomic.Bool
}

// NewServer creates a new IPC server. load reads the configuration for
// RELOAD; successfully loaded configs are sent on reloadChan.
func NewServer(cfg *config.Config, load func() (*config.Config, error), grabs GrabState, backend platform.Backend, reloadChan chan<- *config.Config) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}

	// Remove existing socket if present
	os.Remove(socketPath)

	if load == nil {
		load = config.Load
	}

	return &Server{
		socketPath: socketPath,
		cfg:        cfg,
		load:       load,
		grabs:      grabs,
		backend:    backend,
		startTime:  time.Now(),
		reloadChan: reloadChan,
		handoff:    reloadHandoff,
	}, nil
}

// Start listens on the socket and serves connections in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}
	s.listener = listener
	log.Printf("IPC: listening on %s", s.socketPath)

	go s.serve()
	return nil
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.stopped.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("IPC: accept failed: %v", err)
			continue
		}
		go s.serveConn(conn)
	}
}

// serveConn answers a single newline-terminated JSON request.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(connTimeout))

	enc := json.NewEncoder(conn)
	var req Request
	if err := json.NewDecoder(conn).Decode(&req); err != nil {
		if !errors.Is(err, io.EOF) {
			enc.Encode(NewErrorResponse(fmt.Sprintf("Invalid request: %v", err)))
		}
		return
	}

	if err := enc.Encode(s.handleCommand(&req)); err != nil {
		log.Printf("IPC: failed to send %s response: %v", req.Command, err)
	}
}

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandReload:
		return s.handleReload()
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandGetEdges:
		return s.handleGetEdges()
	case CommandGetMonitors:
		return s.handleGetMonitors()
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

// handleReload reloads the configuration
func (s *Server) handleReload() *Response {
	log.Println("IPC: Received RELOAD command")

	newCfg, err := s.load()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to reload config: %v", err))
	}

	if s.reloadChan != nil {
		timer := time.NewTimer(s.handoff)
		defer timer.Stop()
		select {
		case s.reloadChan <- newCfg:
		case <-timer.C:
			return NewErrorResponse("Reload pending: the daemon has not applied the previous reload yet")
		}
	}
	s.UpdateConfig(newCfg)

	log.Println("IPC: Config reloaded successfully")

	resp, _ := NewOKResponse(nil)
	return resp
}

// handleGetStatus returns current daemon status
func (s *Server) handleGetStatus() *Response {
	status := StatusData{
		UptimeSeconds: int64(time.Since(s.startTime).Seconds()),
		DaemonRunning: true,
		Grab:          s.grabs.Stats(),
	}

	resp, _ := NewOKResponse(status)
	return resp
}

// handleGetEdges returns the edges of the running grab, or of a grab of
// the active window if none is running.
func (s *Server) handleGetEdges() *Response {
	live := s.grabs.Stats().Active
	cache, window, err := s.grabs.PreviewEdges()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to compute edges: %v", err))
	}

	resp, err := NewOKResponse(NewEdgesData(cache, window, live))
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

// handleGetMonitors returns information about all monitors
func (s *Server) handleGetMonitors() *Response {
	displays, err := s.backend.Displays()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to get monitors: %v", err))
	}

	infos := make([]MonitorInfo, len(displays))
	for i, d := range displays {
		infos[i] = MonitorInfo{
			ID:     d.ID,
			Name:   d.Name,
			Bounds: areaOf(d.Bounds),
			Usable: areaOf(d.Usable),
		}
	}

	resp, _ := NewOKResponse(MonitorsData{Monitors: infos})
	return resp
}

func areaOf(r geom.Rect) Area {
	return Area{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Stop closes the listener and removes the socket file.
func (s *Server) Stop() {
	if !s.stopped.CompareAndSwap(false, true) {
		return
	}
	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

// GetConfig returns the current config (thread-safe)
func (s *Server) GetConfig() *config.Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

// UpdateConfig updates the config (thread-safe)
func (s *Server) UpdateConfig(cfg *config.Config) {
	s.cfgMu.Lock()
	defer s.cfgMu.Unlock()
	s.cfg = cfg
}
