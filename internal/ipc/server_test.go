package ipc

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/edgesnap/internal/config"
	"github.com/1broseidon/edgesnap/internal/edges"
	"github.com/1broseidon/edgesnap/internal/geom"
	"github.com/1broseidon/edgesnap/internal/movemode"
	"github.com/1broseidon/edgesnap/internal/platform"
)

type fakeGrabs struct {
	stats movemode.Stats
	cache *edges.Cache
	err   error
}

func (g *fakeGrabs) Stats() movemode.Stats { return g.stats }

func (g *fakeGrabs) PreviewEdges() (*edges.Cache, platform.WindowID, error) {
	return g.cache, 42, g.err
}

type fakeBackend struct {
	displays []platform.Display
}

func (b *fakeBackend) Displays() ([]platform.Display, error) { return b.displays, nil }
func (b *fakeBackend) ActiveWindow() (platform.WindowID, error) {
	return 0, errors.New("not implemented")
}
func (b *fakeBackend) Snapshot(platform.WindowID) (platform.Snapshot, error) {
	return platform.Snapshot{}, errors.New("not implemented")
}
func (b *fakeBackend) MoveResize(platform.WindowID, geom.Rect) error { return nil }

func startServer(t *testing.T, grabs GrabState, backend platform.Backend, load func() (*config.Config, error)) (*Server, chan *config.Config) {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	reloads := make(chan *config.Config, 1)
	srv, err := NewServer(config.DefaultConfig(), load, grabs, backend, reloads)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(srv.Stop)
	return srv, reloads
}

func TestGetStatus(t *testing.T) {
	grabs := &fakeGrabs{stats: movemode.Stats{Active: true, Kind: "move", Window: 7, Grabs: 3}}
	startServer(t, grabs, &fakeBackend{}, nil)

	status, err := NewClient().GetStatus()
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if !status.DaemonRunning {
		t.Fatalf("DaemonRunning = false")
	}
	if diff := cmp.Diff(grabs.stats, status.Grab); diff != "" {
		t.Fatalf("grab stats mismatch (-want +got):\n%s", diff)
	}
}

func TestGetEdges(t *testing.T) {
	_, screen := edges.WorkspaceEdges([]geom.Rect{{Width: 800, Height: 600}})
	grabs := &fakeGrabs{cache: edges.NewCache(nil, nil, screen)}
	startServer(t, grabs, &fakeBackend{}, nil)

	data, err := NewClient().GetEdges()
	if err != nil {
		t.Fatalf("GetEdges failed: %v", err)
	}
	if data.Window != 42 || data.Live {
		t.Fatalf("unexpected header: window=%d live=%v", data.Window, data.Live)
	}
	if data.Counts["screen"] != 4 {
		t.Fatalf("counts = %v, want 4 screen edges", data.Counts)
	}

	want := []EdgeInfo{
		{Side: "left", Class: "screen", Position: 0, Start: 0, End: 600},
		{Side: "right", Class: "screen", Position: 800, Start: 0, End: 600},
		{Side: "top", Class: "screen", Position: 0, Start: 0, End: 800},
		{Side: "bottom", Class: "screen", Position: 600, Start: 0, End: 800},
	}
	if diff := cmp.Diff(want, data.Edges); diff != "" {
		t.Fatalf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestGetEdgesError(t *testing.T) {
	startServer(t, &fakeGrabs{err: errors.New("no active window")}, &fakeBackend{}, nil)

	if _, err := NewClient().GetEdges(); err == nil {
		t.Fatalf("expected daemon error")
	}
}

func TestReload(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.KeyboardStep = 25
	srv, reloads := startServer(t, &fakeGrabs{}, &fakeBackend{}, func() (*config.Config, error) {
		return cfg, nil
	})

	if err := NewClient().Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got := <-reloads; got != cfg {
		t.Fatalf("reload channel got %p, want %p", got, cfg)
	}
	if srv.GetConfig().KeyboardStep != 25 {
		t.Fatalf("server config not updated")
	}
}

func TestReloadPendingIsReported(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	first := config.DefaultConfig()
	next := config.DefaultConfig()
	next.KeyboardStep = 30

	reloads := make(chan *config.Config, 1)
	reloads <- first
	srv, err := NewServer(config.DefaultConfig(), func() (*config.Config, error) { return next, nil }, &fakeGrabs{}, &fakeBackend{}, reloads)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	srv.handoff = 50 * time.Millisecond
	before := srv.GetConfig()
	if err := srv.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	t.Cleanup(srv.Stop)

	err = NewClient().Reload()
	if err == nil || !strings.Contains(err.Error(), "Reload pending") {
		t.Fatalf("Reload error = %v, want reload pending", err)
	}
	if srv.GetConfig() != before {
		t.Fatal("server config replaced although the daemon never took it")
	}
	if got := <-reloads; got != first {
		t.Fatalf("queued reload replaced: got %p, want %p", got, first)
	}

	// Once the daemon drains the queue the next reload goes through.
	if err := NewClient().Reload(); err != nil {
		t.Fatalf("Reload after drain failed: %v", err)
	}
	if got := <-reloads; got != next {
		t.Fatalf("reload channel got %p, want %p", got, next)
	}
	if srv.GetConfig().KeyboardStep != 30 {
		t.Fatal("server config not updated after handoff")
	}
}

func TestReloadRejectsInvalidConfig(t *testing.T) {
	srv, reloads := startServer(t, &fakeGrabs{}, &fakeBackend{}, func() (*config.Config, error) {
		return nil, errors.New("resistance.window.pixels_toward: must be >= 0")
	})
	before := srv.GetConfig()

	if err := NewClient().Reload(); err == nil {
		t.Fatalf("expected reload error")
	}
	if srv.GetConfig() != before {
		t.Fatalf("config replaced by a failed reload")
	}
	select {
	case <-reloads:
		t.Fatalf("failed reload notified the daemon")
	default:
	}
}

func TestGetMonitors(t *testing.T) {
	backend := &fakeBackend{displays: []platform.Display{{
		ID:     0,
		Name:   "DP-1",
		Bounds: geom.Rect{Width: 1920, Height: 1080},
		Usable: geom.Rect{Y: 30, Width: 1920, Height: 1050},
	}}}
	startServer(t, &fakeGrabs{}, backend, nil)

	data, err := NewClient().GetMonitors()
	if err != nil {
		t.Fatalf("GetMonitors failed: %v", err)
	}
	want := []MonitorInfo{{
		Name:   "DP-1",
		Bounds: Area{Width: 1920, Height: 1080},
		Usable: Area{Y: 30, Width: 1920, Height: 1050},
	}}
	if diff := cmp.Diff(want, data.Monitors); diff != "" {
		t.Fatalf("monitors mismatch (-want +got):\n%s", diff)
	}
}

func TestRawRequests(t *testing.T) {
	srv, _ := startServer(t, &fakeGrabs{}, &fakeBackend{}, nil)

	tests := []struct {
		name string
		line string
		want string
	}{
		{"malformed", "{not json\n", "Invalid request"},
		{"unknown command", `{"command":"SHUFFLE"}` + "\n", "SHUFFLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := net.Dial("unix", srv.socketPath)
			if err != nil {
				t.Fatalf("dial: %v", err)
			}
			defer conn.Close()
			if _, err := io.WriteString(conn, tt.line); err != nil {
				t.Fatalf("write: %v", err)
			}

			var resp Response
			if err := json.NewDecoder(conn).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != "ERROR" || !strings.Contains(resp.Error, tt.want) {
				t.Fatalf("response = %+v, want ERROR containing %q", resp, tt.want)
			}
		})
	}
}

func TestStopIsIdempotent(t *testing.T) {
	srv, _ := startServer(t, &fakeGrabs{}, &fakeBackend{}, nil)
	srv.Stop()
	srv.Stop()
	if _, err := NewClient().GetStatus(); err == nil {
		t.Fatal("client reached a stopped server")
	}
}
