package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/1broseidon/edgesnap/internal/ipc"
	"github.com/1broseidon/edgesnap/internal/movemode"
)

type fakeSource struct {
	status   *ipc.StatusData
	edges    *ipc.EdgesData
	monitors *ipc.MonitorsData
	err      error
	edgesErr error
}

func (f *fakeSource) GetStatus() (*ipc.StatusData, error)     { return f.status, f.err }
func (f *fakeSource) GetEdges() (*ipc.EdgesData, error)       { return f.edges, f.edgesErr }
func (f *fakeSource) GetMonitors() (*ipc.MonitorsData, error) { return f.monitors, nil }

func testEdges() *ipc.EdgesData {
	return &ipc.EdgesData{
		Window: 0x2a,
		Live:   true,
		Counts: map[string]int{"screen": 2},
		Edges: []ipc.EdgeInfo{
			{Side: "left", Class: "screen", Position: 0, Start: 0, End: 600},
			{Side: "top", Class: "screen", Position: 0, Start: 0, End: 800},
		},
	}
}

func TestPollCollectsSnapshot(t *testing.T) {
	src := &fakeSource{
		status: &ipc.StatusData{DaemonRunning: true},
		edges:  testEdges(),
		monitors: &ipc.MonitorsData{Monitors: []ipc.MonitorInfo{
			{ID: 0, Name: "eDP-1", Bounds: ipc.Area{Width: 800, Height: 600}},
		}},
	}
	m := newModel(src, time.Second)

	msg, ok := m.poll()().(snapshotMsg)
	if !ok {
		t.Fatalf("poll returned %T, want snapshotMsg", msg)
	}
	if msg.err != nil || msg.status != src.status || msg.edges != src.edges || msg.monitors != src.monitors {
		t.Fatalf("unexpected snapshot: %+v", msg)
	}
}

func TestPollStopsOnDaemonError(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused"), edges: testEdges()}
	msg := newModel(src, time.Second).poll()().(snapshotMsg)
	if msg.err == nil {
		t.Fatal("expected error")
	}
	if msg.edges != nil {
		t.Fatal("edges fetched despite daemon error")
	}
}

func TestPollToleratesMissingWindow(t *testing.T) {
	src := &fakeSource{
		status:   &ipc.StatusData{DaemonRunning: true},
		edgesErr: errors.New("no active window"),
	}
	msg := newModel(src, time.Second).poll()().(snapshotMsg)
	if msg.err != nil {
		t.Fatalf("err = %v, want nil", msg.err)
	}
	if msg.edges != nil {
		t.Fatalf("edges = %+v, want nil", msg.edges)
	}
}

func TestSnapshotUpdatesTable(t *testing.T) {
	m := newModel(&fakeSource{}, time.Second)

	next, cmd := m.Update(snapshotMsg{
		status: &ipc.StatusData{DaemonRunning: true},
		edges:  testEdges(),
	})
	if cmd == nil {
		t.Fatal("snapshot should schedule the next tick")
	}
	got := next.(model).edgeTable.Rows()
	want := []table.Row{
		{"left", "screen", "0", "0", "600"},
		{"top", "screen", "0", "0", "800"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTabNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want Tab
	}{
		{"tab", []tea.KeyMsg{{Type: tea.KeyTab}}, TabEdges},
		{"wrap", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyTab}}, TabStatus},
		{"shift tab wraps", []tea.KeyMsg{{Type: tea.KeyShiftTab}}, TabMonitors},
		{"jump", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("3")}}, TabMonitors},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = newModel(&fakeSource{}, time.Second)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			if got := m.(model).activeTab; got != tt.want {
				t.Fatalf("activeTab = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	m := newModel(&fakeSource{}, time.Second)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestView(t *testing.T) {
	var m tea.Model = newModel(&fakeSource{}, time.Second)
	if m.View() != "" {
		t.Fatal("view before sizing should be empty")
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	down, _ := m.Update(snapshotMsg{err: errors.New("dial unix: no such file")})
	if out := down.View(); !strings.Contains(out, "daemon not running") || !strings.Contains(out, "no such file") {
		t.Fatalf("unexpected offline view:\n%s", out)
	}

	up, _ := m.Update(snapshotMsg{status: &ipc.StatusData{
		DaemonRunning: true,
		Grab:          movemode.Stats{Active: true, Kind: "resize", Window: 0x11, Resisted: 4},
	}})
	out := up.View()
	for _, want := range []string{"resize grab on 0x11", "resisted", "Status"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}
