package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/edgesnap/internal/ipc"
)

// snapshotMsg carries one poll of the daemon.
type snapshotMsg struct {
	status   *ipc.StatusData
	edges    *ipc.EdgesData
	monitors *ipc.MonitorsData
	err      error
}

type tickMsg struct{}

// model is the root bubbletea model for the dashboard.
type model struct {
	src     Source
	refresh time.Duration

	activeTab Tab

	status   *ipc.StatusData
	edges    *ipc.EdgesData
	monitors *ipc.MonitorsData
	err      error

	edgeTable table.Model

	width  int
	height int
}

func newModel(src Source, refresh time.Duration) model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Side", Width: 7},
			{Title: "Class", Width: 8},
			{Title: "Pos", Width: 7},
			{Title: "Start", Width: 7},
			{Title: "End", Width: 7},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	return model{
		src:       src,
		refresh:   refresh,
		activeTab: TabStatus,
		edgeTable: t,
	}
}

func (m model) poll() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		var msg snapshotMsg
		msg.status, msg.err = src.GetStatus()
		if msg.err != nil {
			return msg
		}
		// Edges fail without an active window; that is not a daemon error.
		msg.edges, _ = src.GetEdges()
		msg.monitors, _ = src.GetMonitors()
		return msg
	}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg { return tickMsg{} })
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return m.poll()
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
			return m, nil
		case "1":
			m.activeTab = TabStatus
			return m, nil
		case "2":
			m.activeTab = TabEdges
			return m, nil
		case "3":
			m.activeTab = TabMonitors
			return m, nil
		case "r":
			return m, m.poll()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// status bar, tab bar with margin, table header and help bar
		m.edgeTable.SetHeight(max(m.height-7, 3))
		return m, nil

	case tickMsg:
		return m, m.poll()

	case snapshotMsg:
		m.err = msg.err
		m.status = msg.status
		m.edges = msg.edges
		m.monitors = msg.monitors
		m.edgeTable.SetRows(edgeRows(msg.edges))
		return m, m.tick()
	}

	if m.activeTab == TabEdges {
		var cmd tea.Cmd
		m.edgeTable, cmd = m.edgeTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func edgeRows(data *ipc.EdgesData) []table.Row {
	if data == nil {
		return nil
	}
	rows := make([]table.Row, 0, len(data.Edges))
	for _, e := range data.Edges {
		rows = append(rows, table.Row{
			e.Side,
			e.Class,
			fmt.Sprint(e.Position),
			fmt.Sprint(e.Start),
			fmt.Sprint(e.End),
		})
	}
	return rows
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusBar := renderStatusBar(m.status, m.err, m.width)
	tabBar := renderTabBar(m.activeTab, m.width)
	helpBar := renderHelpBar(m.width)

	var content string
	switch {
	case m.err != nil:
		content = errorStyle.Render(m.err.Error())
	case m.status == nil:
		content = "connecting..."
	default:
		switch m.activeTab {
		case TabStatus:
			content = renderStatus(m.status)
		case TabEdges:
			content = m.edgesView()
		case TabMonitors:
			content = renderMonitors(m.monitors)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusBar,
		tabBar,
		content,
		helpBar,
	)
}

func (m model) edgesView() string {
	if m.edges == nil {
		return "no active window"
	}
	source := "preview of active window"
	if m.edges.Live {
		source = "live grab"
	}
	header := fmt.Sprintf("window 0x%x (%s)", m.edges.Window, source)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.edgeTable.View())
}
