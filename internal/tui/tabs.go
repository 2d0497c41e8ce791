package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/edgesnap/internal/ipc"
)

// Tab identifies a TUI tab.
type Tab int

const (
	TabStatus Tab = iota
	TabEdges
	TabMonitors
	tabCount // sentinel for iteration
)

func (t Tab) String() string {
	switch t {
	case TabStatus:
		return "Status"
	case TabEdges:
		return "Edges"
	case TabMonitors:
		return "Monitors"
	default:
		return "?"
	}
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("236")).
				Padding(0, 2)

	tabBarStyle = lipgloss.NewStyle().
			MarginBottom(1)

	tabGap = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		SetString(" ")

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func renderTabBar(active Tab, width int) string {
	var tabs []string
	for i := Tab(0); i < tabCount; i++ {
		label := fmt.Sprintf("%d:%s", int(i)+1, i)
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, intersperse(tabs, tabGap.Render())...)
	return tabBarStyle.Width(width).Render(row)
}

// intersperse inserts sep between each element of items.
func intersperse(items []string, sep string) []string {
	if len(items) <= 1 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}

func renderStatusBar(status *ipc.StatusData, err error, width int) string {
	var text string
	switch {
	case err != nil:
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("●")
		text = dot + " daemon not running"
	case status == nil:
		text = "connecting..."
	case status.Grab.Active:
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("●")
		text = fmt.Sprintf("%s %s grab on 0x%x", dot, status.Grab.Kind, uint32(status.Grab.Window))
	default:
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
		text = dot + " daemon connected, idle"
	}

	style := lipgloss.NewStyle().
		Width(width).
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("250")).
		Padding(0, 1)
	return style.Render(text)
}

func renderHelpBar(width int) string {
	help := "tab/shift-tab: switch tabs  1-3: jump to tab  r: refresh  q/ctrl-c: quit"
	style := lipgloss.NewStyle().
		Width(width).
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	return style.Render(help)
}

func renderStatus(status *ipc.StatusData) string {
	g := status.Grab
	rows := [][2]string{
		{"uptime", fmt.Sprintf("%ds", status.UptimeSeconds)},
		{"grabs", fmt.Sprintf("%d", g.Grabs)},
		{"confirmed", fmt.Sprintf("%d", g.Confirmed)},
		{"cancelled", fmt.Sprintf("%d", g.Cancelled)},
		{"timed out", fmt.Sprintf("%d", g.TimedOut)},
		{"keyboard steps", fmt.Sprintf("%d", g.KeyboardSteps)},
		{"pointer steps", fmt.Sprintf("%d", g.PointerSteps)},
		{"resisted", fmt.Sprintf("%d", g.Resisted)},
		{"snapped", fmt.Sprintf("%d", g.Snapped)},
		{"released", fmt.Sprintf("%d", g.Released)},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return b.String()
}

func renderMonitors(data *ipc.MonitorsData) string {
	if data == nil || len(data.Monitors) == 0 {
		return "no monitors"
	}
	var b strings.Builder
	for _, m := range data.Monitors {
		fmt.Fprintf(&b, "%s  bounds %s  usable %s\n",
			labelStyle.Render(fmt.Sprintf("%d %s", m.ID, m.Name)), area(m.Bounds), area(m.Usable))
	}
	return b.String()
}

func area(a ipc.Area) string {
	return fmt.Sprintf("%dx%d+%d+%d", a.Width, a.Height, a.X, a.Y)
}
