package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/edgesnap/internal/ipc"
)

// DefaultRefresh is how often the dashboard polls the daemon.
const DefaultRefresh = time.Second

// Source is the daemon surface the dashboard reads from. *ipc.Client
// satisfies it.
type Source interface {
	GetStatus() (*ipc.StatusData, error)
	GetEdges() (*ipc.EdgesData, error)
	GetMonitors() (*ipc.MonitorsData, error)
}

// Run starts the dashboard and blocks until the user quits.
func Run(src Source, refresh time.Duration) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}
	if refresh <= 0 {
		refresh = DefaultRefresh
	}

	p := tea.NewProgram(newModel(src, refresh), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
