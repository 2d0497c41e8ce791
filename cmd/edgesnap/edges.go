package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/edgesnap/internal/ipc"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	classStyles = map[string]lipgloss.Style{
		"window":  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		"monitor": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		"screen":  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
)

func runEdges(args []string) int {
	fs := flag.NewFlagSet("edges", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "Print raw JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: edgesnap edges [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show the edges the active grab resists against. Without a grab,")
		fmt.Fprintln(os.Stderr, "edges are computed for the currently active window.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	data, err := ipc.NewClient().GetEdges()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	writeEdges(os.Stdout, data, term.IsTerminal(int(os.Stdout.Fd())))
	return 0
}

// writeEdges prints one line per edge. Styling is only applied for terminals.
func writeEdges(w io.Writer, data *ipc.EdgesData, styled bool) {
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	source := "preview"
	if data.Live {
		source = "live grab"
	}
	fmt.Fprintf(w, "window 0x%x (%s)\n", data.Window, source)

	classes := make([]string, 0, len(data.Counts))
	for class := range data.Counts {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		fmt.Fprintf(w, "  %s: %d\n", class, data.Counts[class])
	}
	if len(data.Edges) == 0 {
		fmt.Fprintln(w, render(dimStyle, "no edges"))
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, render(headerStyle, fmt.Sprintf("%-7s %-8s %8s %8s %8s", "SIDE", "CLASS", "POS", "START", "END")))
	for _, e := range data.Edges {
		class := fmt.Sprintf("%-8s", e.Class)
		if s, ok := classStyles[e.Class]; ok {
			class = render(s, class)
		}
		fmt.Fprintf(w, "%-7s %s %8d %8d %8d\n", e.Side, class, e.Position, e.Start, e.End)
	}
}
