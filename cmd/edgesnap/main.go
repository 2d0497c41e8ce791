package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/1broseidon/edgesnap/internal/config"
	"github.com/1broseidon/edgesnap/internal/ipc"
	"github.com/1broseidon/edgesnap/internal/tui"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "edges":
		os.Exit(runEdges(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: edgesnap <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the edgesnap daemon (foreground)")
	fmt.Fprintln(w, "  status              Show daemon and grab status")
	fmt.Fprintln(w, "  reload              Ask the daemon to reload its configuration")
	fmt.Fprintln(w, "  edges               Show the resistance edges around the active window")
	fmt.Fprintln(w, "  monitors            Show monitors and their usable areas")
	fmt.Fprintln(w, "  tui                 Open the live grab dashboard")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'edgesnap <command> --help' for command-specific options.")
}

// noArgs parses a flag set that only accepts --help.
func noArgs(name, usage string, args []string) (int, bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: edgesnap %s\n", name)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, usage)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", name)
		fs.Usage()
		return 2, false
	}
	return 0, true
}

func runStatus(args []string) int {
	if code, ok := noArgs("status", "Show daemon status via IPC.", args); !ok {
		return code
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	writeStatus(os.Stdout, status)
	return 0
}

func writeStatus(w io.Writer, status *ipc.StatusData) {
	g := status.Grab
	fmt.Fprintf(w, "daemon_running: %v\n", status.DaemonRunning)
	fmt.Fprintf(w, "uptime:         %s\n", time.Duration(status.UptimeSeconds)*time.Second)
	if g.Active {
		fmt.Fprintf(w, "grab:           %s window 0x%x\n", g.Kind, uint32(g.Window))
	} else {
		fmt.Fprintln(w, "grab:           none")
	}
	fmt.Fprintf(w, "grabs:          %d (confirmed %d, cancelled %d, timed out %d)\n",
		g.Grabs, g.Confirmed, g.Cancelled, g.TimedOut)
	fmt.Fprintf(w, "steps:          %d keyboard, %d pointer\n", g.KeyboardSteps, g.PointerSteps)
	fmt.Fprintf(w, "resisted:       %d\n", g.Resisted)
	fmt.Fprintf(w, "snapped:        %d\n", g.Snapped)
	fmt.Fprintf(w, "released:       %d\n", g.Released)
}

func runReload(args []string) int {
	if code, ok := noArgs("reload", "Reload the daemon configuration via IPC.", args); !ok {
		return code
	}
	if err := ipc.NewClient().Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("config reloaded")
	return 0
}

func runMonitors(args []string) int {
	if code, ok := noArgs("monitors", "List monitors with their bounds and usable areas.", args); !ok {
		return code
	}
	data, err := ipc.NewClient().GetMonitors()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	for _, m := range data.Monitors {
		fmt.Printf("%d %s bounds=%s usable=%s\n", m.ID, m.Name, formatArea(m.Bounds), formatArea(m.Usable))
	}
	return 0
}

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	refresh := fs.Duration("refresh", tui.DefaultRefresh, "Polling interval")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: edgesnap tui [--refresh DURATION]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Live view of grab counters, resistance edges and monitors.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  tab/shift-tab  Switch tabs")
		fmt.Fprintln(os.Stderr, "  1/2/3          Jump to tab")
		fmt.Fprintln(os.Stderr, "  r              Refresh now")
		fmt.Fprintln(os.Stderr, "  q, Ctrl+C      Quit")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if err := tui.Run(ipc.NewClient(), *refresh); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func formatArea(a ipc.Area) string {
	return fmt.Sprintf("%dx%d+%d+%d", a.Width, a.Height, a.X, a.Y)
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  edgesnap config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  edgesnap config print [--path PATH] [--effective|--defaults]")
		fmt.Fprintln(os.Stderr, "  edgesnap config explain [--path PATH] <yaml.path>")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/edgesnap/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		for _, f := range res.Files {
			fmt.Printf("  loaded %s\n", f)
		}
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/edgesnap/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		_ = fs.Bool("effective", false, "Print effective config (default)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := loadConfig(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			cfg = res.Config
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	case "explain":
		fs := flag.NewFlagSet("explain", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/edgesnap/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "explain requires <yaml.path>")
			return 2
		}
		queryPath := fs.Arg(0)

		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		value, src, err := config.Explain(res, queryPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		out, err := yaml.Marshal(value)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		fmt.Printf("path: %s\n", queryPath)
		fmt.Printf("source: %s\n", src)
		fmt.Printf("value:\n%s", string(out))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}
