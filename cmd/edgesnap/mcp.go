package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/edgesnap/internal/ipc"
	"github.com/1broseidon/edgesnap/internal/mcp"
)

const mcpServeUsage = `Start the MCP server on stdio. Tools forward to the running daemon
over its IPC socket, so start "edgesnap daemon" first.`

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: edgesnap mcp serve")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, mcpServeUsage)
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		if code, ok := noArgs("mcp serve", mcpServeUsage, args[1:]); !ok {
			return code
		}
		return runMCPServe()
	case "help", "-h", "--help":
		printMCPUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(os.Stderr)
		return 2
	}
}

func runMCPServe() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcp.NewServer(ipc.NewClient()).Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "mcp server: %v\n", err)
		return 1
	}
	return 0
}
