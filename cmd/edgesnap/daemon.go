package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/edgesnap/internal/config"
	"github.com/1broseidon/edgesnap/internal/hotkeys"
	"github.com/1broseidon/edgesnap/internal/ipc"
	"github.com/1broseidon/edgesnap/internal/movemode"
	"github.com/1broseidon/edgesnap/internal/platform"
)

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", "", "Config file path (default: ~/.config/edgesnap/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: edgesnap daemon [--config PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run the move/resize grab daemon in the foreground.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "daemon takes no arguments")
		fs.Usage()
		return 2
	}

	configPath := *path
	if configPath == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			log.Fatalf("Failed to resolve config path: %v", err)
		}
		configPath = p
	}
	load := func() (*config.Config, error) {
		res, err := config.LoadFromPath(configPath)
		if err != nil {
			return nil, err
		}
		return res.Config, nil
	}

	cfg, err := load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Printf("Configuration loaded (move: %s, resize: %s, snap: %s)",
		cfg.MoveHotkey, cfg.ResizeHotkey, cfg.SnapModifier)

	level := new(slog.LevelVar)
	level.Set(cfg.SlogLevel())
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if cfg.XAuthority != "" {
		os.Setenv("XAUTHORITY", cfg.XAuthority)
	}

	// Connect to display server
	backend, err := platform.NewLinuxBackendFromDisplay(cfg.Display)
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer backend.Disconnect()

	mode := movemode.NewMode(backend, cfg, logger)

	hotkeyHandler := hotkeys.NewHandler(backend, mode)
	if err := hotkeyHandler.RegisterGrab(cfg.MoveHotkey, movemode.KindMove); err != nil {
		log.Fatalf("Failed to register move hotkey: %v", err)
	}
	if err := hotkeyHandler.RegisterGrab(cfg.ResizeHotkey, movemode.KindResize); err != nil {
		log.Fatalf("Failed to register resize hotkey: %v", err)
	}
	log.Printf("Hotkeys registered: move=%s resize=%s", cfg.MoveHotkey, cfg.ResizeHotkey)

	reloadChan := make(chan *config.Config, 1)

	ipcServer, err := ipc.NewServer(cfg, load, mode, backend, reloadChan)
	if err != nil {
		log.Fatalf("Failed to create IPC server: %v", err)
	}
	if err := ipcServer.Start(); err != nil {
		log.Fatalf("Failed to start IPC server: %v", err)
	}
	defer ipcServer.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		err := config.Watch(ctx, configPath, func(newCfg *config.Config) {
			select {
			case reloadChan <- newCfg:
			case <-ctx.Done():
			}
		})
		if err != nil {
			log.Printf("Warning: config watcher stopped: %v", err)
		}
	}()

	current := cfg
	apply := func(newCfg *config.Config) {
		if hotkeysChanged(current, newCfg) {
			if err := hotkeyHandler.Rebind(newCfg.MoveHotkey, newCfg.ResizeHotkey); err != nil {
				log.Printf("Warning: keeping hotkeys move=%s resize=%s: %v", current.MoveHotkey, current.ResizeHotkey, err)
				newCfg = keepHotkeys(newCfg, current)
			} else {
				log.Printf("Hotkeys rebound: move=%s resize=%s", newCfg.MoveHotkey, newCfg.ResizeHotkey)
			}
		}
		ipcServer.UpdateConfig(newCfg)
		mode.UpdateConfig(newCfg)
		level.Set(newCfg.SlogLevel())
		current = newCfg
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		for {
			select {
			case sig := <-sigCh:
				switch sig {
				case syscall.SIGHUP:
					log.Println("Received SIGHUP, reloading config...")
					newCfg, err := load()
					if err != nil {
						log.Printf("Config reload failed: %v", err)
						continue
					}
					apply(newCfg)
					log.Println("Config reloaded successfully")

				case os.Interrupt, syscall.SIGTERM:
					log.Println("Shutting down edgesnap daemon...")
					mode.Exit()
					cancel()
					backend.Quit()
					return
				}

			case newCfg := <-reloadChan:
				// RELOAD over IPC or a file change.
				apply(newCfg)
			}
		}
	}()

	log.Println("edgesnap daemon started, entering event loop...")
	backend.EventLoop()
	return 0
}

func hotkeysChanged(old, next *config.Config) bool {
	return old.MoveHotkey != next.MoveHotkey || old.ResizeHotkey != next.ResizeHotkey
}

// keepHotkeys returns a copy of next still carrying the hotkeys that are
// actually bound.
func keepHotkeys(next, bound *config.Config) *config.Config {
	cfg := *next
	cfg.MoveHotkey = bound.MoveHotkey
	cfg.ResizeHotkey = bound.ResizeHotkey
	return &cfg
}
