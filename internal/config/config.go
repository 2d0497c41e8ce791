package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/1broseidon/edgesnap/internal/resist"
)

// ClassResistance tunes how one class of edge resists movement.
type ClassResistance struct {
	PixelsToward   int `yaml:"pixels_toward"`
	PixelsAway     int `yaml:"pixels_away"`
	TimeoutMS      int `yaml:"timeout_ms"`
	KeyboardToward int `yaml:"keyboard_toward"`
	KeyboardAway   int `yaml:"keyboard_away"`
}

// Resistance groups the per-class resistance settings.
type Resistance struct {
	Window       ClassResistance `yaml:"window"`
	Monitor      ClassResistance `yaml:"monitor"`
	Screen       ClassResistance `yaml:"screen"`
	SnapJitterPx int             `yaml:"snap_jitter_px"`
}

// Config holds the application configuration.
type Config struct {
	MoveHotkey           string     `yaml:"move_hotkey"`
	ResizeHotkey         string     `yaml:"resize_hotkey"`
	Display              string     `yaml:"display,omitempty"`
	XAuthority           string     `yaml:"xauthority,omitempty"`
	KeyboardStep         int        `yaml:"keyboard_step"`
	KeyboardFineStep     int        `yaml:"keyboard_fine_step"`
	GrabTimeout          int        `yaml:"grab_timeout"`
	SnapModifier         string     `yaml:"snap_modifier"`
	RequireFullyOnscreen bool       `yaml:"require_fully_onscreen"`
	RequireSingleMonitor bool       `yaml:"require_single_monitor"`
	Resistance           Resistance `yaml:"resistance"`
	LogLevel             string     `yaml:"log_level"`
}

// SnapModifiers lists the accepted snap_modifier values.
var SnapModifiers = []string{"shift", "control", "mod1", "mod4", "none"}

func DefaultConfig() *Config {
	def := resist.DefaultThresholds()
	return &Config{
		MoveHotkey:           "Mod4-Mod1-m", // Super+Alt+M to move
		ResizeHotkey:         "Mod4-Mod1-s", // Super+Alt+S to size
		KeyboardStep:         10,
		KeyboardFineStep:     1,
		GrabTimeout:          10, // seconds
		SnapModifier:         "shift",
		RequireFullyOnscreen: true,
		RequireSingleMonitor: false,
		Resistance: Resistance{
			Window:       fromThresholds(def.Window),
			Monitor:      fromThresholds(def.Monitor),
			Screen:       fromThresholds(def.Screen),
			SnapJitterPx: def.SnapJitter,
		},
		LogLevel: "info",
	}
}

func fromThresholds(t resist.ClassThresholds) ClassResistance {
	return ClassResistance{
		PixelsToward:   t.PixelsToward,
		PixelsAway:     t.PixelsAway,
		TimeoutMS:      int(t.Timeout / time.Millisecond),
		KeyboardToward: t.KeyboardToward,
		KeyboardAway:   t.KeyboardAway,
	}
}

func (c ClassResistance) thresholds() resist.ClassThresholds {
	return resist.ClassThresholds{
		PixelsToward:   c.PixelsToward,
		PixelsAway:     c.PixelsAway,
		Timeout:        time.Duration(c.TimeoutMS) * time.Millisecond,
		KeyboardToward: c.KeyboardToward,
		KeyboardAway:   c.KeyboardAway,
	}
}

// Thresholds converts the resistance section for the grab session.
func (c *Config) Thresholds() resist.Thresholds {
	return resist.Thresholds{
		Window:     c.Resistance.Window.thresholds(),
		Monitor:    c.Resistance.Monitor.thresholds(),
		Screen:     c.Resistance.Screen.thresholds(),
		SnapJitter: c.Resistance.SnapJitterPx,
	}
}

// GrabTimeoutDuration returns how long an idle keyboard grab lasts.
func (c *Config) GrabTimeoutDuration() time.Duration {
	return time.Duration(c.GrabTimeout) * time.Second
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.MoveHotkey) == "" {
		return &ValidationError{Path: "move_hotkey", Err: fmt.Errorf("move_hotkey is required")}
	}
	if strings.TrimSpace(c.ResizeHotkey) == "" {
		return &ValidationError{Path: "resize_hotkey", Err: fmt.Errorf("resize_hotkey is required")}
	}
	if c.MoveHotkey == c.ResizeHotkey {
		return &ValidationError{Path: "resize_hotkey", Err: fmt.Errorf("resize_hotkey must differ from move_hotkey")}
	}
	if err := checkKeySequence(c.MoveHotkey); err != nil {
		return &ValidationError{Path: "move_hotkey", Err: err}
	}
	if err := checkKeySequence(c.ResizeHotkey); err != nil {
		return &ValidationError{Path: "resize_hotkey", Err: err}
	}
	if c.KeyboardStep <= 0 {
		return &ValidationError{Path: "keyboard_step", Err: fmt.Errorf("keyboard_step must be > 0")}
	}
	if c.KeyboardFineStep <= 0 {
		return &ValidationError{Path: "keyboard_fine_step", Err: fmt.Errorf("keyboard_fine_step must be > 0")}
	}
	if c.GrabTimeout < 0 {
		return &ValidationError{Path: "grab_timeout", Err: fmt.Errorf("grab_timeout must be >= 0")}
	}
	if !isSnapModifier(c.SnapModifier) {
		return &ValidationError{Path: "snap_modifier", Err: fmt.Errorf("snap_modifier must be one of: %s", strings.Join(SnapModifiers, ", "))}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}

	classes := []struct {
		name string
		res  ClassResistance
	}{
		{"window", c.Resistance.Window},
		{"monitor", c.Resistance.Monitor},
		{"screen", c.Resistance.Screen},
	}
	for _, class := range classes {
		if err := validateClassResistance(class.res); err != nil {
			return &ValidationError{Path: "resistance." + class.name, Err: err}
		}
	}
	if c.Resistance.SnapJitterPx < 0 {
		return &ValidationError{Path: "resistance.snap_jitter_px", Err: fmt.Errorf("snap_jitter_px must be >= 0")}
	}

	return nil
}

// validateClassResistance checks a single resistance block.
func validateClassResistance(c ClassResistance) error {
	fields := []struct {
		name  string
		value int
	}{
		{"pixels_toward", c.PixelsToward},
		{"pixels_away", c.PixelsAway},
		{"timeout_ms", c.TimeoutMS},
		{"keyboard_toward", c.KeyboardToward},
		{"keyboard_away", c.KeyboardAway},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s must be >= 0", f.name)
		}
	}
	if c.TimeoutMS > 10000 {
		return fmt.Errorf("timeout_ms must be <= 10000")
	}
	return nil
}

func isSnapModifier(s string) bool {
	for _, m := range SnapModifiers {
		if s == m {
			return true
		}
	}
	return false
}

var keyModifiers = map[string]bool{
	"shift": true, "lock": true, "control": true, "any": true,
	"mod1": true, "mod2": true, "mod3": true, "mod4": true, "mod5": true,
}

// checkKeySequence checks the "Mod4-Mod1-m" form xgbutil's keybind parses:
// dash-separated modifiers followed by exactly one key name. Whether the key
// name exists in the keyboard map is only known once bound.
func checkKeySequence(seq string) error {
	var keys []string
	for _, part := range strings.Split(seq, "-") {
		if part == "" {
			return fmt.Errorf("empty part in key sequence %q", seq)
		}
		if !keyModifiers[strings.ToLower(part)] {
			keys = append(keys, part)
		}
	}
	switch len(keys) {
	case 0:
		return fmt.Errorf("key sequence %q has no key", seq)
	case 1:
		return nil
	default:
		return fmt.Errorf("key sequence %q has more than one key: %s", seq, strings.Join(keys, ", "))
	}
}
