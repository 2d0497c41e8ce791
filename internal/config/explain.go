package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths include:
//
//	move_hotkey
//	resize_hotkey
//	display
//	xauthority
//	keyboard_step
//	keyboard_fine_step
//	grab_timeout
//	snap_modifier
//	require_fully_onscreen
//	require_single_monitor
//	log_level
//	resistance.snap_jitter_px
//	resistance.<window|monitor|screen>
//	resistance.<window|monitor|screen>.pixels_toward
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	if parts[0] == "resistance" {
		return lookupResistance(cfg.Resistance, parts[1:])
	}
	if len(parts) != 1 {
		return nil, fmt.Errorf("unknown path %q", path)
	}

	switch parts[0] {
	case "move_hotkey":
		return cfg.MoveHotkey, nil
	case "resize_hotkey":
		return cfg.ResizeHotkey, nil
	case "display":
		return cfg.Display, nil
	case "xauthority":
		return cfg.XAuthority, nil
	case "keyboard_step":
		return cfg.KeyboardStep, nil
	case "keyboard_fine_step":
		return cfg.KeyboardFineStep, nil
	case "grab_timeout":
		return cfg.GrabTimeout, nil
	case "snap_modifier":
		return cfg.SnapModifier, nil
	case "require_fully_onscreen":
		return cfg.RequireFullyOnscreen, nil
	case "require_single_monitor":
		return cfg.RequireSingleMonitor, nil
	case "log_level":
		return cfg.LogLevel, nil
	default:
		return nil, fmt.Errorf("unknown path %q", path)
	}
}

func lookupResistance(r Resistance, parts []string) (any, error) {
	if len(parts) == 0 {
		return r, nil
	}

	var class ClassResistance
	switch parts[0] {
	case "snap_jitter_px":
		if len(parts) != 1 {
			return nil, fmt.Errorf("unknown path %q", "resistance."+strings.Join(parts, "."))
		}
		return r.SnapJitterPx, nil
	case "window":
		class = r.Window
	case "monitor":
		class = r.Monitor
	case "screen":
		class = r.Screen
	default:
		return nil, fmt.Errorf("unknown resistance class %q", parts[0])
	}

	if len(parts) == 1 {
		return class, nil
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("unknown path %q", "resistance."+strings.Join(parts, "."))
	}
	switch parts[1] {
	case "pixels_toward":
		return class.PixelsToward, nil
	case "pixels_away":
		return class.PixelsAway, nil
	case "timeout_ms":
		return class.TimeoutMS, nil
	case "keyboard_toward":
		return class.KeyboardToward, nil
	case "keyboard_away":
		return class.KeyboardAway, nil
	default:
		return nil, fmt.Errorf("unknown resistance field %q", parts[1])
	}
}
