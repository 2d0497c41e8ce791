package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

type RawClassResistance struct {
	PixelsToward   *int `yaml:"pixels_toward"`
	PixelsAway     *int `yaml:"pixels_away"`
	TimeoutMS      *int `yaml:"timeout_ms"`
	KeyboardToward *int `yaml:"keyboard_toward"`
	KeyboardAway   *int `yaml:"keyboard_away"`
}

type RawResistance struct {
	Window       *RawClassResistance `yaml:"window"`
	Monitor      *RawClassResistance `yaml:"monitor"`
	Screen       *RawClassResistance `yaml:"screen"`
	SnapJitterPx *int                `yaml:"snap_jitter_px"`
}

type RawConfig struct {
	Include              IncludeList    `yaml:"include"`
	MoveHotkey           *string        `yaml:"move_hotkey"`
	ResizeHotkey         *string        `yaml:"resize_hotkey"`
	Display              *string        `yaml:"display"`
	XAuthority           *string        `yaml:"xauthority"`
	KeyboardStep         *int           `yaml:"keyboard_step"`
	KeyboardFineStep     *int           `yaml:"keyboard_fine_step"`
	GrabTimeout          *int           `yaml:"grab_timeout"`
	SnapModifier         *string        `yaml:"snap_modifier"`
	RequireFullyOnscreen *bool          `yaml:"require_fully_onscreen"`
	RequireSingleMonitor *bool          `yaml:"require_single_monitor"`
	Resistance           *RawResistance `yaml:"resistance"`
	LogLevel             *string        `yaml:"log_level"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c

	if overlay.MoveHotkey != nil {
		out.MoveHotkey = overlay.MoveHotkey
	}
	if overlay.ResizeHotkey != nil {
		out.ResizeHotkey = overlay.ResizeHotkey
	}
	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.XAuthority != nil {
		out.XAuthority = overlay.XAuthority
	}
	if overlay.KeyboardStep != nil {
		out.KeyboardStep = overlay.KeyboardStep
	}
	if overlay.KeyboardFineStep != nil {
		out.KeyboardFineStep = overlay.KeyboardFineStep
	}
	if overlay.GrabTimeout != nil {
		out.GrabTimeout = overlay.GrabTimeout
	}
	if overlay.SnapModifier != nil {
		out.SnapModifier = overlay.SnapModifier
	}
	if overlay.RequireFullyOnscreen != nil {
		out.RequireFullyOnscreen = overlay.RequireFullyOnscreen
	}
	if overlay.RequireSingleMonitor != nil {
		out.RequireSingleMonitor = overlay.RequireSingleMonitor
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.Resistance != nil {
		base := RawResistance{}
		if out.Resistance != nil {
			base = *out.Resistance
		}
		merged := mergeRawResistance(base, *overlay.Resistance)
		out.Resistance = &merged
	}

	return out
}

func mergeRawResistance(base RawResistance, overlay RawResistance) RawResistance {
	out := base
	out.Window = mergeRawClassResistance(base.Window, overlay.Window)
	out.Monitor = mergeRawClassResistance(base.Monitor, overlay.Monitor)
	out.Screen = mergeRawClassResistance(base.Screen, overlay.Screen)
	if overlay.SnapJitterPx != nil {
		out.SnapJitterPx = overlay.SnapJitterPx
	}
	return out
}

func mergeRawClassResistance(base *RawClassResistance, overlay *RawClassResistance) *RawClassResistance {
	if overlay == nil {
		return base
	}
	out := RawClassResistance{}
	if base != nil {
		out = *base
	}
	if overlay.PixelsToward != nil {
		out.PixelsToward = overlay.PixelsToward
	}
	if overlay.PixelsAway != nil {
		out.PixelsAway = overlay.PixelsAway
	}
	if overlay.TimeoutMS != nil {
		out.TimeoutMS = overlay.TimeoutMS
	}
	if overlay.KeyboardToward != nil {
		out.KeyboardToward = overlay.KeyboardToward
	}
	if overlay.KeyboardAway != nil {
		out.KeyboardAway = overlay.KeyboardAway
	}
	return &out
}
