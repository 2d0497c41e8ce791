package config

import "fmt"

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw file values on top of DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.MoveHotkey != nil {
		cfg.MoveHotkey = *raw.MoveHotkey
	}
	if raw.ResizeHotkey != nil {
		cfg.ResizeHotkey = *raw.ResizeHotkey
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.XAuthority != nil {
		cfg.XAuthority = *raw.XAuthority
	}
	if raw.KeyboardStep != nil {
		cfg.KeyboardStep = *raw.KeyboardStep
	}
	if raw.KeyboardFineStep != nil {
		cfg.KeyboardFineStep = *raw.KeyboardFineStep
	}
	if raw.GrabTimeout != nil {
		cfg.GrabTimeout = *raw.GrabTimeout
	}
	if raw.SnapModifier != nil {
		cfg.SnapModifier = *raw.SnapModifier
	}
	if raw.RequireFullyOnscreen != nil {
		cfg.RequireFullyOnscreen = *raw.RequireFullyOnscreen
	}
	if raw.RequireSingleMonitor != nil {
		cfg.RequireSingleMonitor = *raw.RequireSingleMonitor
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.Resistance != nil {
		applyRawClassResistance(&cfg.Resistance.Window, raw.Resistance.Window)
		applyRawClassResistance(&cfg.Resistance.Monitor, raw.Resistance.Monitor)
		applyRawClassResistance(&cfg.Resistance.Screen, raw.Resistance.Screen)
		if raw.Resistance.SnapJitterPx != nil {
			cfg.Resistance.SnapJitterPx = *raw.Resistance.SnapJitterPx
		}
	}

	return cfg, nil
}

func applyRawClassResistance(dst *ClassResistance, raw *RawClassResistance) {
	if raw == nil {
		return
	}
	if raw.PixelsToward != nil {
		dst.PixelsToward = *raw.PixelsToward
	}
	if raw.PixelsAway != nil {
		dst.PixelsAway = *raw.PixelsAway
	}
	if raw.TimeoutMS != nil {
		dst.TimeoutMS = *raw.TimeoutMS
	}
	if raw.KeyboardToward != nil {
		dst.KeyboardToward = *raw.KeyboardToward
	}
	if raw.KeyboardAway != nil {
		dst.KeyboardAway = *raw.KeyboardAway
	}
}
