package resist

import (
	"time"

	"github.com/1broseidon/edgesnap/internal/edges"
)

// ClassThresholds tunes resistance against one class of edge.
type ClassThresholds struct {
	// PixelsToward and PixelsAway are how far past an edge the pointer has
	// to travel before the edge lets go.
	PixelsToward int
	PixelsAway   int
	// Timeout delays crossing the edge when approaching it. Zero disables
	// the delay.
	Timeout time.Duration
	// KeyboardToward and KeyboardAway are the buildup needed before
	// keyboard moves pass the edge.
	KeyboardToward int
	KeyboardAway   int
}

// Thresholds holds every resistance constant used during a grab.
type Thresholds struct {
	Window     ClassThresholds
	Monitor    ClassThresholds
	Screen     ClassThresholds
	SnapJitter int
}

// DefaultThresholds returns the stock resistance values.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Window: ClassThresholds{
			PixelsToward:   16,
			PixelsAway:     8,
			KeyboardToward: 16,
			KeyboardAway:   16,
		},
		Monitor: ClassThresholds{
			PixelsToward:   32,
			PixelsAway:     8,
			Timeout:        100 * time.Millisecond,
			KeyboardToward: 24,
			KeyboardAway:   16,
		},
		Screen: ClassThresholds{
			PixelsToward:   32,
			PixelsAway:     8,
			Timeout:        750 * time.Millisecond,
			KeyboardToward: 32,
			KeyboardAway:   16,
		},
		SnapJitter: 8,
	}
}

// For returns the thresholds for an edge class.
func (t Thresholds) For(c edges.Class) ClassThresholds {
	switch c {
	case edges.ClassMonitor:
		return t.Monitor
	case edges.ClassScreen:
		return t.Screen
	default:
		return t.Window
	}
}

func (c ClassThresholds) pixels(toward bool) int {
	if toward {
		return c.PixelsToward
	}
	return c.PixelsAway
}

func (c ClassThresholds) keyboard(toward bool) int {
	if toward {
		return c.KeyboardToward
	}
	return c.KeyboardAway
}
