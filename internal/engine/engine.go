// Package engine describes the host that drives the overlay: its frame loop,
// display mode and pointer input.
package engine

import "math"

// Point is a pointer position in the host's coordinate space.
type Point struct {
	X float64
	Y float64
}

// FullScreenMode mirrors the display modes a host can run in.
type FullScreenMode int

const (
	ExclusiveFullScreen FullScreenMode = iota
	FullScreenWindow
	MaximizedWindow
	Windowed
)

func (m FullScreenMode) String() string {
	switch m {
	case ExclusiveFullScreen:
		return "exclusive-fullscreen"
	case FullScreenWindow:
		return "fullscreen-window"
	case MaximizedWindow:
		return "maximized-window"
	case Windowed:
		return "windowed"
	default:
		return "unknown"
	}
}

// Host is the engine-facing interface the overlay consumes.
type Host interface {
	// CurrentResolution returns the size of the current display mode in
	// physical pixels, the unit native window calls take.
	CurrentResolution() (width, height int)
	// SetResolution takes a size in physical pixels.
	SetResolution(width, height int, mode FullScreenMode)
	FullScreenMode() FullScreenMode
	SetRunInBackground(enabled bool)
	PointerPosition() Point
	// ResetInputAxes discards pending input state so a drag gesture is not
	// read as game input.
	ResetInputAxes()
	// IsEditor reports whether the process runs inside a preview host where
	// native window manipulation must be skipped.
	IsEditor() bool
}

// PhysicalSize scales a device-independent size by the monitor scale factor.
// A non-positive scale is treated as 1.
func PhysicalSize(width, height int, scale float64) (int, int) {
	if scale <= 0 {
		return width, height
	}
	return int(math.Round(float64(width) * scale)), int(math.Round(float64(height) * scale))
}

// LogicalSize is the inverse of PhysicalSize.
func LogicalSize(width, height int, scale float64) (int, int) {
	if scale <= 0 {
		return width, height
	}
	return int(math.Round(float64(width) / scale)), int(math.Round(float64(height) / scale))
}

// ToggleWindowed flips h between a borderless full-screen window and a
// window of the same size, which is the only mode that can be dragged. It
// returns the new mode.
func ToggleWindowed(h Host) FullScreenMode {
	width, height := h.CurrentResolution()
	mode := Windowed
	if h.FullScreenMode() == Windowed {
		mode = FullScreenWindow
	}
	h.SetResolution(width, height, mode)
	return mode
}
