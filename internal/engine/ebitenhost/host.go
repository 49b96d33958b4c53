// Package ebitenhost drives the overlay from an ebiten game loop.
package ebitenhost

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"clickthrough-overlay/internal/engine"
)

// Host adapts the ebiten game loop to engine.Host. All methods are meant to
// be called from the game's Update.
type Host struct {
	mu         sync.Mutex
	mode       engine.FullScreenMode
	preview    bool
	suppressed bool
}

// New creates an ebiten host. preview marks a development run where native
// window changes are skipped.
func New(preview bool) *Host {
	mode := engine.Windowed
	if ebiten.IsFullscreen() {
		mode = engine.FullScreenWindow
	}
	return &Host{mode: mode, preview: preview}
}

// CurrentResolution returns the monitor size in physical pixels. ebiten
// reports device-independent pixels, which native calls would undersize on
// scaled displays.
func (h *Host) CurrentResolution() (int, int) {
	m := ebiten.Monitor()
	width, height := m.Size()
	return engine.PhysicalSize(width, height, m.DeviceScaleFactor())
}

func (h *Host) SetResolution(width, height int, mode engine.FullScreenMode) {
	h.mu.Lock()
	h.mode = mode
	h.mu.Unlock()

	width, height = engine.LogicalSize(width, height, ebiten.Monitor().DeviceScaleFactor())

	switch mode {
	case engine.ExclusiveFullScreen, engine.FullScreenWindow:
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowSize(width, height)
		ebiten.SetFullscreen(true)
	case engine.MaximizedWindow:
		ebiten.SetFullscreen(false)
		ebiten.SetWindowDecorated(true)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.MaximizeWindow()
	default:
		ebiten.SetFullscreen(false)
		ebiten.SetWindowDecorated(true)
		ebiten.SetWindowSize(width, height)
	}
}

// FullScreenMode reports the requested mode, corrected to Windowed when the
// window has left fullscreen on its own.
func (h *Host) FullScreenMode() engine.FullScreenMode {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.mode {
	case engine.ExclusiveFullScreen, engine.FullScreenWindow:
		if !ebiten.IsFullscreen() {
			return engine.Windowed
		}
	case engine.MaximizedWindow:
		if !ebiten.IsWindowMaximized() {
			return engine.Windowed
		}
	}
	return h.mode
}

func (h *Host) SetRunInBackground(enabled bool) {
	ebiten.SetRunnableOnUnfocused(enabled)
}

func (h *Host) PointerPosition() engine.Point {
	x, y := ebiten.CursorPosition()
	return engine.Point{X: float64(x), Y: float64(y)}
}

func (h *Host) ResetInputAxes() {
	h.mu.Lock()
	h.suppressed = true
	h.mu.Unlock()
}

// InputSuppressed reports and clears a pending ResetInputAxes. Games call it
// once per Update and skip their own input handling when it returns true.
func (h *Host) InputSuppressed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.suppressed
	h.suppressed = false
	return s
}

func (h *Host) IsEditor() bool {
	return h.preview
}
