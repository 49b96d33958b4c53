// Package wailshost drives the overlay from a wails application window.
package wailshost

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"clickthrough-overlay/internal/engine"
	"clickthrough-overlay/internal/win32"
)

// InputResetEvent is emitted to the frontend when pending input must be dropped.
const InputResetEvent = "input:reset"

// Host adapts a wails application window to engine.Host. Pointer positions
// are window-relative physical pixels.
type Host struct {
	ctx    context.Context
	native win32.API

	mu   sync.Mutex
	mode engine.FullScreenMode
}

// New creates a host bound to the wails runtime context passed to OnStartup.
func New(ctx context.Context, native win32.API) *Host {
	mode := engine.Windowed
	if runtime.WindowIsFullscreen(ctx) {
		mode = engine.FullScreenWindow
	}
	return &Host{ctx: ctx, native: native, mode: mode}
}

// currentScreen picks the screen the window is on, falling back to the
// primary screen and then the first one.
func currentScreen(screens []runtime.Screen) (runtime.Screen, bool) {
	if len(screens) == 0 {
		return runtime.Screen{}, false
	}
	chosen := screens[0]
	for _, s := range screens {
		if s.IsCurrent {
			return s, true
		}
		if s.IsPrimary {
			chosen = s
		}
	}
	return chosen, true
}

// scaleFactor is the ratio of physical to logical pixels on s. Platforms that
// do not report a physical size are taken as unscaled.
func scaleFactor(s runtime.Screen) float64 {
	if s.PhysicalSize.Width <= 0 || s.Size.Width <= 0 {
		return 1
	}
	return float64(s.PhysicalSize.Width) / float64(s.Size.Width)
}

// physicalSize returns the physical pixel size of the current screen.
func physicalSize(screens []runtime.Screen) (int, int) {
	s, ok := currentScreen(screens)
	if !ok {
		return 0, 0
	}
	if s.PhysicalSize.Width > 0 && s.PhysicalSize.Height > 0 {
		return s.PhysicalSize.Width, s.PhysicalSize.Height
	}
	return engine.PhysicalSize(s.Size.Width, s.Size.Height, scaleFactor(s))
}

func (h *Host) screens() []runtime.Screen {
	screens, err := runtime.ScreenGetAll(h.ctx)
	if err != nil {
		return nil
	}
	return screens
}

// CurrentResolution returns the physical size of the screen the window is on.
func (h *Host) CurrentResolution() (int, int) {
	return physicalSize(h.screens())
}

// SetResolution converts the physical size back to the logical pixels wails
// sizes windows in.
func (h *Host) SetResolution(width, height int, mode engine.FullScreenMode) {
	h.mu.Lock()
	h.mode = mode
	h.mu.Unlock()

	if s, ok := currentScreen(h.screens()); ok {
		width, height = engine.LogicalSize(width, height, scaleFactor(s))
	}

	switch mode {
	case engine.ExclusiveFullScreen, engine.FullScreenWindow:
		runtime.WindowSetSize(h.ctx, width, height)
		runtime.WindowFullscreen(h.ctx)
	case engine.MaximizedWindow:
		runtime.WindowUnfullscreen(h.ctx)
		runtime.WindowMaximise(h.ctx)
	default:
		runtime.WindowUnfullscreen(h.ctx)
		runtime.WindowSetSize(h.ctx, width, height)
	}
}

func (h *Host) FullScreenMode() engine.FullScreenMode {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch h.mode {
	case engine.ExclusiveFullScreen, engine.FullScreenWindow:
		if !runtime.WindowIsFullscreen(h.ctx) {
			return engine.Windowed
		}
	case engine.MaximizedWindow:
		if !runtime.WindowIsMaximised(h.ctx) {
			return engine.Windowed
		}
	}
	return h.mode
}

// SetRunInBackground is a no-op: the wails frame loop is ticker driven and
// keeps running when the window loses focus.
func (h *Host) SetRunInBackground(enabled bool) {}

func (h *Host) PointerPosition() engine.Point {
	pt, err := h.native.CursorPos()
	if err != nil {
		return engine.Point{X: -1, Y: -1}
	}
	x, y := runtime.WindowGetPosition(h.ctx)
	return engine.Point{X: float64(pt.X) - float64(x), Y: float64(pt.Y) - float64(y)}
}

func (h *Host) ResetInputAxes() {
	runtime.EventsEmit(h.ctx, InputResetEvent)
}

// IsEditor reports true under `wails dev`, whose live-reload window is not
// the one the overlay should take over.
func (h *Host) IsEditor() bool {
	return runtime.Environment(h.ctx).BuildType == "dev"
}
