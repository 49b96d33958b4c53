package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"clickthrough-overlay/internal/config"
	"clickthrough-overlay/internal/engine"
	"clickthrough-overlay/internal/engine/ebitenhost"
	"clickthrough-overlay/internal/logging"
	"clickthrough-overlay/internal/overlay"
	"clickthrough-overlay/internal/region"
	"clickthrough-overlay/internal/win32"
)

const handleHeight = 24

var (
	panelColour  = color.RGBA{R: 20, G: 20, B: 28, A: 220}
	handleColour = color.RGBA{R: 80, G: 80, B: 110, A: 240}
)

// Game is a transparent ebiten window with a single draggable panel
type Game struct {
	host    *ebitenhost.Host
	overlay *overlay.Service
	regions *region.Set
	log     *logging.Filtered
	panel   win32.Rect
	started bool
}

// NewGame wires the overlay service to the ebiten host
func NewGame(cfg *config.Config, log *logging.Filtered) *Game {
	host := ebitenhost.New(cfg.Window.Preview)
	regions := region.FromConfig(cfg.HotRegions)

	panel := win32.Rect{Left: 40, Top: 40, Right: 360, Bottom: 160}
	regions.Put("panel", panel)

	svc := overlay.New(cfg.Window, win32.New(), host, log)
	svc.AddFocusHandler(regions.Contains)

	return &Game{
		host:    host,
		overlay: svc,
		regions: regions,
		log:     log,
		panel:   panel,
	}
}

// Update is called every tick
func (g *Game) Update() error {
	// The window only exists once the loop runs.
	if !g.started {
		g.started = true
		if err := g.overlay.Start(); err != nil {
			logging.Warningf(g.log, "Overlay started with errors: %v", err)
		}
	}

	// Failures are logged and counted by the service.
	g.overlay.UpdateWindowFlags()

	if g.host.InputSuppressed() {
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := g.overlay.Shutdown(); err != nil {
			logging.Warningf(g.log, "Failed to restore window style: %v", err)
		}
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		g.toggleWindowed()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.overHandle() {
		if err := g.overlay.DragWindow(); err != nil {
			logging.Warningf(g.log, "Drag failed: %v", err)
		}
	}
	return nil
}

func (g *Game) overHandle() bool {
	p := g.host.PointerPosition()
	handle := g.panel
	handle.Bottom = handle.Top + handleHeight
	return handle.Contains(p.X, p.Y)
}

func (g *Game) toggleWindowed() {
	mode := engine.ToggleWindowed(g.host)
	logging.Infof(g.log, "Overlay switched to %s mode", mode)
}

// Draw leaves everything outside the panel fully transparent
func (g *Game) Draw(screen *ebiten.Image) {
	x, y := float32(g.panel.Left), float32(g.panel.Top)
	w, h := float32(g.panel.Width()), float32(g.panel.Height())

	vector.DrawFilledRect(screen, x, y, w, h, panelColour, false)
	vector.DrawFilledRect(screen, x, y, w, handleHeight, handleColour, false)

	st := g.overlay.Stats()
	ebitenutil.DebugPrintAt(screen, "drag here  (F11 windowed, Esc quit)", int(x)+6, int(y)+4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("mode: %s", g.host.FullScreenMode()), int(x)+6, int(y)+32)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("focused: %t  frames: %d", st.Focused, st.Frames), int(x)+6, int(y)+50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("native failures: %d  hot regions: %d", st.NativeFailures, g.regions.Len()), int(x)+6, int(y)+68)
}

// Layout keeps one logical pixel per window pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	configSvc, err := config.New()
	if err != nil {
		fmt.Printf("Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	cfg := configSvc.Get()
	log := logging.New(cfg.Log.Level, cfg.Log.File)
	logging.Infof(log, "Using config %s", configSvc.Path())

	ebiten.SetWindowTitle("Clickthrough Overlay")
	ebiten.SetScreenClearedEveryFrame(true)

	if err := ebiten.RunGameWithOptions(NewGame(cfg, log), &ebiten.RunGameOptions{
		ScreenTransparent: true,
	}); err != nil {
		fmt.Printf("Error running overlay: %v\n", err)
		os.Exit(1)
	}
}
