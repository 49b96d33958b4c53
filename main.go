package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"

	"clickthrough-overlay/internal/config"
	"clickthrough-overlay/internal/engine"
	"clickthrough-overlay/internal/engine/wailshost"
	"clickthrough-overlay/internal/logging"
	"clickthrough-overlay/internal/overlay"
	"clickthrough-overlay/internal/region"
	"clickthrough-overlay/internal/win32"
)

//go:embed all:frontend/dist
var assets embed.FS

const appTitle = "Clickthrough Overlay"

// App struct
type App struct {
	ctx     context.Context
	config  *config.Service
	log     *logging.Filtered
	native  win32.API
	host    *wailshost.Host
	regions *region.Set
	overlay *overlay.Service
	frames  *frameLoop
}

// NewApp creates a new App application struct
func NewApp(configSvc *config.Service, log *logging.Filtered) *App {
	return &App{
		config:  configSvc,
		log:     log,
		native:  win32.New(),
		regions: region.FromConfig(configSvc.Get().HotRegions),
	}
}

// OnStartup is called when the app starts up
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx

	windowCfg := a.config.Get().Window
	if windowCfg.Title == "" {
		windowCfg.Title = appTitle
	}

	a.host = wailshost.New(ctx, a.native)
	a.overlay = overlay.New(windowCfg, a.native, a.host, a.log)
	a.overlay.AddFocusHandler(a.regions.Contains)
}

// OnDomReady takes over the window once it exists and starts the frame loop
func (a *App) OnDomReady(ctx context.Context) {
	if err := a.overlay.Start(); err != nil {
		logging.Warningf(a.log, "Overlay started with errors: %v", err)
	}

	a.frames = newFrameLoop(a.overlay, a.log, a.config.Get().Window.FrameIntervalMs)
	a.frames.Start()
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	if a.frames != nil {
		a.frames.Stop()
	}
	if a.overlay != nil {
		if err := a.overlay.Shutdown(); err != nil {
			logging.Warningf(a.log, "Failed to restore window style: %v", err)
		}
	}
	if a.config != nil {
		a.config.Save()
	}
}

// Frontend API methods (these will be exposed to the frontend)

// SetHotRegions replaces the regions where the overlay accepts input
func (a *App) SetHotRegions(regions []config.RegionConfig) {
	a.regions.ReplaceConfig(regions)
}

// RemoveHotRegion drops one region, e.g. when its element leaves the page
func (a *App) RemoveHotRegion(name string) {
	a.regions.Delete(name)
}

// ClearHotRegions makes the whole window click-through
func (a *App) ClearHotRegions() {
	a.regions.Clear()
}

// SaveHotRegions persists the current regions to the config file
func (a *App) SaveHotRegions() error {
	if err := a.config.UpdateHotRegions(a.regions.Config()); err != nil {
		return fmt.Errorf("failed to save hot regions: %w", err)
	}
	return nil
}

// DragWindow starts a system window move from the current pointer position
func (a *App) DragWindow() error {
	if a.overlay == nil {
		return fmt.Errorf("overlay service not available")
	}
	return a.overlay.DragWindow()
}

// ToggleWindowed switches between the full-screen overlay and a plain
// window, which is the only mode that can be dragged. It returns the new
// mode's name.
func (a *App) ToggleWindowed() (string, error) {
	if a.host == nil {
		return "", fmt.Errorf("window host not available")
	}
	mode := engine.ToggleWindowed(a.host)
	logging.Infof(a.log, "Overlay switched to %s mode", mode)
	return mode.String(), nil
}

// GetStatus returns the overlay counters for the debug panel
func (a *App) GetStatus() overlay.Stats {
	if a.overlay == nil {
		return overlay.Stats{}
	}
	return a.overlay.Stats()
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

	// Create an instance of the app structure
	app := NewApp(configSvc, log)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  appTitle,
		Width:  800,
		Height: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Frameless:        true,
		AlwaysOnTop:      true,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0}, // Transparent
		Windows: &wailswindows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},
		Logger:     log,
		LogLevel:   log.Level(),
		OnStartup:  app.OnStartup,
		OnDomReady: app.OnDomReady,
		OnShutdown: app.OnShutdown,
		Bind:       []interface{}{app},
	})

	if err != nil {
		fmt.Printf("Error starting application: %v\n", err)
		os.Exit(1)
	}
}
