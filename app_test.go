package main

import (
	"testing"

	"clickthrough-overlay/internal/config"
	"clickthrough-overlay/internal/engine"
	"clickthrough-overlay/internal/region"
)

func TestApp_RemoveHotRegion(t *testing.T) {
	app := &App{regions: region.New()}
	app.SetHotRegions([]config.RegionConfig{
		{Name: "panel", Left: 0, Top: 0, Right: 100, Bottom: 100},
		{Name: "details", Left: 0, Top: 200, Right: 100, Bottom: 300},
	})

	app.RemoveHotRegion("details")

	if app.regions.Contains(engine.Point{X: 50, Y: 250}) {
		t.Error("Removed region should no longer take input")
	}
	if !app.regions.Contains(engine.Point{X: 50, Y: 50}) {
		t.Error("Other regions should be kept")
	}
}

func TestApp_CallsBeforeStartup(t *testing.T) {
	app := &App{regions: region.New()}

	if _, err := app.ToggleWindowed(); err == nil {
		t.Error("ToggleWindowed should fail before the host exists")
	}
	if err := app.DragWindow(); err == nil {
		t.Error("DragWindow should fail before the overlay exists")
	}
	if st := app.GetStatus(); st.Started {
		t.Error("Status before startup should be empty")
	}
}
