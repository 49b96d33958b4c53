package wailshost

import (
	"testing"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func screen(current, primary bool, w, h, pw, ph int) runtime.Screen {
	s := runtime.Screen{IsCurrent: current, IsPrimary: primary}
	s.Size.Width, s.Size.Height = w, h
	s.PhysicalSize.Width, s.PhysicalSize.Height = pw, ph
	return s
}

func TestPhysicalSize(t *testing.T) {
	tests := []struct {
		name       string
		screens    []runtime.Screen
		wantWidth  int
		wantHeight int
	}{
		{"no screens", nil, 0, 0},
		{"unscaled", []runtime.Screen{screen(true, true, 1920, 1080, 1920, 1080)}, 1920, 1080},
		{"150 percent", []runtime.Screen{screen(true, true, 1707, 960, 2560, 1440)}, 2560, 1440},
		{"no physical size", []runtime.Screen{screen(true, true, 1280, 720, 0, 0)}, 1280, 720},
		{"current wins", []runtime.Screen{
			screen(false, true, 1920, 1080, 1920, 1080),
			screen(true, false, 1280, 720, 2560, 1440),
		}, 2560, 1440},
		{"primary fallback", []runtime.Screen{
			screen(false, false, 800, 600, 800, 600),
			screen(false, true, 1536, 864, 1920, 1080),
		}, 1920, 1080},
		{"first fallback", []runtime.Screen{
			screen(false, false, 1024, 768, 2048, 1536),
			screen(false, false, 800, 600, 800, 600),
		}, 2048, 1536},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h := physicalSize(tc.screens)
			if w != tc.wantWidth || h != tc.wantHeight {
				t.Errorf("physicalSize() = %dx%d; want %dx%d", w, h, tc.wantWidth, tc.wantHeight)
			}
		})
	}
}

func TestScaleFactor(t *testing.T) {
	if got := scaleFactor(screen(true, true, 1280, 720, 2560, 1440)); got != 2 {
		t.Errorf("scaleFactor() = %v; want 2", got)
	}
	if got := scaleFactor(screen(true, true, 1280, 720, 0, 0)); got != 1 {
		t.Errorf("scaleFactor() without physical size = %v; want 1", got)
	}
}
