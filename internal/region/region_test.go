package region

import (
	"testing"

	"clickthrough-overlay/internal/config"
	"clickthrough-overlay/internal/engine"
	"clickthrough-overlay/internal/win32"
)

func TestSet_Contains(t *testing.T) {
	s := New()
	s.Put("panel", win32.Rect{Left: 10, Top: 10, Right: 110, Bottom: 60})

	tests := []struct {
		p    engine.Point
		want bool
	}{
		{engine.Point{X: 10, Y: 10}, true},
		{engine.Point{X: 109.5, Y: 59.9}, true},
		{engine.Point{X: 110, Y: 30}, false},
		{engine.Point{X: 50, Y: 60}, false},
		{engine.Point{X: 9, Y: 30}, false},
	}

	for _, tc := range tests {
		if got := s.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v; want %v", tc.p, got, tc.want)
		}
	}
}

func TestSet_EmptyNeverContains(t *testing.T) {
	s := New()
	if s.Contains(engine.Point{}) {
		t.Error("Empty set should not contain any point")
	}
}

func TestSet_PutReplacesByName(t *testing.T) {
	s := New()
	s.Put("a", win32.Rect{Left: 0, Top: 0, Right: 10, Bottom: 10})
	s.Put("a", win32.Rect{Left: 100, Top: 100, Right: 110, Bottom: 110})

	if s.Len() != 1 {
		t.Fatalf("Expected 1 region, got %d", s.Len())
	}
	if s.Contains(engine.Point{X: 5, Y: 5}) {
		t.Error("Old rectangle should have been replaced")
	}
	if !s.Contains(engine.Point{X: 105, Y: 105}) {
		t.Error("New rectangle should match")
	}
}

func TestSet_DeleteAndClear(t *testing.T) {
	s := New()
	s.Put("a", win32.Rect{Right: 10, Bottom: 10})
	s.Put("b", win32.Rect{Left: 20, Right: 30, Bottom: 10})

	s.Delete("a")
	s.Delete("missing")
	if got := s.Names(); len(got) != 1 || got[0] != "b" {
		t.Errorf("Names() = %v; want [b]", got)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Expected empty set after Clear, got %d", s.Len())
	}
}

func TestSet_ReplaceCopiesInput(t *testing.T) {
	s := New()
	in := map[string]win32.Rect{"x": {Right: 5, Bottom: 5}}
	s.Replace(in)

	delete(in, "x")
	if s.Len() != 1 {
		t.Error("Replace should not alias the caller's map")
	}
}

func TestFromConfigRoundTrip(t *testing.T) {
	regions := []config.RegionConfig{
		{Name: "toolbar", Left: 0, Top: 0, Right: 300, Bottom: 40},
		{Name: "chat", Left: 20, Top: 600, Right: 420, Bottom: 900},
	}

	s := FromConfig(regions)
	if !s.Contains(engine.Point{X: 100, Y: 700}) {
		t.Error("Expected chat region to match")
	}

	out := s.Config()
	if len(out) != 2 || out[0].Name != "chat" || out[1].Name != "toolbar" {
		t.Errorf("Config() = %+v; want chat, toolbar", out)
	}
}

func TestSet_ReplaceConfig(t *testing.T) {
	s := New()
	s.Put("old", win32.Rect{Right: 10, Bottom: 10})

	s.ReplaceConfig([]config.RegionConfig{
		{Name: "dup", Left: 0, Top: 0, Right: 5, Bottom: 5},
		{Name: "dup", Left: 50, Top: 50, Right: 60, Bottom: 60},
	})

	if got := s.Names(); len(got) != 1 || got[0] != "dup" {
		t.Fatalf("Names() = %v; want [dup]", got)
	}
	if !s.Contains(engine.Point{X: 55, Y: 55}) {
		t.Error("Later duplicate should win")
	}
}
