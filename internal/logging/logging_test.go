package logging

import (
	"testing"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

type recorder struct {
	lines []string
}

func (r *recorder) Print(message string)   { r.lines = append(r.lines, "PRINT "+message) }
func (r *recorder) Trace(message string)   { r.lines = append(r.lines, "TRACE "+message) }
func (r *recorder) Debug(message string)   { r.lines = append(r.lines, "DEBUG "+message) }
func (r *recorder) Info(message string)    { r.lines = append(r.lines, "INFO "+message) }
func (r *recorder) Warning(message string) { r.lines = append(r.lines, "WARNING "+message) }
func (r *recorder) Error(message string)   { r.lines = append(r.lines, "ERROR "+message) }
func (r *recorder) Fatal(message string)   { r.lines = append(r.lines, "FATAL "+message) }

func TestFiltered_DropsBelowLevel(t *testing.T) {
	rec := &recorder{}
	l := Wrap(rec, logger.WARNING)

	l.Trace("t")
	l.Debug("d")
	l.Info("i")
	l.Warning("w")
	l.Error("e")

	want := []string{"WARNING w", "ERROR e"}
	if len(rec.lines) != len(want) {
		t.Fatalf("got %v; want %v", rec.lines, want)
	}
	for i := range want {
		if rec.lines[i] != want[i] {
			t.Errorf("line %d = %q; want %q", i, rec.lines[i], want[i])
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logger.LogLevel
	}{
		{"debug", logger.DEBUG},
		{"  Warning ", logger.WARNING},
		{"error", logger.ERROR},
		{"", logger.INFO},
		{"chatty", logger.INFO},
	}

	for _, tc := range tests {
		if got := ParseLevel(tc.input); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	rec := &recorder{}
	l := Wrap(rec, logger.DEBUG)

	Infof(l, "frame %d", 3)
	Warningf(l, "%s failed", "SetWindowPos")
	Debugf(l, "focused=%t", true)

	want := []string{"INFO frame 3", "WARNING SetWindowPos failed", "DEBUG focused=true"}
	for i := range want {
		if rec.lines[i] != want[i] {
			t.Errorf("line %d = %q; want %q", i, rec.lines[i], want[i])
		}
	}
}
