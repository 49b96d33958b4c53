// Package logging filters a wails logger by level so the same logger can be
// handed to the wails runtime and to the overlay services.
package logging

import (
	"fmt"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// Filtered drops messages below its level before delegating.
type Filtered struct {
	level logger.LogLevel
	out   logger.Logger
}

// New builds a logger writing to file, or to stdout when file is empty.
// Unknown level names fall back to info.
func New(level, file string) *Filtered {
	var out logger.Logger = logger.NewDefaultLogger()
	if file != "" {
		out = logger.NewFileLogger(file)
	}
	return Wrap(out, ParseLevel(level))
}

// Wrap filters an existing logger.
func Wrap(out logger.Logger, level logger.LogLevel) *Filtered {
	return &Filtered{level: level, out: out}
}

// ParseLevel maps a level name to a wails log level.
func ParseLevel(name string) logger.LogLevel {
	lvl, err := logger.StringToLogLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return logger.INFO
	}
	return lvl
}

// Level returns the minimum level that is emitted.
func (f *Filtered) Level() logger.LogLevel {
	return f.level
}

func (f *Filtered) Print(message string) {
	f.out.Print(message)
}

func (f *Filtered) Trace(message string) {
	if f.level <= logger.TRACE {
		f.out.Trace(message)
	}
}

func (f *Filtered) Debug(message string) {
	if f.level <= logger.DEBUG {
		f.out.Debug(message)
	}
}

func (f *Filtered) Info(message string) {
	if f.level <= logger.INFO {
		f.out.Info(message)
	}
}

func (f *Filtered) Warning(message string) {
	if f.level <= logger.WARNING {
		f.out.Warning(message)
	}
}

func (f *Filtered) Error(message string) {
	if f.level <= logger.ERROR {
		f.out.Error(message)
	}
}

func (f *Filtered) Fatal(message string) {
	f.out.Fatal(message)
}

// Infof formats and logs at info level.
func Infof(l logger.Logger, format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warningf formats and logs at warning level.
func Warningf(l logger.Logger, format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// Debugf formats and logs at debug level.
func Debugf(l logger.Logger, format string, args ...interface{}) {
	l.Debug(fmt.Sprintf(format, args...))
}
