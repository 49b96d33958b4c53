package main

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingUpdater struct {
	n atomic.Int64
}

func (c *countingUpdater) UpdateWindowFlags() error {
	c.n.Add(1)
	return nil
}

type quietLogger struct{}

func (quietLogger) Print(string)   {}
func (quietLogger) Trace(string)   {}
func (quietLogger) Debug(string)   {}
func (quietLogger) Info(string)    {}
func (quietLogger) Warning(string) {}
func (quietLogger) Error(string)   {}
func (quietLogger) Fatal(string)   {}

func TestFrameLoop_TicksUntilStopped(t *testing.T) {
	target := &countingUpdater{}
	loop := newFrameLoop(target, quietLogger{}, 1)

	loop.Start()
	loop.Start() // second start is ignored

	deadline := time.Now().Add(2 * time.Second)
	for target.n.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	loop.Stop()

	if target.n.Load() < 3 {
		t.Fatalf("Expected at least 3 frames, got %d", target.n.Load())
	}

	after := target.n.Load()
	time.Sleep(20 * time.Millisecond)
	if got := target.n.Load(); got != after {
		t.Errorf("Frames continued after Stop: %d -> %d", after, got)
	}
}

func TestFrameLoop_StopWithoutStart(t *testing.T) {
	loop := newFrameLoop(&countingUpdater{}, quietLogger{}, 0)
	loop.Stop()

	if loop.interval != 16*time.Millisecond {
		t.Errorf("interval = %v; want 16ms", loop.interval)
	}
}
