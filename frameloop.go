package main

import (
	"sync"
	"time"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// frameUpdater is the per-frame half of the overlay service
type frameUpdater interface {
	UpdateWindowFlags() error
}

// frameLoop drives UpdateWindowFlags from a ticker, standing in for an
// engine frame loop in the wails host.
type frameLoop struct {
	target   frameUpdater
	log      logger.Logger
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func newFrameLoop(target frameUpdater, log logger.Logger, intervalMs int) *frameLoop {
	if intervalMs < 1 {
		intervalMs = 16
	}
	return &frameLoop{
		target:   target,
		log:      log,
		interval: time.Duration(intervalMs) * time.Millisecond,
	}
}

func (f *frameLoop) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stop != nil {
		return // already running
	}
	f.stop = make(chan struct{})
	f.done = make(chan struct{})

	go func(stop <-chan struct{}, done chan<- struct{}) {
		defer close(done)

		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Failures are logged and counted by the service.
				f.target.UpdateWindowFlags()
			case <-stop:
				return
			}
		}
	}(f.stop, f.done)

	f.log.Debug("Frame loop started")
}

// Stop ends the loop and waits for the in-flight frame to finish
func (f *frameLoop) Stop() {
	f.mu.Lock()
	stop, done := f.stop, f.done
	f.stop, f.done = nil, nil
	f.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
	f.log.Debug("Frame loop stopped")
}
