package overlay

import (
	"errors"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"clickthrough-overlay/internal/config"
	"clickthrough-overlay/internal/engine"
	"clickthrough-overlay/internal/logging"
	"clickthrough-overlay/internal/win32"
)

// FocusFunc reports whether the window should accept input with the pointer at p
type FocusFunc func(p engine.Point) bool

// HandlerID identifies one registration of a FocusFunc
type HandlerID uint64

type focusEntry struct {
	id HandlerID
	fn FocusFunc
}

// Service keeps a host window transparent and click-through, except while a
// focus handler claims the pointer.
type Service struct {
	cfg    config.WindowConfig
	native win32.API
	host   engine.Host
	log    logger.Logger

	mu           sync.Mutex
	started      bool
	closed       bool
	editor       bool
	hwnd         win32.HWND
	screenWidth  int32
	screenHeight int32
	margins      win32.Rect
	windowRect   win32.Rect
	stats        Stats

	handlersMu sync.RWMutex
	handlers   []focusEntry
	nextID     HandlerID
}

// Stats holds the controller's per-frame counters
type Stats struct {
	Started        bool       `json:"started"`
	Editor         bool       `json:"editor"`
	Frames         uint64     `json:"frames"`
	Focused        bool       `json:"focused"`
	NativeFailures uint64     `json:"native_failures"`
	LastError      string     `json:"last_error,omitempty"`
	WindowRect     win32.Rect `json:"window_rect"`
	ScreenWidth    int32      `json:"screen_width"`
	ScreenHeight   int32      `json:"screen_height"`
	Handlers       int        `json:"handlers"`
}

// New creates a new overlay service. Nothing touches the window until Start.
func New(cfg config.WindowConfig, native win32.API, host engine.Host, log logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		native: native,
		host:   host,
		log:    log,
	}
}

// ExStyle returns the extended style for a focus state. In legacy mode the
// focused value is the bitwise complement of the click-through mask, which
// sets every other extended style bit as well. The corrected value keeps the
// window layered and drops only click-through.
func ExStyle(focused, legacy bool) uint32 {
	if !focused {
		return win32.WindowExStyle
	}
	if legacy {
		return ^win32.WindowExStyle
	}
	return win32.WSExLayered
}

// Start switches the host to a borderless full-screen window, takes the
// window handle and applies the first flag pass. Native failures are logged
// and returned joined; the sequence is never aborted by them. Only a failed
// handle lookup leaves the service inert. Focus handlers run without the
// service lock held, so they may call back into the service.
func (s *Service) Start() error {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return nil
	}
	s.started = true
	s.stats.Started = true

	if s.host.IsEditor() || s.cfg.Preview {
		s.editor = true
		s.stats.Editor = true
		s.mu.Unlock()
		s.log.Info("Preview host detected, skipping native window setup")
		return nil
	}

	width, height := s.host.CurrentResolution()
	s.screenWidth = int32(width)
	s.screenHeight = int32(height)
	s.stats.ScreenWidth = s.screenWidth
	s.stats.ScreenHeight = s.screenHeight

	s.host.SetResolution(width, height, engine.FullScreenWindow)
	s.host.SetRunInBackground(true)

	hwnd, err := s.acquireHandle()
	if err != nil {
		s.record(err)
		s.mu.Unlock()
		return fmt.Errorf("failed to acquire window handle: %w", err)
	}
	s.hwnd = hwnd
	s.margins = win32.FillMargins()
	s.mu.Unlock()

	logging.Infof(s.log, "Managing window 0x%X at %dx%d", uintptr(hwnd), width, height)

	focused := s.IsFocused(s.host.PointerPosition())

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active() {
		return nil
	}
	var errs []error
	if err := s.applyFlags(focused); err != nil {
		errs = append(errs, err)
	}
	if err := s.native.ExtendFrameIntoClientArea(s.hwnd, s.margins); err != nil {
		errs = append(errs, s.record(err))
	}
	return errors.Join(errs...)
}

func (s *Service) acquireHandle() (win32.HWND, error) {
	if s.cfg.Title != "" {
		return s.native.FindWindow(s.cfg.Title)
	}
	return s.native.ForegroundWindow()
}

// UpdateWindowFlags re-asserts style, extended style, alpha and topmost
// placement for the current pointer position. Call it once per frame.
func (s *Service) UpdateWindowFlags() error {
	s.mu.Lock()
	active := s.active()
	s.mu.Unlock()
	if !active {
		return nil
	}

	focused := s.IsFocused(s.host.PointerPosition())

	s.mu.Lock()
	defer s.mu.Unlock()

	// Shutdown may have run while the handlers did.
	if !s.active() {
		return nil
	}
	return s.applyFlags(focused)
}

// active reports whether native calls should be made (must hold mu)
func (s *Service) active() bool {
	return s.started && !s.closed && !s.editor && s.hwnd != 0
}

// applyFlags runs one frame pass for an already evaluated focus state (must
// hold mu)
func (s *Service) applyFlags(focused bool) error {
	var errs []error
	fail := func(err error) {
		errs = append(errs, s.record(err))
	}

	if rect, err := s.native.WindowRect(s.hwnd); err != nil {
		fail(err)
	} else {
		s.windowRect = rect
	}

	if err := s.native.SetWindowLong(s.hwnd, win32.GWLStyle, win32.WindowStyle); err != nil {
		fail(err)
	}
	if err := s.native.SetWindowLong(s.hwnd, win32.GWLExStyle, ExStyle(focused, s.cfg.LegacyFocusStyle)); err != nil {
		fail(err)
	}
	if err := s.native.SetLayeredWindowAttributes(s.hwnd, 0, s.alpha(), win32.LWAAlpha); err != nil {
		fail(err)
	}
	if err := s.native.SetWindowPos(s.hwnd, win32.HWNDTopmost,
		s.windowRect.Left, s.windowRect.Top,
		s.screenWidth, s.screenHeight,
		win32.SWPFrameChanged|win32.SWPShowWindow,
	); err != nil {
		fail(err)
	}

	if focused != s.stats.Focused {
		logging.Debugf(s.log, "Overlay focus changed: focused=%t", focused)
	}
	s.stats.Frames++
	s.stats.Focused = focused
	s.stats.WindowRect = s.windowRect

	return errors.Join(errs...)
}

func (s *Service) alpha() byte {
	switch {
	case s.cfg.Alpha <= 0:
		return 0
	case s.cfg.Alpha >= 255:
		return 255
	default:
		return byte(s.cfg.Alpha)
	}
}

// record counts a native failure and logs it when it differs from the
// previous one, so a call failing every frame warns once (must hold mu)
func (s *Service) record(err error) error {
	s.stats.NativeFailures++
	if msg := err.Error(); msg != s.stats.LastError {
		s.stats.LastError = msg
		logging.Warningf(s.log, "Native window call failed: %v", err)
	}
	return err
}

// DragWindow hands the window to the system move loop. It only acts while
// the host runs in windowed mode. The move loop blocks until the button is
// released, so it runs without the service lock.
func (s *Service) DragWindow() error {
	s.mu.Lock()
	if !s.active() {
		s.mu.Unlock()
		return nil
	}
	if mode := s.host.FullScreenMode(); mode != engine.Windowed {
		s.mu.Unlock()
		logging.Debugf(s.log, "Ignoring drag in %s mode", mode)
		return nil
	}
	hwnd := s.hwnd
	s.mu.Unlock()

	releaseErr := s.native.ReleaseCapture()
	_, sendErr := s.native.SendMessage(hwnd, win32.WMSysCommand, win32.SCDragMove, 0)
	s.host.ResetInputAxes()

	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, err := range []error{releaseErr, sendErr} {
		if err != nil {
			errs = append(errs, s.record(err))
		}
	}
	return errors.Join(errs...)
}

// AddFocusHandler registers fn. Registering the same function twice yields
// two independent entries.
func (s *Service) AddFocusHandler(fn FocusFunc) HandlerID {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()

	s.nextID++
	s.handlers = append(s.handlers, focusEntry{id: s.nextID, fn: fn})
	return s.nextID
}

// RemoveFocusHandler removes the registration id and reports whether it existed
func (s *Service) RemoveFocusHandler(id HandlerID) bool {
	s.handlersMu.Lock()
	defer s.handlersMu.Unlock()

	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// IsFocused reports whether any registered handler claims p
func (s *Service) IsFocused(p engine.Point) bool {
	s.handlersMu.RLock()
	snapshot := make([]FocusFunc, len(s.handlers))
	for i, h := range s.handlers {
		snapshot[i] = h.fn
	}
	s.handlersMu.RUnlock()

	for _, fn := range snapshot {
		if fn(p) {
			return true
		}
	}
	return false
}

// Stats returns a snapshot of the controller counters
func (s *Service) Stats() Stats {
	s.mu.Lock()
	st := s.stats
	s.mu.Unlock()

	s.handlersMu.RLock()
	st.Handlers = len(s.handlers)
	s.handlersMu.RUnlock()
	return st
}

// Shutdown makes the window clickable again and releases the handle
func (s *Service) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	var err error
	if s.active() {
		if err = s.native.SetWindowLong(s.hwnd, win32.GWLExStyle, win32.WSExLayered); err != nil {
			s.record(err)
		}
	}
	s.closed = true
	s.hwnd = 0
	return err
}
