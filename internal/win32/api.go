package win32

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported implies the native windowing API is not available on this platform.
	ErrUnsupported = errors.New("native window API not supported on this platform")

	// ErrWindowNotFound implies no window matched the lookup.
	ErrWindowNotFound = errors.New("window not found")

	// ErrNoHandle implies an operation was attempted on a zero handle.
	ErrNoHandle = errors.New("window handle is zero")
)

// CallError reports a failed native call.
type CallError struct {
	Proc string
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Proc, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// API is the set of window-manager and compositor calls the overlay needs.
// Every call reports failure through its error so callers can decide whether
// to log and continue.
type API interface {
	ForegroundWindow() (HWND, error)
	FindWindow(title string) (HWND, error)
	WindowRect(hwnd HWND) (Rect, error)
	SetWindowLong(hwnd HWND, index int32, value uint32) error
	SetLayeredWindowAttributes(hwnd HWND, colorKey uint32, alpha byte, flags uint32) error
	SetWindowPos(hwnd, insertAfter HWND, x, y, cx, cy int32, flags uint32) error
	ExtendFrameIntoClientArea(hwnd HWND, margins Rect) error
	ReleaseCapture() error
	SendMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) (uintptr, error)
	CursorPos() (Point, error)
}
