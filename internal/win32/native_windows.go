//go:build windows

package win32

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetForegroundWindow        = user32.NewProc("GetForegroundWindow")
	procFindWindowW                = user32.NewProc("FindWindowW")
	procGetWindowRect              = user32.NewProc("GetWindowRect")
	procSetWindowLongW             = user32.NewProc("SetWindowLongW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procReleaseCapture             = user32.NewProc("ReleaseCapture")
	procSendMessageW               = user32.NewProc("SendMessageW")
	procGetCursorPos               = user32.NewProc("GetCursorPos")

	procDwmExtendFrameIntoClientArea = dwmapi.NewProc("DwmExtendFrameIntoClientArea")

	procSetLastError = kernel32.NewProc("SetLastError")
)

var errNoCode = errors.New("call failed without an error code")

type native struct{}

// New returns the user32/dwmapi backed API.
func New() API {
	return native{}
}

func call(proc *windows.LazyProc, args ...uintptr) (uintptr, error) {
	if err := proc.Find(); err != nil {
		return 0, &CallError{Proc: proc.Name, Err: err}
	}
	r, _, err := proc.Call(args...)
	return r, err
}

// callBool invokes a proc that returns a Win32 BOOL.
func callBool(proc *windows.LazyProc, args ...uintptr) error {
	r, err := call(proc, args...)
	if r != 0 {
		return nil
	}
	var callErr *CallError
	if errors.As(err, &callErr) {
		return err
	}
	return &CallError{Proc: proc.Name, Err: lastError(err)}
}

func lastError(err error) error {
	if errno, ok := err.(windows.Errno); ok && errno == 0 {
		return errNoCode
	}
	if err == nil {
		return errNoCode
	}
	return err
}

func (native) ForegroundWindow() (HWND, error) {
	r, err := call(procGetForegroundWindow)
	if r == 0 {
		var callErr *CallError
		if errors.As(err, &callErr) {
			return 0, err
		}
		return 0, fmt.Errorf("no foreground window: %w", ErrWindowNotFound)
	}
	return HWND(r), nil
}

func (native) FindWindow(title string) (HWND, error) {
	ptr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("invalid window title %q: %w", title, err)
	}
	r, err := call(procFindWindowW, 0, uintptr(unsafe.Pointer(ptr)))
	if r == 0 {
		var callErr *CallError
		if errors.As(err, &callErr) {
			return 0, err
		}
		return 0, fmt.Errorf("window with title %q: %w", title, ErrWindowNotFound)
	}
	return HWND(r), nil
}

func (native) WindowRect(hwnd HWND) (Rect, error) {
	if hwnd == 0 {
		return Rect{}, ErrNoHandle
	}
	var rect Rect
	err := callBool(procGetWindowRect, uintptr(hwnd), uintptr(unsafe.Pointer(&rect)))
	return rect, err
}

// SetWindowLong replaces the style bits at index. A zero return is only a
// failure when the thread's last error is set, so the call is pinned to one
// OS thread with the last error cleared beforehand.
func (native) SetWindowLong(hwnd HWND, index int32, value uint32) error {
	if hwnd == 0 {
		return ErrNoHandle
	}
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	call(procSetLastError, 0)
	r, err := call(procSetWindowLongW, uintptr(hwnd), uintptr(index), uintptr(value))
	if r != 0 {
		return nil
	}
	if errno, ok := err.(windows.Errno); ok && errno == 0 {
		return nil
	}
	var callErr *CallError
	if errors.As(err, &callErr) {
		return err
	}
	return &CallError{Proc: procSetWindowLongW.Name, Err: lastError(err)}
}

func (native) SetLayeredWindowAttributes(hwnd HWND, colorKey uint32, alpha byte, flags uint32) error {
	if hwnd == 0 {
		return ErrNoHandle
	}
	return callBool(procSetLayeredWindowAttributes,
		uintptr(hwnd),
		uintptr(colorKey),
		uintptr(alpha),
		uintptr(flags),
	)
}

func (native) SetWindowPos(hwnd, insertAfter HWND, x, y, cx, cy int32, flags uint32) error {
	if hwnd == 0 {
		return ErrNoHandle
	}
	return callBool(procSetWindowPos,
		uintptr(hwnd),
		uintptr(insertAfter),
		uintptr(x),
		uintptr(y),
		uintptr(cx),
		uintptr(cy),
		uintptr(flags),
	)
}

func (native) ExtendFrameIntoClientArea(hwnd HWND, margins Rect) error {
	if hwnd == 0 {
		return ErrNoHandle
	}
	r, err := call(procDwmExtendFrameIntoClientArea, uintptr(hwnd), uintptr(unsafe.Pointer(&margins)))
	var callErr *CallError
	if errors.As(err, &callErr) {
		return err
	}
	if hr := uint32(r); hr != 0 {
		return &CallError{
			Proc: procDwmExtendFrameIntoClientArea.Name,
			Err:  fmt.Errorf("HRESULT 0x%08X", hr),
		}
	}
	return nil
}

func (native) ReleaseCapture() error {
	return callBool(procReleaseCapture)
}

func (native) SendMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) (uintptr, error) {
	if hwnd == 0 {
		return 0, ErrNoHandle
	}
	r, err := call(procSendMessageW, uintptr(hwnd), uintptr(msg), wParam, lParam)
	var callErr *CallError
	if errors.As(err, &callErr) {
		return 0, err
	}
	return r, nil
}

func (native) CursorPos() (Point, error) {
	var pt Point
	err := callBool(procGetCursorPos, uintptr(unsafe.Pointer(&pt)))
	return pt, err
}
