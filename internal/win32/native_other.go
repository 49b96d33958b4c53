//go:build !windows

package win32

type native struct{}

// New returns an API whose calls all fail with ErrUnsupported.
func New() API {
	return native{}
}

func (native) ForegroundWindow() (HWND, error) {
	return 0, ErrUnsupported
}

func (native) FindWindow(title string) (HWND, error) {
	return 0, ErrUnsupported
}

func (native) WindowRect(hwnd HWND) (Rect, error) {
	return Rect{}, ErrUnsupported
}

func (native) SetWindowLong(hwnd HWND, index int32, value uint32) error {
	return ErrUnsupported
}

func (native) SetLayeredWindowAttributes(hwnd HWND, colorKey uint32, alpha byte, flags uint32) error {
	return ErrUnsupported
}

func (native) SetWindowPos(hwnd, insertAfter HWND, x, y, cx, cy int32, flags uint32) error {
	return ErrUnsupported
}

func (native) ExtendFrameIntoClientArea(hwnd HWND, margins Rect) error {
	return ErrUnsupported
}

func (native) ReleaseCapture() error {
	return ErrUnsupported
}

func (native) SendMessage(hwnd HWND, msg uint32, wParam, lParam uintptr) (uintptr, error) {
	return 0, ErrUnsupported
}

func (native) CursorPos() (Point, error) {
	return Point{}, ErrUnsupported
}
