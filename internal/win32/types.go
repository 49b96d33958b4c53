package win32

// HWND is an opaque native window handle.
type HWND uintptr

// Rect mirrors the native RECT/MARGINS layout: four contiguous 32-bit signed
// integers in left, top, right, bottom order.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// FillMargins returns the margins sentinel that asks the compositor to extend
// the frame over the whole client area.
func FillMargins() Rect {
	return Rect{Left: -1}
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Contains reports whether (x, y) lies inside the half-open rectangle
// [Left, Right) x [Top, Bottom).
func (r Rect) Contains(x, y float64) bool {
	return x >= float64(r.Left) && x < float64(r.Right) &&
		y >= float64(r.Top) && y < float64(r.Bottom)
}

// Window style constants
const (
	GWLStyle   int32 = -16
	GWLExStyle int32 = -20

	WSPopup   uint32 = 0x80000000
	WSVisible uint32 = 0x10000000

	WSExTransparent uint32 = 0x00000020
	WSExLayered     uint32 = 0x00080000

	// WindowStyle is the base style re-applied every frame.
	WindowStyle = WSPopup | WSVisible
	// WindowExStyle is the click-through extended style.
	WindowExStyle = WSExLayered | WSExTransparent
)

// Layered window, z-order and message constants
const (
	LWAAlpha uint32 = 0x00000002

	SWPFrameChanged uint32 = 0x0020
	SWPShowWindow   uint32 = 0x0040

	WMSysCommand uint32 = 0x0112
	// SCDragMove is SC_MOVE combined with HTCAPTION, which starts the
	// system's mouse-driven move loop.
	SCDragMove uintptr = 0xF012
)

// HWNDTopmost is the insert-after value for the topmost z-order band (-1).
const HWNDTopmost = HWND(^uintptr(0))

// Point is a screen position in physical pixels.
type Point struct {
	X int32
	Y int32
}
