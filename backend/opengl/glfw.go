package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guibridge"
)

// scrollUnitsPerNotch converts GLFW scroll offsets to host wheel units.
const scrollUnitsPerNotch = 120

// GLFWHost adapts a GLFW window to guibridge.Host. Keys, buttons and the
// cursor are polled; scrolling and typed characters arrive via callbacks.
type GLFWHost struct {
	window *glfw.Window

	scrollWheel  float64 // Cumulative, in notches
	textHandlers []func(rune)
}

var (
	_ guibridge.Host          = (*GLFWHost)(nil)
	_ guibridge.ClipboardHost = (*GLFWHost)(nil)
)

// NewGLFWHost creates a host for window, installing its scroll and char
// callbacks.
func NewGLFWHost(window *glfw.Window) *GLFWHost {
	h := &GLFWHost{window: window}
	window.SetCharCallback(h.charCallback)
	window.SetScrollCallback(h.scrollCallback)
	return h
}

// Window returns the underlying window.
func (h *GLFWHost) Window() *glfw.Window {
	return h.window
}

// Focused implements guibridge.Host.
func (h *GLFWHost) Focused() bool {
	return h.window.GetAttrib(glfw.Focused) == glfw.True
}

// KeyDown implements guibridge.Host.
func (h *GLFWHost) KeyDown(key guibridge.Key) bool {
	gk, ok := guiKeyToGLFW(key)
	if !ok {
		return false
	}
	return h.window.GetKey(gk) == glfw.Press
}

// Mouse implements guibridge.Host.
func (h *GLFWHost) Mouse() guibridge.MouseState {
	x, y := h.window.GetCursorPos()
	return guibridge.MouseState{
		X:                float32(x),
		Y:                float32(y),
		Left:             h.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		Right:            h.window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press,
		Middle:           h.window.GetMouseButton(glfw.MouseButtonMiddle) == glfw.Press,
		ScrollWheelValue: int(h.scrollWheel * scrollUnitsPerNotch),
	}
}

// OnTextInput implements guibridge.Host.
func (h *GLFWHost) OnTextInput(fn func(r rune)) {
	h.textHandlers = append(h.textHandlers, fn)
}

// ClipboardText implements guibridge.ClipboardHost.
func (h *GLFWHost) ClipboardText() string {
	return glfw.GetClipboardString()
}

// SetClipboardText implements guibridge.ClipboardHost.
func (h *GLFWHost) SetClipboardText(text string) {
	glfw.SetClipboardString(text)
}

func (h *GLFWHost) charCallback(w *glfw.Window, char rune) {
	for _, fn := range h.textHandlers {
		fn(char)
	}
}

func (h *GLFWHost) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	h.scrollWheel += yoff
}

// guiKeyToGLFW maps renderer keys to GLFW keys.
func guiKeyToGLFW(key guibridge.Key) (glfw.Key, bool) {
	switch key {
	case guibridge.KeyTab:
		return glfw.KeyTab, true
	case guibridge.KeyLeft:
		return glfw.KeyLeft, true
	case guibridge.KeyRight:
		return glfw.KeyRight, true
	case guibridge.KeyUp:
		return glfw.KeyUp, true
	case guibridge.KeyDown:
		return glfw.KeyDown, true
	case guibridge.KeyPageUp:
		return glfw.KeyPageUp, true
	case guibridge.KeyPageDown:
		return glfw.KeyPageDown, true
	case guibridge.KeyHome:
		return glfw.KeyHome, true
	case guibridge.KeyEnd:
		return glfw.KeyEnd, true
	case guibridge.KeyDelete:
		return glfw.KeyDelete, true
	case guibridge.KeyBackspace:
		return glfw.KeyBackspace, true
	case guibridge.KeyEnter:
		return glfw.KeyEnter, true
	case guibridge.KeyEscape:
		return glfw.KeyEscape, true
	case guibridge.KeySpace:
		return glfw.KeySpace, true
	case guibridge.KeyA:
		return glfw.KeyA, true
	case guibridge.KeyC:
		return glfw.KeyC, true
	case guibridge.KeyV:
		return glfw.KeyV, true
	case guibridge.KeyX:
		return glfw.KeyX, true
	case guibridge.KeyY:
		return glfw.KeyY, true
	case guibridge.KeyZ:
		return glfw.KeyZ, true
	case guibridge.KeyLeftShift:
		return glfw.KeyLeftShift, true
	case guibridge.KeyRightShift:
		return glfw.KeyRightShift, true
	case guibridge.KeyLeftControl:
		return glfw.KeyLeftControl, true
	case guibridge.KeyRightControl:
		return glfw.KeyRightControl, true
	case guibridge.KeyLeftAlt:
		return glfw.KeyLeftAlt, true
	case guibridge.KeyRightAlt:
		return glfw.KeyRightAlt, true
	case guibridge.KeyLeftSuper:
		return glfw.KeyLeftSuper, true
	case guibridge.KeyRightSuper:
		return glfw.KeyRightSuper, true
	default:
		return glfw.KeyUnknown, false
	}
}
