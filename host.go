package guibridge

// Key is a physical key the renderer polls on the host.
type Key int

const (
	KeyUnknown Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeySpace
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	KeyCount
)

// MouseState is a poll of the mouse.
type MouseState struct {
	X, Y   float32
	Left   bool
	Middle bool
	Right  bool

	// ScrollWheelValue is the cumulative vertical wheel position since the
	// host started, in host units (120 per notch on most platforms).
	ScrollWheelValue int
}

// Host is the window the renderer reads input from.
type Host interface {
	// Focused reports whether the window has input focus.
	Focused() bool
	KeyDown(key Key) bool
	Mouse() MouseState
	// OnTextInput registers fn to receive typed characters.
	OnTextInput(fn func(r rune))
}

// ClipboardHost is implemented by hosts with clipboard access. The renderer
// installs it into the GUI's IO when present.
type ClipboardHost interface {
	ClipboardText() string
	SetClipboardText(text string)
}

// clipboardAdapter exposes a ClipboardHost as an imgui.ClipboardProvider.
type clipboardAdapter struct {
	host ClipboardHost
}

func (c clipboardAdapter) GetText() string     { return c.host.ClipboardText() }
func (c clipboardAdapter) SetText(text string) { c.host.SetClipboardText(text) }
