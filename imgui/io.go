package imgui

// Key is a logical key slot in IO.KeysDown.
type Key int

const (
	KeyTab Key = iota
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeySpace
	KeyA // for text edit CTRL+A: select all
	KeyC // for text edit CTRL+C: copy
	KeyV // for text edit CTRL+V: paste
	KeyX // for text edit CTRL+X: cut
	KeyY // for text edit CTRL+Y: redo
	KeyZ // for text edit CTRL+Z: undo
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyTab:        "Tab",
	KeyLeftArrow:  "Left",
	KeyRightArrow: "Right",
	KeyUpArrow:    "Up",
	KeyDownArrow:  "Down",
	KeyPageUp:     "PgUp",
	KeyPageDown:   "PgDn",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyDelete:     "Del",
	KeyBackspace:  "Backspace",
	KeyEnter:      "Enter",
	KeyEscape:     "Esc",
	KeySpace:      "Space",
	KeyA:          "A",
	KeyC:          "C",
	KeyV:          "V",
	KeyX:          "X",
	KeyY:          "Y",
	KeyZ:          "Z",
}

// String returns a human-readable name for a key.
func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// ClipboardProvider abstracts system clipboard access.
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// IO is the input/output state shared between the application and the
// context. The application (usually a renderer) writes display and device
// state before NewFrame; the context derives per-frame edges from it.
type IO struct {
	DisplaySize             Vec2
	DisplayFramebufferScale Vec2
	DeltaTime               float32 // Seconds since the last frame

	KeysDown [KeyCount]bool
	KeyCtrl  bool
	KeyShift bool
	KeyAlt   bool
	KeySuper bool

	MousePos   Vec2
	MouseDown  [MouseButtonCount]bool
	MouseWheel float32 // Vertical wheel steps this frame

	Fonts     *FontAtlas
	Clipboard ClipboardProvider // Optional

	inputQueue []rune

	keysDownPrev  [KeyCount]bool
	keyPressed    [KeyCount]bool
	keyReleased   [KeyCount]bool
	mouseDownPrev [MouseButtonCount]bool
	mouseClicked  [MouseButtonCount]bool
	mouseReleased [MouseButtonCount]bool
}

func newIO() *IO {
	return &IO{
		DisplayFramebufferScale: Vec2{X: 1, Y: 1},
		DeltaTime:               1.0 / 60.0,
		Fonts:                   NewFontAtlas(),
		inputQueue:              make([]rune, 0, 16),
	}
}

// AddInputCharacter queues a typed character for the current frame.
func (io *IO) AddInputCharacter(r rune) {
	if r == 0 {
		return
	}
	io.inputQueue = append(io.inputQueue, r)
}

// InputQueueCharacters returns the characters typed since the last frame.
// The slice is only valid until the frame is rendered.
func (io *IO) InputQueueCharacters() []rune {
	return io.inputQueue
}

// ClearInputCharacters drops all queued characters.
func (io *IO) ClearInputCharacters() {
	io.inputQueue = io.inputQueue[:0]
}

// updateEdges derives pressed/released transitions against the previous
// frame. Called once per NewFrame.
func (io *IO) updateEdges() {
	for k := range io.KeysDown {
		down, was := io.KeysDown[k], io.keysDownPrev[k]
		io.keyPressed[k] = down && !was
		io.keyReleased[k] = !down && was
	}
	io.keysDownPrev = io.KeysDown

	for b := range io.MouseDown {
		down, was := io.MouseDown[b], io.mouseDownPrev[b]
		io.mouseClicked[b] = down && !was
		io.mouseReleased[b] = !down && was
	}
	io.mouseDownPrev = io.MouseDown
}

// KeyPressed returns true if a key went down this frame.
func (io *IO) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return io.keyPressed[key]
}

// KeyReleased returns true if a key went up this frame.
func (io *IO) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return io.keyReleased[key]
}

// MouseClicked returns true if a mouse button went down this frame.
func (io *IO) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return io.mouseClicked[button]
}

// MouseReleased returns true if a mouse button went up this frame.
func (io *IO) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return io.mouseReleased[button]
}

// ClipboardText returns the clipboard contents, or "" without a provider.
func (io *IO) ClipboardText() string {
	if io.Clipboard != nil {
		return io.Clipboard.GetText()
	}
	return ""
}

// SetClipboardText copies text to the clipboard if a provider is set.
func (io *IO) SetClipboardText(text string) {
	if io.Clipboard != nil {
		io.Clipboard.SetText(text)
	}
}
