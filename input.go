package guibridge

import "github.com/go-theft-auto/guibridge/imgui"

// keyMap lists the host keys forwarded to the GUI each frame. Only these
// slots are ever written.
var keyMap = [...]struct {
	host Key
	gui  imgui.Key
}{
	{KeyTab, imgui.KeyTab},
	{KeyLeft, imgui.KeyLeftArrow},
	{KeyRight, imgui.KeyRightArrow},
	{KeyUp, imgui.KeyUpArrow},
	{KeyDown, imgui.KeyDownArrow},
	{KeyPageUp, imgui.KeyPageUp},
	{KeyPageDown, imgui.KeyPageDown},
	{KeyHome, imgui.KeyHome},
	{KeyEnd, imgui.KeyEnd},
	{KeyDelete, imgui.KeyDelete},
	{KeyBackspace, imgui.KeyBackspace},
	{KeyEnter, imgui.KeyEnter},
	{KeyEscape, imgui.KeyEscape},
	{KeySpace, imgui.KeySpace},
	{KeyA, imgui.KeyA},
	{KeyC, imgui.KeyC},
	{KeyV, imgui.KeyV},
	{KeyX, imgui.KeyX},
	{KeyY, imgui.KeyY},
	{KeyZ, imgui.KeyZ},
}

// InputSnapshot is the host input captured for one frame.
type InputSnapshot struct {
	Keys        [imgui.KeyCount]bool
	Shift       bool
	Ctrl        bool
	Alt         bool
	Super       bool
	DisplaySize imgui.Vec2
	MousePos    imgui.Vec2
	MouseDown   [imgui.MouseButtonCount]bool
	MouseWheel  float32 // -1, 0 or +1
}

// InputTranslator copies host device state into the GUI's IO.
type InputTranslator struct {
	host Host
	io   *imgui.IO

	scrollWheelValue int // Host wheel position seen last frame
	snapshot         InputSnapshot
}

// NewInputTranslator creates a translator and subscribes it to the host's
// text input, which is forwarded to io as it arrives.
func NewInputTranslator(host Host, io *imgui.IO) *InputTranslator {
	t := &InputTranslator{host: host, io: io}
	host.OnTextInput(t.textInput)
	return t
}

// textInput forwards a typed character. Tab is a navigation key, not text.
func (t *InputTranslator) textInput(r rune) {
	if r == '\t' {
		return
	}
	t.io.AddInputCharacter(r)
}

// Translate snapshots the host and writes the snapshot into the IO. When
// the host window is not focused nothing is read or written, leaving the
// previous frame's input in place. Reports whether input was translated.
func (t *InputTranslator) Translate(displayWidth, displayHeight int) bool {
	if !t.host.Focused() {
		return false
	}
	t.snapshot = t.capture(displayWidth, displayHeight)
	t.apply(&t.snapshot)
	return true
}

// Snapshot returns the last snapshot taken.
func (t *InputTranslator) Snapshot() InputSnapshot {
	return t.snapshot
}

func (t *InputTranslator) capture(displayWidth, displayHeight int) InputSnapshot {
	h := t.host
	var s InputSnapshot

	for _, m := range keyMap {
		s.Keys[m.gui] = h.KeyDown(m.host)
	}
	s.Shift = h.KeyDown(KeyLeftShift) || h.KeyDown(KeyRightShift)
	s.Ctrl = h.KeyDown(KeyLeftControl) || h.KeyDown(KeyRightControl)
	s.Alt = h.KeyDown(KeyLeftAlt) || h.KeyDown(KeyRightAlt)
	s.Super = h.KeyDown(KeyLeftSuper) || h.KeyDown(KeyRightSuper)

	s.DisplaySize = imgui.Vec2{X: float32(displayWidth), Y: float32(displayHeight)}

	mouse := h.Mouse()
	s.MousePos = imgui.Vec2{X: mouse.X, Y: mouse.Y}
	s.MouseDown[imgui.MouseButtonLeft] = mouse.Left
	s.MouseDown[imgui.MouseButtonRight] = mouse.Right
	s.MouseDown[imgui.MouseButtonMiddle] = mouse.Middle

	s.MouseWheel = scrollSign(mouse.ScrollWheelValue - t.scrollWheelValue)
	t.scrollWheelValue = mouse.ScrollWheelValue

	return s
}

func (t *InputTranslator) apply(s *InputSnapshot) {
	io := t.io
	for _, m := range keyMap {
		io.KeysDown[m.gui] = s.Keys[m.gui]
	}
	io.KeyShift = s.Shift
	io.KeyCtrl = s.Ctrl
	io.KeyAlt = s.Alt
	io.KeySuper = s.Super

	io.DisplaySize = s.DisplaySize
	io.DisplayFramebufferScale = imgui.Vec2{X: 1, Y: 1}

	io.MousePos = s.MousePos
	io.MouseDown = s.MouseDown
	io.MouseWheel = s.MouseWheel
}

// scrollSign reduces a wheel delta to one step in its direction. The
// magnitude is discarded on purpose: GUI scrolling moves one step per frame.
func scrollSign(delta int) float32 {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}
