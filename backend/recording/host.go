package recording

import "github.com/go-theft-auto/guibridge"

// Host is a scripted guibridge.Host. Tests set its fields or use the helper
// methods between frames.
type Host struct {
	Focus     bool
	Keys      map[guibridge.Key]bool
	MouseNow  guibridge.MouseState
	Clipboard string

	handlers []func(rune)
}

var (
	_ guibridge.Host          = (*Host)(nil)
	_ guibridge.ClipboardHost = (*Host)(nil)
)

// NewHost creates a focused host with nothing pressed.
func NewHost() *Host {
	return &Host{Focus: true, Keys: make(map[guibridge.Key]bool)}
}

// Focused implements guibridge.Host.
func (h *Host) Focused() bool { return h.Focus }

// KeyDown implements guibridge.Host.
func (h *Host) KeyDown(key guibridge.Key) bool { return h.Keys[key] }

// Mouse implements guibridge.Host.
func (h *Host) Mouse() guibridge.MouseState { return h.MouseNow }

// OnTextInput implements guibridge.Host.
func (h *Host) OnTextInput(fn func(r rune)) {
	h.handlers = append(h.handlers, fn)
}

// ClipboardText implements guibridge.ClipboardHost.
func (h *Host) ClipboardText() string { return h.Clipboard }

// SetClipboardText implements guibridge.ClipboardHost.
func (h *Host) SetClipboardText(text string) { h.Clipboard = text }

// Press marks keys as held.
func (h *Host) Press(keys ...guibridge.Key) {
	for _, k := range keys {
		h.Keys[k] = true
	}
}

// Release marks keys as up.
func (h *Host) Release(keys ...guibridge.Key) {
	for _, k := range keys {
		delete(h.Keys, k)
	}
}

// MoveMouse sets the cursor position.
func (h *Host) MoveMouse(x, y float32) {
	h.MouseNow.X, h.MouseNow.Y = x, y
}

// Scroll moves the cumulative wheel value by delta host units.
func (h *Host) Scroll(delta int) {
	h.MouseNow.ScrollWheelValue += delta
}

// Type delivers each rune of s as a text input event.
func (h *Host) Type(s string) {
	for _, r := range s {
		for _, fn := range h.handlers {
			fn(r)
		}
	}
}
