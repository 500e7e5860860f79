package guibridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/guibridge"
	"github.com/go-theft-auto/guibridge/backend/recording"
	"github.com/go-theft-auto/guibridge/imgui"
)

func newTranslator() (*guibridge.InputTranslator, *recording.Host, *imgui.IO) {
	host := recording.NewHost()
	io := &imgui.IO{}
	return guibridge.NewInputTranslator(host, io), host, io
}

func TestInputWheelIsSignOnly(t *testing.T) {
	tr, host, io := newTranslator()

	tests := []struct {
		delta int
		want  float32
	}{
		{120, 1},
		{0, 0},
		{-45, -1},
		{360, 1},
		{-1, -1},
		{0, 0},
	}
	for _, tt := range tests {
		host.Scroll(tt.delta)
		assert.True(t, tr.Translate(800, 600))
		assert.Equal(t, tt.want, io.MouseWheel, "delta %d", tt.delta)
	}
}

func TestInputUnfocusedLeavesIOUntouched(t *testing.T) {
	tr, host, io := newTranslator()
	host.Focus = false
	host.Press(guibridge.KeyA, guibridge.KeyLeftShift)
	host.MoveMouse(5, 6)
	host.Scroll(120)

	assert.False(t, tr.Translate(800, 600))
	assert.False(t, io.KeysDown[imgui.KeyA])
	assert.False(t, io.KeyShift)
	assert.Equal(t, imgui.Vec2{}, io.MousePos)
	assert.Equal(t, imgui.Vec2{}, io.DisplaySize)
	assert.Zero(t, io.MouseWheel)

	// The wheel moved while unfocused is seen on the next focused frame.
	host.Focus = true
	assert.True(t, tr.Translate(800, 600))
	assert.Equal(t, float32(1), io.MouseWheel)
	assert.True(t, io.KeysDown[imgui.KeyA])
}

func TestInputKeysAndModifiers(t *testing.T) {
	tr, host, io := newTranslator()
	host.Press(guibridge.KeyA, guibridge.KeyEnter, guibridge.KeyRightControl, guibridge.KeyLeftAlt)

	tr.Translate(800, 600)
	assert.True(t, io.KeysDown[imgui.KeyA])
	assert.True(t, io.KeysDown[imgui.KeyEnter])
	assert.False(t, io.KeysDown[imgui.KeyTab])
	assert.True(t, io.KeyCtrl, "right control counts")
	assert.True(t, io.KeyAlt)
	assert.False(t, io.KeyShift)
	assert.False(t, io.KeySuper)

	host.Release(guibridge.KeyA, guibridge.KeyRightControl)
	host.Press(guibridge.KeyRightSuper, guibridge.KeyLeftShift)
	tr.Translate(800, 600)
	assert.False(t, io.KeysDown[imgui.KeyA])
	assert.False(t, io.KeyCtrl)
	assert.True(t, io.KeySuper)
	assert.True(t, io.KeyShift)
}

func TestInputMouseAndDisplay(t *testing.T) {
	tr, host, io := newTranslator()
	host.MoveMouse(10, 20)
	host.MouseNow.Left = true
	host.MouseNow.Middle = true

	tr.Translate(1024, 768)
	assert.Equal(t, imgui.Vec2{X: 10, Y: 20}, io.MousePos)
	assert.True(t, io.MouseDown[imgui.MouseButtonLeft])
	assert.True(t, io.MouseDown[imgui.MouseButtonMiddle])
	assert.False(t, io.MouseDown[imgui.MouseButtonRight])
	assert.Equal(t, imgui.Vec2{X: 1024, Y: 768}, io.DisplaySize)
	assert.Equal(t, imgui.Vec2{X: 1, Y: 1}, io.DisplayFramebufferScale)

	snap := tr.Snapshot()
	assert.Equal(t, io.MousePos, snap.MousePos)
	assert.Equal(t, io.DisplaySize, snap.DisplaySize)
}

func TestInputTextSkipsTab(t *testing.T) {
	_, host, io := newTranslator()
	host.Type("a\tbé")
	assert.Equal(t, []rune{'a', 'b', 'é'}, io.InputQueueCharacters())
}
