package imgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guibridge/imgui"
)

const atlasTex imgui.TextureID = 1

// newReadyContext returns a context whose atlas is built and has a texture.
func newReadyContext(t *testing.T) *imgui.Context {
	t.Helper()
	ctx := imgui.NewContext()
	_, _, _, err := ctx.Fonts().GetTexDataAsRGBA32()
	require.NoError(t, err)
	ctx.Fonts().SetTexID(atlasTex)
	ctx.IO().DisplaySize = imgui.Vec2{X: 800, Y: 600}
	return ctx
}

func TestContextRequiresFontTexture(t *testing.T) {
	ctx := imgui.NewContext()
	assert.ErrorIs(t, ctx.NewFrame(), imgui.ErrFontAtlasNotBuilt)

	_, _, _, err := ctx.Fonts().GetTexDataAsRGBA32()
	require.NoError(t, err)
	assert.ErrorIs(t, ctx.NewFrame(), imgui.ErrFontAtlasNotBuilt, "built but not uploaded")
}

func TestContextFrameOrder(t *testing.T) {
	ctx := newReadyContext(t)

	_, err := ctx.Render()
	assert.ErrorIs(t, err, imgui.ErrFrameNotStarted)

	require.NoError(t, ctx.NewFrame())
	assert.ErrorIs(t, ctx.NewFrame(), imgui.ErrFrameInProgress)

	_, err = ctx.Render()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ctx.FrameCount())
}

func TestContextRender(t *testing.T) {
	ctx := newReadyContext(t)
	require.NoError(t, ctx.NewFrame())

	ctx.DrawList().AddRect(0, 0, 10, 10, imgui.ColorWhite)
	ctx.ForegroundDrawList().AddRect(5, 5, 10, 10, imgui.ColorRed)

	dd, err := ctx.Render()
	require.NoError(t, err)
	assert.True(t, dd.Valid)
	require.Equal(t, 2, dd.CmdListsCount())
	assert.Same(t, ctx.DrawList(), dd.CmdLists[0], "main list first")
	assert.Same(t, ctx.ForegroundDrawList(), dd.CmdLists[1])
	assert.Equal(t, 8, dd.TotalVtxCount)
	assert.Equal(t, 12, dd.TotalIdxCount)
	assert.Equal(t, imgui.Vec2{X: 800, Y: 600}, dd.DisplaySize)
	assert.Equal(t, imgui.Vec2{X: 1, Y: 1}, dd.FramebufferScale)

	cmd := dd.CmdLists[0].CmdBuffer[0]
	assert.Equal(t, atlasTex, cmd.TextureID, "solid fills sample the atlas")
	assert.Equal(t, [4]float32{0, 0, 800, 600}, cmd.ClipRect)
	assert.Same(t, dd, ctx.DrawData())
}

func TestContextSkipsEmptyLists(t *testing.T) {
	ctx := newReadyContext(t)
	require.NoError(t, ctx.NewFrame())

	dd, err := ctx.Render()
	require.NoError(t, err)
	assert.Zero(t, dd.CmdListsCount())
	assert.Zero(t, dd.TotalVtxCount)
	assert.Zero(t, dd.TotalIdxCount)
}

func TestContextText(t *testing.T) {
	ctx := newReadyContext(t)
	require.NoError(t, ctx.NewFrame())

	ctx.Text(10, 10, "Hi", imgui.ColorWhite)

	dd, err := ctx.Render()
	require.NoError(t, err)
	require.Equal(t, 1, dd.CmdListsCount())
	dl := dd.CmdLists[0]
	assert.Len(t, dl.VtxBuffer, 8)
	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, atlasTex, dl.CmdBuffer[0].TextureID)

	size := ctx.MeasureText("Hi")
	assert.Positive(t, size.X)
}

func TestContextInputEdges(t *testing.T) {
	ctx := newReadyContext(t)
	io := ctx.IO()

	frame := func() {
		t.Helper()
		require.NoError(t, ctx.NewFrame())
		_, err := ctx.Render()
		require.NoError(t, err)
	}

	io.KeysDown[imgui.KeyA] = true
	io.MouseDown[imgui.MouseButtonLeft] = true
	require.NoError(t, ctx.NewFrame())
	assert.True(t, io.KeyPressed(imgui.KeyA))
	assert.True(t, io.MouseClicked(imgui.MouseButtonLeft))
	_, err := ctx.Render()
	require.NoError(t, err)

	require.NoError(t, ctx.NewFrame())
	assert.False(t, io.KeyPressed(imgui.KeyA), "held, not pressed again")
	_, err = ctx.Render()
	require.NoError(t, err)

	io.KeysDown[imgui.KeyA] = false
	io.MouseDown[imgui.MouseButtonLeft] = false
	require.NoError(t, ctx.NewFrame())
	assert.True(t, io.KeyReleased(imgui.KeyA))
	assert.True(t, io.MouseReleased(imgui.MouseButtonLeft))
	_, err = ctx.Render()
	require.NoError(t, err)

	frame()
	assert.False(t, io.KeyReleased(imgui.KeyA))
	assert.False(t, io.KeyPressed(imgui.KeyCount), "out of range")
}

func TestContextInputCharacters(t *testing.T) {
	ctx := newReadyContext(t)
	io := ctx.IO()

	io.AddInputCharacter('h')
	io.AddInputCharacter(0)
	io.AddInputCharacter('i')
	assert.Equal(t, []rune{'h', 'i'}, io.InputQueueCharacters())

	require.NoError(t, ctx.NewFrame())
	assert.Equal(t, "hi", string(io.InputQueueCharacters()), "visible during the frame")
	_, err := ctx.Render()
	require.NoError(t, err)
	assert.Empty(t, io.InputQueueCharacters())
}

type memClipboard struct{ text string }

func (c *memClipboard) GetText() string     { return c.text }
func (c *memClipboard) SetText(text string) { c.text = text }

func TestIOClipboard(t *testing.T) {
	io := imgui.NewContext().IO()
	assert.Empty(t, io.ClipboardText())
	io.SetClipboardText("ignored")

	cb := &memClipboard{}
	io.Clipboard = cb
	io.SetClipboardText("copied")
	assert.Equal(t, "copied", cb.text)
	assert.Equal(t, "copied", io.ClipboardText())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Tab", imgui.KeyTab.String())
	assert.Equal(t, "PgDn", imgui.KeyPageDown.String())
	assert.Equal(t, "?", imgui.KeyCount.String())
}
