package imgui_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guibridge/imgui"
)

func TestVertexLayout(t *testing.T) {
	var v imgui.Vertex
	assert.Equal(t, uintptr(imgui.VertexSize), unsafe.Sizeof(v))
	assert.Equal(t, uintptr(imgui.VertexOffsetPos), unsafe.Offsetof(v.Pos))
	assert.Equal(t, uintptr(imgui.VertexOffsetUV), unsafe.Offsetof(v.UV))
	assert.Equal(t, uintptr(imgui.VertexOffsetCol), unsafe.Offsetof(v.Col))

	var i uint16
	assert.Equal(t, uintptr(imgui.IndexSize), unsafe.Sizeof(i))
}

func TestDrawListRect(t *testing.T) {
	dl := imgui.NewDrawList()
	dl.SetTexture(7)
	dl.AddRect(10, 20, 30, 40, imgui.ColorRed)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, imgui.TextureID(7), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer)

	require.Len(t, dl.VtxBuffer, 4)
	assert.Equal(t, [2]float32{10, 20}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{40, 60}, dl.VtxBuffer[2].Pos)
	assert.Equal(t, imgui.ColorRed, dl.VtxBuffer[0].Col)
}

func TestDrawListSplitsOnTextureChange(t *testing.T) {
	dl := imgui.NewDrawList()
	dl.SetTexture(1)
	dl.AddRect(0, 0, 10, 10, imgui.ColorWhite)
	dl.AddImage(2, 10, 0, 10, 10, imgui.Vec2{}, imgui.Vec2{X: 1, Y: 1}, imgui.ColorWhite)
	dl.AddRect(20, 0, 10, 10, imgui.ColorWhite)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 3)
	for i, want := range []imgui.TextureID{1, 2, 1} {
		assert.Equal(t, want, dl.CmdBuffer[i].TextureID, "command %d", i)
		assert.Equal(t, uint32(6), dl.CmdBuffer[i].ElemCount, "command %d", i)
	}
	assert.Equal(t, imgui.TextureID(1), dl.Texture())

	// Indices stay relative to the start of the list.
	assert.Equal(t, []uint16{4, 5, 6, 4, 6, 7}, dl.IdxBuffer[6:12])
	assert.Equal(t, [2]float32{1, 1}, dl.VtxBuffer[6].UV)
}

func TestDrawListClipRect(t *testing.T) {
	dl := imgui.NewDrawList()
	dl.PushClipRect(10, 20, 110, 70)
	assert.Equal(t, [4]float32{10, 20, 110, 70}, dl.ClipRect())

	dl.AddRect(0, 0, 5, 5, imgui.ColorWhite)

	dl.PushClipRect(0, 0, 50, 50)
	assert.Equal(t, [4]float32{10, 20, 50, 50}, dl.ClipRect(), "nested clip intersects")
	dl.AddRect(0, 0, 5, 5, imgui.ColorWhite)
	dl.PopClipRect()

	assert.Equal(t, [4]float32{10, 20, 110, 70}, dl.ClipRect())
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 2)
	assert.Equal(t, [4]float32{10, 20, 110, 70}, dl.CmdBuffer[0].ClipRect)
	assert.Equal(t, [4]float32{10, 20, 50, 50}, dl.CmdBuffer[1].ClipRect)
}

func TestDrawListDropsEmptyCommands(t *testing.T) {
	dl := imgui.NewDrawList()
	dl.PushClipRect(0, 0, 10, 10)
	dl.SetTexture(3)
	dl.PopClipRect()
	dl.Finalize()

	assert.Empty(t, dl.CmdBuffer)
	assert.Empty(t, dl.VtxBuffer)
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := imgui.NewDrawList()
	dl.AddRect(0, 0, 10, 10, imgui.ColorTransparent)
	dl.AddLine(0, 0, 10, 10, imgui.ColorTransparent, 1)
	dl.AddTriangle(0, 0, 10, 0, 0, 10, imgui.ColorTransparent)
	dl.Finalize()

	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.CmdBuffer)
}

func TestDrawListLineAndTriangle(t *testing.T) {
	dl := imgui.NewDrawList()
	dl.AddLine(0, 0, 10, 0, imgui.ColorGreen, 2)
	dl.AddTriangle(0, 0, 10, 0, 0, 10, imgui.ColorBlue)
	dl.Finalize()

	require.Len(t, dl.VtxBuffer, 7)
	assert.Equal(t, [2]float32{0, 1}, dl.VtxBuffer[0].Pos, "line offset by half the thickness")
	assert.Equal(t, [2]float32{0, -1}, dl.VtxBuffer[3].Pos)
	assert.Equal(t, []uint16{4, 5, 6}, dl.IdxBuffer[6:])
	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(9), dl.CmdBuffer[0].ElemCount)
}

func TestDrawListVertexLimit(t *testing.T) {
	dl := imgui.NewDrawList()
	for i := 0; i < 1<<14; i++ {
		dl.AddRect(0, 0, 1, 1, imgui.ColorWhite)
	}
	assert.Len(t, dl.VtxBuffer, 1<<16)
	assert.Zero(t, dl.Dropped())

	dl.AddRect(0, 0, 1, 1, imgui.ColorWhite)
	assert.Len(t, dl.VtxBuffer, 1<<16)
	assert.Equal(t, 1, dl.Dropped())

	dl.Finalize()
	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(6<<14), dl.CmdBuffer[0].ElemCount)
}

func TestDrawListPool(t *testing.T) {
	dl := imgui.AcquireDrawList()
	dl.AddRect(0, 0, 1, 1, imgui.ColorWhite)
	imgui.ReleaseDrawList(dl)

	dl = imgui.AcquireDrawList()
	assert.Empty(t, dl.VtxBuffer)
	assert.Empty(t, dl.IdxBuffer)
	assert.Empty(t, dl.CmdBuffer)
	imgui.ReleaseDrawList(dl)
	imgui.ReleaseDrawList(nil)
}

func TestDrawDataScaleClipRects(t *testing.T) {
	dl := imgui.NewDrawList()
	dl.PushClipRect(10, 20, 30, 40)
	dl.AddRect(0, 0, 1, 1, imgui.ColorWhite)
	dl.Finalize()

	var dd imgui.DrawData
	dd.AddDrawList(dl)
	assert.Equal(t, 1, dd.CmdListsCount())
	assert.Equal(t, 4, dd.TotalVtxCount)
	assert.Equal(t, 6, dd.TotalIdxCount)

	dd.ScaleClipRects(imgui.Vec2{X: 1, Y: 1})
	assert.Equal(t, [4]float32{10, 20, 30, 40}, dl.CmdBuffer[0].ClipRect)

	dd.ScaleClipRects(imgui.Vec2{X: 2, Y: 0.5})
	assert.Equal(t, [4]float32{20, 10, 60, 20}, dl.CmdBuffer[0].ClipRect)

	dd.Clear()
	assert.Zero(t, dd.CmdListsCount())
	assert.Zero(t, dd.TotalVtxCount)
}

func TestColors(t *testing.T) {
	assert.Equal(t, imgui.ColorRed, imgui.RGBA(255, 0, 0, 255))
	assert.Equal(t, imgui.ColorWhite, imgui.RGBAf(1, 1, 1, 2))

	r, g, b, a := imgui.UnpackRGBA(imgui.RGBA(1, 2, 3, 4))
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{r, g, b, a})
}
