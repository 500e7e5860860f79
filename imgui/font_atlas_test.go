package imgui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/guibridge/imgui"
)

func TestFontAtlasBuild(t *testing.T) {
	a := imgui.NewFontAtlas()
	assert.False(t, a.IsBuilt())
	assert.Equal(t, imgui.DefaultFontSize, a.Config().SizePixels)

	pixels, w, h, err := a.GetTexDataAsRGBA32()
	require.NoError(t, err)
	assert.True(t, a.IsBuilt())
	assert.Equal(t, 512, w)
	assert.Positive(t, h)
	assert.Zero(t, h&(h-1), "height %d is a power of two", h)
	require.Len(t, pixels, w*h*4)

	// The white pixel is opaque white.
	uv := a.TexUVWhitePixel()
	px, py := int(uv[0]*float32(w)), int(uv[1]*float32(h))
	i := (py*w + px) * 4
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, pixels[i:i+4])

	g := a.Glyph('A')
	assert.Positive(t, g.AdvanceX)
	assert.Greater(t, g.X1, g.X0)
	assert.Greater(t, g.U1, g.U0)
	assert.Greater(t, g.V1, g.V0)

	space := a.Glyph(' ')
	assert.Positive(t, space.AdvanceX)
	assert.Equal(t, space.X0, space.X1, "space has no quad")

	assert.Equal(t, a.Glyph('?'), a.Glyph('中'), "missing glyphs fall back to '?'")
	assert.Positive(t, a.LineHeight())
}

func TestFontAtlasClearTexData(t *testing.T) {
	a := imgui.NewFontAtlas()
	_, _, _, err := a.GetTexDataAsRGBA32()
	require.NoError(t, err)

	a.ClearTexData()
	assert.True(t, a.IsBuilt(), "metrics survive ClearTexData")
	assert.Positive(t, a.Glyph('A').AdvanceX)

	pixels, w, h, err := a.GetTexDataAsRGBA32()
	require.NoError(t, err)
	assert.Len(t, pixels, w*h*4, "pixels are rebuilt on demand")
}

func TestFontAtlasSetFont(t *testing.T) {
	a := imgui.NewFontAtlas()
	_, _, _, err := a.GetTexDataAsRGBA32()
	require.NoError(t, err)
	small := a.LineHeight()

	a.SetFont(imgui.FontConfig{Name: "big", Data: goregular.TTF, SizePixels: 32})
	assert.False(t, a.IsBuilt())
	_, _, _, err = a.GetTexDataAsRGBA32()
	require.NoError(t, err)
	assert.Greater(t, a.LineHeight(), small)
}

func TestFontAtlasErrors(t *testing.T) {
	a := imgui.NewFontAtlas()

	a.SetFont(imgui.FontConfig{Name: "garbage", Data: []byte("not a font"), SizePixels: 13})
	_, _, _, err := a.GetTexDataAsRGBA32()
	assert.ErrorContains(t, err, "garbage")
	assert.False(t, a.IsBuilt())

	a.SetFont(imgui.FontConfig{Name: "zero", Data: goregular.TTF})
	_, _, _, err = a.GetTexDataAsRGBA32()
	assert.ErrorContains(t, err, "invalid size")
}

func TestFontAtlasTexID(t *testing.T) {
	a := imgui.NewFontAtlas()
	assert.False(t, a.HasTexID())

	a.SetTexID(42)
	assert.True(t, a.HasTexID())
	assert.Equal(t, imgui.TextureID(42), a.TexID())
}

func TestFontAtlasMeasureText(t *testing.T) {
	a := imgui.NewFontAtlas()
	require.NoError(t, a.Build())

	assert.Equal(t, imgui.Vec2{}, a.MeasureText(""))

	one := a.MeasureText("ab")
	assert.Equal(t, a.Glyph('a').AdvanceX+a.Glyph('b').AdvanceX, one.X)
	assert.Equal(t, a.LineHeight(), one.Y)

	two := a.MeasureText("ab\na")
	assert.Equal(t, one.X, two.X, "width is the widest line")
	assert.Equal(t, 2*a.LineHeight(), two.Y)
}
