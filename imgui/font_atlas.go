package imgui

import (
	"fmt"
	"image"
	"unicode/utf8"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the pixel size of the built-in font.
const DefaultFontSize = 13.0

const (
	atlasWidth   = 512
	glyphPadding = 1
	whiteBlock   = 3 // Side of the opaque block used for untextured fills
)

// glyphRanges lists the rune ranges rasterised into the atlas
// (Basic Latin and Latin-1 Supplement).
var glyphRanges = [][2]rune{
	{0x0020, 0x007E},
	{0x00A0, 0x00FF},
}

// FontConfig describes the font rasterised into the atlas.
type FontConfig struct {
	Name       string
	Data       []byte // TrueType or OpenType font file
	SizePixels float64
}

// Glyph is a rasterised character. X0..Y1 are quad offsets from the pen
// position (top of the line box); U0..V1 are atlas texture coordinates.
type Glyph struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
	AdvanceX       float32
}

// FontAtlas rasterises a font into a single RGBA32 bitmap with a small opaque
// block reserved for solid fills. The renderer uploads the bitmap, assigns a
// texture id with SetTexID and may then release the pixels with
// ClearTexData.
type FontAtlas struct {
	config     FontConfig
	glyphs     map[rune]Glyph
	fallback   Glyph
	lineHeight float32
	whiteUV    [2]float32

	pixels []byte // RGBA32, nil until built or after ClearTexData
	width  int
	height int
	built  bool

	texID    TextureID
	texIDSet bool
}

// NewFontAtlas creates an atlas configured with the default font.
func NewFontAtlas() *FontAtlas {
	a := &FontAtlas{}
	a.AddFontDefault()
	return a
}

// AddFontDefault selects the embedded Go Regular font at DefaultFontSize.
func (a *FontAtlas) AddFontDefault() {
	a.SetFont(FontConfig{Name: "Go Regular", Data: goregular.TTF, SizePixels: DefaultFontSize})
}

// SetFont replaces the atlas font. The atlas must be rebuilt and uploaded
// again before the change is visible.
func (a *FontAtlas) SetFont(cfg FontConfig) {
	a.config = cfg
	a.built = false
	a.pixels = nil
}

// Config returns the current font configuration.
func (a *FontAtlas) Config() FontConfig {
	return a.config
}

// IsBuilt reports whether glyph metrics are available for the current font.
func (a *FontAtlas) IsBuilt() bool {
	return a.built
}

// Build rasterises the configured font into the atlas bitmap.
func (a *FontAtlas) Build() error {
	cfg := a.config
	if cfg.SizePixels <= 0 {
		return fmt.Errorf("font %q: invalid size %v", cfg.Name, cfg.SizePixels)
	}

	f, err := opentype.Parse(cfg.Data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", cfg.Name, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    cfg.SizePixels,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create face %q: %w", cfg.Name, err)
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = ascent + metrics.Descent.Ceil()
	}

	// Pack glyph boxes into rows to the right of the white block.
	type placed struct {
		r       rune
		cell    image.Rectangle
		bounds  fixed.Rectangle26_6
		advance fixed.Int26_6
	}
	var boxes []placed
	x, y, rowH := whiteBlock+glyphPadding, glyphPadding, whiteBlock
	for _, rg := range glyphRanges {
		for r := rg[0]; r <= rg[1]; r++ {
			b, adv, ok := face.GlyphBounds(r)
			if !ok {
				continue
			}
			w := b.Max.X.Ceil() - b.Min.X.Floor()
			h := b.Max.Y.Ceil() - b.Min.Y.Floor()
			if x+w+glyphPadding > atlasWidth {
				x = glyphPadding
				y += rowH + glyphPadding
				rowH = 0
			}
			boxes = append(boxes, placed{r: r, cell: image.Rect(x, y, x+w, y+h), bounds: b, advance: adv})
			x += w + glyphPadding
			rowH = max(rowH, h)
		}
	}

	width, height := atlasWidth, nextPow2(y+rowH+glyphPadding)
	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	for py := 0; py < whiteBlock; py++ {
		for px := 0; px < whiteBlock; px++ {
			alpha.Pix[py*alpha.Stride+px] = 0xFF
		}
	}

	fw, fh := float32(width), float32(height)
	glyphs := make(map[rune]Glyph, len(boxes))
	for _, p := range boxes {
		// Place the dot so the glyph's bounding box lands on its cell.
		dotX := p.cell.Min.X - p.bounds.Min.X.Floor()
		dotY := p.cell.Min.Y - p.bounds.Min.Y.Floor()

		dr, mask, maskp, _, ok := face.Glyph(fixed.P(dotX, dotY), p.r)
		if !ok || dr.Empty() {
			glyphs[p.r] = Glyph{AdvanceX: fixedToFloat(p.advance)}
			continue
		}
		clipped := dr.Intersect(alpha.Bounds())
		draw.DrawMask(alpha, clipped, image.Opaque, image.Point{}, mask, maskp.Add(clipped.Min.Sub(dr.Min)), draw.Over)

		ox := float32(dr.Min.X - dotX)
		oy := float32(ascent + dr.Min.Y - dotY)
		glyphs[p.r] = Glyph{
			X0:       ox,
			Y0:       oy,
			X1:       ox + float32(dr.Dx()),
			Y1:       oy + float32(dr.Dy()),
			U0:       float32(dr.Min.X) / fw,
			V0:       float32(dr.Min.Y) / fh,
			U1:       float32(dr.Max.X) / fw,
			V1:       float32(dr.Max.Y) / fh,
			AdvanceX: fixedToFloat(p.advance),
		}
	}

	// Expand to white RGBA with coverage in alpha.
	pixels := make([]byte, width*height*4)
	for i, v := range alpha.Pix {
		pixels[i*4+0] = 0xFF
		pixels[i*4+1] = 0xFF
		pixels[i*4+2] = 0xFF
		pixels[i*4+3] = v
	}

	a.glyphs = glyphs
	a.fallback = glyphs['?']
	a.lineHeight = float32(lineHeight)
	a.whiteUV = [2]float32{(whiteBlock / 2.0) / fw, (whiteBlock / 2.0) / fh}
	a.pixels = pixels
	a.width, a.height = width, height
	a.built = true

	guiLogger.Debug("font atlas built",
		"font", cfg.Name, "size", cfg.SizePixels, "glyphs", len(glyphs),
		"width", width, "height", height)
	return nil
}

// GetTexDataAsRGBA32 returns the atlas bitmap as 4 bytes per pixel,
// building it first if needed.
func (a *FontAtlas) GetTexDataAsRGBA32() (pixels []byte, width, height int, err error) {
	if !a.built || a.pixels == nil {
		if err := a.Build(); err != nil {
			return nil, 0, 0, err
		}
	}
	return a.pixels, a.width, a.height, nil
}

// ClearTexData releases the CPU copy of the bitmap. Glyph metrics are kept.
func (a *FontAtlas) ClearTexData() {
	a.pixels = nil
}

// SetTexID records the texture the atlas bitmap was uploaded to.
func (a *FontAtlas) SetTexID(id TextureID) {
	a.texID = id
	a.texIDSet = true
}

// TexID returns the atlas texture id.
func (a *FontAtlas) TexID() TextureID {
	return a.texID
}

// HasTexID reports whether SetTexID has been called.
func (a *FontAtlas) HasTexID() bool {
	return a.texIDSet
}

// TexUVWhitePixel returns texture coordinates of an opaque white texel.
func (a *FontAtlas) TexUVWhitePixel() [2]float32 {
	return a.whiteUV
}

// Glyph returns the glyph for r, or the '?' glyph if r isn't in the atlas.
func (a *FontAtlas) Glyph(r rune) Glyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.fallback
}

// LineHeight returns the distance between consecutive baselines.
func (a *FontAtlas) LineHeight() float32 {
	return a.lineHeight
}

// MeasureText returns the size of the box AddText would fill.
func (a *FontAtlas) MeasureText(text string) Vec2 {
	if text == "" {
		return Vec2{}
	}
	var width, lineWidth float32
	lines := 1
	for len(text) > 0 {
		r, n := utf8.DecodeRuneInString(text)
		text = text[n:]
		if r == '\n' {
			width = math32.Max(width, lineWidth)
			lineWidth = 0
			lines++
			continue
		}
		lineWidth += a.Glyph(r).AdvanceX
	}
	width = math32.Max(width, lineWidth)
	return Vec2{X: width, Y: float32(lines) * a.lineHeight}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
