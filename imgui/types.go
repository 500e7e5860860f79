// Package imgui is a small immediate-mode drawing front end: per-frame draw
// lists, an IO model for input, and a rasterised font atlas.
//
// Geometry is rebuilt every frame between Context.NewFrame and
// Context.Render. The package never touches GPU objects; draw commands refer
// to textures through opaque TextureID values that a renderer resolves.
package imgui

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// TextureID is an opaque texture reference carried by draw commands.
// Zero means "no texture".
type TextureID uint64

// Vertex is the 20-byte vertex record shared with the GPU pipeline.
// The layout is a wire contract: see VertexSize and the offset constants.
type Vertex struct {
	Pos [2]float32 // Position (x, y)
	UV  [2]float32 // Texture coordinates (u, v)
	Col uint32     // RGBA packed color, R in the low byte
}

// Vertex and index layout.
const (
	VertexSize      = 20
	VertexOffsetPos = 0
	VertexOffsetUV  = 8
	VertexOffsetCol = 16
	IndexSize       = 2
)

// DrawCmd is a run of indices drawn with one texture and one clip rectangle.
type DrawCmd struct {
	ClipRect  [4]float32 // Clip rectangle (x1, y1, x2, y2) in screen pixels
	TextureID TextureID  // Texture sampled by this command
	ElemCount uint32     // Number of indices to draw
}

// Color constants (RGBA packed as 0xAABBGGRR).
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
