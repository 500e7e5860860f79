package imgui

import (
	"sync"

	"github.com/chewxy/math32"
)

// maxListVertices is the most vertices a single list can address with
// 16-bit indices.
const maxListVertices = 1 << 16

// noClip is the clip rectangle used when nothing narrower is pushed.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// drawListPool provides reuse of DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates geometry and draw commands for one layer of a frame.
//
// Indices in IdxBuffer are relative to the first vertex of the list, so a
// renderer that concatenates lists draws each one with a base vertex equal
// to the number of vertices that precede it. Commands are split whenever the
// texture or clip rectangle changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    TextureID
	idxCmdOffset uint32 // Index offset of the open command
	atlas        *FontAtlas
	whiteUV      [2]float32
	dropped      int // Primitives dropped because the list was full
}

// NewDrawList creates an empty DrawList outside the pool.
func NewDrawList() *DrawList {
	dl := &DrawList{}
	dl.Clear()
	return dl
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.idxCmdOffset = 0
	dl.atlas = nil
	dl.whiteUV = [2]float32{}
	dl.dropped = 0
}

// begin prepares a cleared list for a frame drawn over the given display
// rectangle, using atlas for text and solid fills.
func (dl *DrawList) begin(clip [4]float32, atlas *FontAtlas) {
	dl.Clear()
	dl.currentClip = clip
	dl.atlas = atlas
	if atlas != nil {
		dl.textureID = atlas.TexID()
		dl.whiteUV = atlas.TexUVWhitePixel()
	}
}

// PushClipRect pushes a clip rectangle intersected with the current one.
// All subsequent primitives are clipped to it.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	cur := dl.currentClip
	dl.currentClip = [4]float32{
		math32.Max(x1, cur[0]),
		math32.Max(y1, cur[1]),
		math32.Min(x2, cur[2]),
		math32.Min(y2, cur[3]),
	}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the current clip rectangle.
func (dl *DrawList) ClipRect() [4]float32 {
	return dl.currentClip
}

// SetTexture sets the texture for subsequent primitives.
func (dl *DrawList) SetTexture(id TextureID) {
	if dl.textureID != id {
		dl.textureID = id
		dl.splitDraw()
	}
}

// Texture returns the texture used for subsequent primitives.
func (dl *DrawList) Texture() TextureID {
	return dl.textureID
}

// Dropped returns how many primitives were discarded this frame because the
// list ran out of 16-bit index space.
func (dl *DrawList) Dropped() int {
	return dl.dropped
}

// splitDraw closes the open command and starts a new one with the current
// texture and clip. An open command with no indices is reused in place.
func (dl *DrawList) splitDraw() {
	if n := len(dl.CmdBuffer); n > 0 {
		last := &dl.CmdBuffer[n-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		if last.ElemCount == 0 {
			last.ClipRect = dl.currentClip
			last.TextureID = dl.textureID
			return
		}
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:  dl.currentClip,
		TextureID: dl.textureID,
	})
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// reserve ensures there's an open command and room for n more vertices.
func (dl *DrawList) reserve(n int) bool {
	if len(dl.VtxBuffer)+n > maxListVertices {
		dl.dropped++
		return false
	}
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	return true
}

// addVertices appends vertices and returns the index of the first one.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	start := uint16(len(dl.VtxBuffer))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	if !dl.reserve(4) {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x0, y0}, UV: [2]float32{u0, v0}, Col: color},
		Vertex{Pos: [2]float32{x1, y0}, UV: [2]float32{u1, v0}, Col: color},
		Vertex{Pos: [2]float32{x1, y1}, UV: [2]float32{u1, v1}, Col: color},
		Vertex{Pos: [2]float32{x0, y1}, UV: [2]float32{u0, v1}, Col: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	u, v := dl.whiteUV[0], dl.whiteUV[1]
	dl.addQuad(x, y, x+w, y+h, u, v, u, v, color)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || !dl.reserve(4) {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / math32.Sqrt(dx*dx+dy*dy)
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	u, v := dl.whiteUV[0], dl.whiteUV[1]

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, UV: [2]float32{u, v}, Col: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, UV: [2]float32{u, v}, Col: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, UV: [2]float32{u, v}, Col: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, UV: [2]float32{u, v}, Col: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 || !dl.reserve(3) {
		return
	}
	u, v := dl.whiteUV[0], dl.whiteUV[1]

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, UV: [2]float32{u, v}, Col: color},
		Vertex{Pos: [2]float32{x2, y2}, UV: [2]float32{u, v}, Col: color},
		Vertex{Pos: [2]float32{x3, y3}, UV: [2]float32{u, v}, Col: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddImage draws a textured rectangle, then restores the previous texture.
func (dl *DrawList) AddImage(tex TextureID, x, y, w, h float32, uv0, uv1 Vec2, color uint32) {
	prev := dl.textureID
	dl.SetTexture(tex)
	dl.addQuad(x, y, x+w, y+h, uv0.X, uv0.Y, uv1.X, uv1.Y, color)
	dl.SetTexture(prev)
}

// AddText draws text with its top-left corner at (x, y) using the atlas the
// list was started with. Newlines start a new line.
func (dl *DrawList) AddText(x, y float32, text string, color uint32) {
	if color&0xFF000000 == 0 || len(text) == 0 || dl.atlas == nil {
		return
	}

	prev := dl.textureID
	dl.SetTexture(dl.atlas.TexID())

	penX, penY := x, y
	for _, r := range text {
		if r == '\n' {
			penX = x
			penY += dl.atlas.LineHeight()
			continue
		}
		g := dl.atlas.Glyph(r)
		if g.X1 > g.X0 && g.Y1 > g.Y0 {
			dl.addQuad(penX+g.X0, penY+g.Y0, penX+g.X1, penY+g.Y1, g.U0, g.V0, g.U1, g.V1, color)
		}
		penX += g.AdvanceX
	}

	dl.SetTexture(prev)
}

// Finalize closes the open command and drops empty commands.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
