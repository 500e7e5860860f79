package imgui

// DrawData is everything needed to render one frame: the draw lists in
// back-to-front order plus totals a renderer uses to size its buffers.
// It is valid from Context.Render until the next Context.NewFrame.
type DrawData struct {
	Valid            bool
	CmdLists         []*DrawList
	TotalVtxCount    int
	TotalIdxCount    int
	DisplayPos       Vec2
	DisplaySize      Vec2
	FramebufferScale Vec2
}

// AddDrawList appends a list and adds its geometry to the totals.
func (dd *DrawData) AddDrawList(dl *DrawList) {
	dd.CmdLists = append(dd.CmdLists, dl)
	dd.TotalVtxCount += len(dl.VtxBuffer)
	dd.TotalIdxCount += len(dl.IdxBuffer)
}

// CmdListsCount returns the number of draw lists.
func (dd *DrawData) CmdListsCount() int {
	return len(dd.CmdLists)
}

// Clear drops all lists and resets the totals.
func (dd *DrawData) Clear() {
	clear(dd.CmdLists)
	dd.CmdLists = dd.CmdLists[:0]
	dd.TotalVtxCount = 0
	dd.TotalIdxCount = 0
	dd.Valid = false
}

// ScaleClipRects multiplies every command's clip rectangle by scale, for
// renderers whose framebuffer resolution differs from display coordinates.
func (dd *DrawData) ScaleClipRects(scale Vec2) {
	if scale.X == 1 && scale.Y == 1 {
		return
	}
	for _, dl := range dd.CmdLists {
		for i := range dl.CmdBuffer {
			c := &dl.CmdBuffer[i].ClipRect
			c[0] *= scale.X
			c[1] *= scale.Y
			c[2] *= scale.X
			c[3] *= scale.Y
		}
	}
}
