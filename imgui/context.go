package imgui

import (
	"errors"
	"log/slog"
	"os"
)

var (
	// ErrFontAtlasNotBuilt is returned by NewFrame when the font atlas has
	// not been uploaded and given a texture id.
	ErrFontAtlasNotBuilt = errors.New("imgui: font atlas texture id not set")
	// ErrFrameInProgress is returned by NewFrame when the previous frame
	// was never rendered.
	ErrFrameInProgress = errors.New("imgui: NewFrame called twice without Render")
	// ErrFrameNotStarted is returned by Render outside a frame.
	ErrFrameNotStarted = errors.New("imgui: Render called without NewFrame")
)

// guiLogLevel controls the log level for imgui debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var guiLogLevel = new(slog.LevelVar)

var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// SetVerbose enables or disables debug logging for the package.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// Context holds the IO state and the per-frame draw lists.
// A Context is owned by one render loop and is not safe for concurrent use.
type Context struct {
	io *IO

	drawList           *DrawList
	foregroundDrawList *DrawList // Drawn after drawList (popups, overlays)
	drawData           DrawData

	frameCount  uint64
	withinFrame bool
}

// NewContext creates a context with a default IO and font atlas.
func NewContext() *Context {
	return &Context{io: newIO()}
}

// IO returns the context's IO state.
func (ctx *Context) IO() *IO {
	return ctx.io
}

// Fonts returns the font atlas.
func (ctx *Context) Fonts() *FontAtlas {
	return ctx.io.Fonts
}

// FrameCount returns the number of frames started so far.
func (ctx *Context) FrameCount() uint64 {
	return ctx.frameCount
}

// NewFrame starts building a frame. The font atlas must have been uploaded
// (FontAtlas.SetTexID) beforehand.
func (ctx *Context) NewFrame() error {
	if ctx.withinFrame {
		return ErrFrameInProgress
	}
	atlas := ctx.io.Fonts
	if atlas == nil || !atlas.HasTexID() || !atlas.IsBuilt() {
		return ErrFontAtlasNotBuilt
	}

	// Lists from the previous frame may still be referenced by its DrawData
	// until now.
	ctx.drawData.Clear()
	ReleaseDrawList(ctx.drawList)
	ReleaseDrawList(ctx.foregroundDrawList)

	clip := [4]float32{0, 0, ctx.io.DisplaySize.X, ctx.io.DisplaySize.Y}
	ctx.drawList = AcquireDrawList()
	ctx.drawList.begin(clip, atlas)
	ctx.foregroundDrawList = AcquireDrawList()
	ctx.foregroundDrawList.begin(clip, atlas)

	ctx.io.updateEdges()
	ctx.frameCount++
	ctx.withinFrame = true
	return nil
}

// DrawList returns the main draw list of the current frame.
// Only valid between NewFrame and Render.
func (ctx *Context) DrawList() *DrawList {
	return ctx.drawList
}

// ForegroundDrawList returns the draw list rendered on top of DrawList.
// Only valid between NewFrame and Render.
func (ctx *Context) ForegroundDrawList() *DrawList {
	return ctx.foregroundDrawList
}

// Text draws text at (x, y) on the main draw list.
func (ctx *Context) Text(x, y float32, text string, color uint32) {
	if ctx.drawList != nil {
		ctx.drawList.AddText(x, y, text, color)
	}
}

// MeasureText returns the size of text in the current font.
func (ctx *Context) MeasureText(text string) Vec2 {
	return ctx.io.Fonts.MeasureText(text)
}

// Render finalizes the frame and returns its draw data. Empty lists are
// left out. The draw data stays valid until the next NewFrame.
func (ctx *Context) Render() (*DrawData, error) {
	if !ctx.withinFrame {
		return nil, ErrFrameNotStarted
	}
	ctx.withinFrame = false

	dd := &ctx.drawData
	dd.Clear()
	for _, dl := range []*DrawList{ctx.drawList, ctx.foregroundDrawList} {
		dl.Finalize()
		if dl.Dropped() > 0 {
			guiLogger.Warn("draw list full, primitives dropped", "dropped", dl.Dropped())
		}
		if len(dl.CmdBuffer) == 0 {
			continue
		}
		dd.AddDrawList(dl)
	}
	dd.DisplayPos = Vec2{}
	dd.DisplaySize = ctx.io.DisplaySize
	dd.FramebufferScale = ctx.io.DisplayFramebufferScale
	dd.Valid = true

	ctx.io.ClearInputCharacters()
	return dd, nil
}

// DrawData returns the draw data of the last rendered frame.
func (ctx *Context) DrawData() *DrawData {
	return &ctx.drawData
}
