package guibridge

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/guibridge/imgui"
)

// GUI is the immediate-mode library driven by the renderer.
// *imgui.Context implements it.
type GUI interface {
	IO() *imgui.IO
	NewFrame() error
	Render() (*imgui.DrawData, error)
}

type frameState int

const (
	stateIdle frameState = iota
	stateInFrame
)

// Renderer drives one GUI context on one device. Begin and End bracket
// each frame; everything runs on the caller's render thread and a Renderer
// is not safe for concurrent use.
type Renderer struct {
	host   Host
	device Device
	gui    GUI
	ctx    *imgui.Context // nil when WithGUI supplied a foreign GUI

	registry *TextureRegistry
	input    *InputTranslator
	geometry *GeometryBufferManager
	executor *CommandListExecutor

	state       frameState
	fontTexture TextureHandle // 0 until the first RebuildFontAtlas

	growth     float64
	fontConfig *imgui.FontConfig
	logger     *slog.Logger
}

// New creates a renderer reading input from host and drawing on device.
// Unless WithGUI is given the renderer owns a fresh imgui.Context.
// Call RebuildFontAtlas before the first Begin.
func New(host Host, device Device, opts ...Option) (*Renderer, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if device == nil {
		return nil, ErrNilDevice
	}

	r := &Renderer{
		host:   host,
		device: device,
		growth: DefaultBufferGrowth,
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.growth < 1 {
		return nil, fmt.Errorf("guibridge: buffer growth %v is below 1", r.growth)
	}

	if r.gui == nil {
		r.ctx = imgui.NewContext()
		r.gui = r.ctx
	}
	io := r.gui.IO()
	if io.Fonts == nil {
		io.Fonts = imgui.NewFontAtlas()
	}
	if r.fontConfig != nil {
		io.Fonts.SetFont(*r.fontConfig)
	}
	if cb, ok := host.(ClipboardHost); ok {
		io.Clipboard = clipboardAdapter{host: cb}
	}

	r.registry = NewTextureRegistry()
	r.input = NewInputTranslator(host, io)
	r.geometry = NewGeometryBufferManager(device, r.growth, r.logger)
	r.executor = NewCommandListExecutor(device, r.registry)
	return r, nil
}

// Context returns the owned imgui context, or nil if WithGUI was used.
func (r *Renderer) Context() *imgui.Context {
	return r.ctx
}

// IO returns the GUI's IO state.
func (r *Renderer) IO() *imgui.IO {
	return r.gui.IO()
}

// Registry returns the texture registry.
func (r *Renderer) Registry() *TextureRegistry {
	return r.registry
}

// Input returns the input translator.
func (r *Renderer) Input() *InputTranslator {
	return r.input
}

// Geometry returns the geometry buffer manager.
func (r *Renderer) Geometry() *GeometryBufferManager {
	return r.geometry
}

// Bind registers a texture for use in GUI content and returns its handle.
func (r *Renderer) Bind(tex Texture) TextureHandle {
	h := r.registry.Bind(tex)
	r.logger.Debug("texture bound", "handle", h)
	return h
}

// Unbind releases a handle. The texture itself is not disposed.
func (r *Renderer) Unbind(h TextureHandle) {
	r.registry.Unbind(h)
	r.logger.Debug("texture unbound", "handle", h)
}

// RebuildFontAtlas rasterises the GUI's font atlas, uploads it as a new
// texture and makes it the atlas texture, unbinding the previous one. Call
// it once before the first frame and after every font change.
func (r *Renderer) RebuildFontAtlas() error {
	fonts := r.gui.IO().Fonts

	pixels, width, height, err := fonts.GetTexDataAsRGBA32()
	if err != nil {
		return fmt.Errorf("build font atlas: %w", err)
	}
	tex, err := r.device.NewTexture(width, height, pixels)
	if err != nil {
		return fmt.Errorf("upload font atlas: %w", err)
	}

	if r.fontTexture != 0 {
		r.Unbind(r.fontTexture)
	}
	r.fontTexture = r.Bind(tex)

	fonts.SetTexID(r.fontTexture)
	fonts.ClearTexData()

	r.logger.Debug("font atlas rebuilt", "width", width, "height", height, "handle", r.fontTexture)
	return nil
}

// FontTexture returns the handle of the current font atlas texture.
func (r *Renderer) FontTexture() TextureHandle {
	return r.fontTexture
}

// Begin starts a frame: it sets the frame time, translates host input and
// starts a new GUI frame. deltaTime is in seconds.
func (r *Renderer) Begin(deltaTime float32) error {
	if r.state != stateIdle {
		return ErrFrameInProgress
	}

	io := r.gui.IO()
	io.DeltaTime = deltaTime

	w, h := r.device.BackBufferSize()
	r.input.Translate(w, h)

	if err := r.gui.NewFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	r.state = stateInFrame
	return nil
}

// End finishes the GUI frame and renders it. The renderer returns to idle
// even when rendering fails; the failed frame is simply not completed.
func (r *Renderer) End() error {
	if r.state != stateInFrame {
		return ErrNoFrame
	}
	r.state = stateIdle

	dd, err := r.gui.Render()
	if err != nil {
		return fmt.Errorf("end frame: %w", err)
	}
	return r.renderDrawData(dd)
}

func (r *Renderer) renderDrawData(dd *imgui.DrawData) error {
	d := r.device
	lastViewport := d.Viewport()
	lastScissor := d.ScissorRect()
	defer func() {
		d.SetViewport(lastViewport)
		d.SetScissorRect(lastScissor)
	}()

	io := r.gui.IO()
	d.SetRenderState(DefaultRenderState)
	dd.ScaleClipRects(io.DisplayFramebufferScale)

	w, h := d.BackBufferSize()
	d.SetViewport(Rect{Width: w, Height: h})

	if err := r.geometry.Flush(dd); err != nil {
		return err
	}

	vb, ib := r.geometry.Buffers()
	projection := OrthoProjection(io.DisplaySize.X, io.DisplaySize.Y)
	return r.executor.Execute(dd, vb, ib, projection)
}

// Close releases the GPU buffers. Bound textures belong to their creators;
// the font atlas texture is unbound but not disposed.
func (r *Renderer) Close() {
	r.geometry.Dispose()
	if r.fontTexture != 0 {
		r.registry.Unbind(r.fontTexture)
		r.fontTexture = 0
	}
}
