package guibridge

import "github.com/go-theft-auto/guibridge/imgui"

// Texture is a GPU texture owned by whoever created it. The registry keys
// textures by identity, so implementations must be comparable; pointer
// types are the norm.
type Texture interface {
	Size() (width, height int)
}

// VertexBuffer is a GPU vertex buffer of fixed capacity, in vertices.
type VertexBuffer interface {
	Capacity() int
	// SetData uploads vertices to the start of the buffer.
	SetData(vertices []imgui.Vertex) error
	Dispose()
}

// IndexBuffer is a GPU buffer of 16-bit indices of fixed capacity.
type IndexBuffer interface {
	Capacity() int
	// SetData uploads indices to the start of the buffer.
	SetData(indices []uint16) error
	Dispose()
}

// Rect is an integer pixel rectangle with a top-left origin.
type Rect struct {
	X, Y          int
	Width, Height int
}

// BlendMode selects how fragments combine with the framebuffer.
type BlendMode int

const (
	// BlendOpaque writes source colors unchanged.
	BlendOpaque BlendMode = iota
	// BlendNonPremultiplied is src*srcAlpha + dst*(1-srcAlpha).
	BlendNonPremultiplied
)

// RenderState is the fixed-function state for a pass.
type RenderState struct {
	Blend       BlendMode
	CullBack    bool // Cull back-facing triangles
	DepthWrite  bool
	ScissorTest bool
}

// DefaultRenderState is used for every GUI draw command: no depth write, no
// culling, non-premultiplied alpha blending and scissor test on.
var DefaultRenderState = RenderState{
	Blend:       BlendNonPremultiplied,
	ScissorTest: true,
}

// DrawCall is one indexed triangle-list draw. It carries the texture and
// projection so a backend needs no state between calls beyond the bound
// buffers.
type DrawCall struct {
	Texture     Texture
	Projection  [16]float32 // Column-major
	BaseVertex  int         // Added to every index
	StartIndex  int         // First index in the bound index buffer
	IndexCount  int
	NumVertices int // Vertices addressable from BaseVertex
}

// Device is the GPU abstraction the renderer draws through.
type Device interface {
	NewVertexBuffer(capacity int) (VertexBuffer, error)
	NewIndexBuffer(capacity int) (IndexBuffer, error)
	// NewTexture creates a texture from tightly packed RGBA8 pixels.
	NewTexture(width, height int, pixels []byte) (Texture, error)

	BackBufferSize() (width, height int)
	Viewport() Rect
	SetViewport(r Rect)
	ScissorRect() Rect
	SetScissorRect(r Rect)
	SetRenderState(s RenderState)

	SetBuffers(vb VertexBuffer, ib IndexBuffer)
	DrawIndexed(call DrawCall) error
}
