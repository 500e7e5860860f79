// Package recording provides a headless guibridge device that records every
// call instead of talking to a GPU, and a scripted host. It backs the tests
// and the example's -headless mode.
package recording

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-theft-auto/guibridge"
	"github.com/go-theft-auto/guibridge/imgui"
)

// ErrDisposed is returned when uploading to a disposed buffer.
var ErrDisposed = errors.New("recording: buffer disposed")

// Op names a recorded device call.
type Op int

const (
	OpNewVertexBuffer Op = iota + 1
	OpNewIndexBuffer
	OpNewTexture
	OpDisposeVertexBuffer
	OpDisposeIndexBuffer
	OpSetVertexData
	OpSetIndexData
	OpSetViewport
	OpSetScissor
	OpSetRenderState
	OpSetBuffers
	OpDraw
)

var opNames = map[Op]string{
	OpNewVertexBuffer:     "NewVertexBuffer",
	OpNewIndexBuffer:      "NewIndexBuffer",
	OpNewTexture:          "NewTexture",
	OpDisposeVertexBuffer: "DisposeVertexBuffer",
	OpDisposeIndexBuffer:  "DisposeIndexBuffer",
	OpSetVertexData:       "SetVertexData",
	OpSetIndexData:        "SetIndexData",
	OpSetViewport:         "SetViewport",
	OpSetScissor:          "SetScissor",
	OpSetRenderState:      "SetRenderState",
	OpSetBuffers:          "SetBuffers",
	OpDraw:                "Draw",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Call is one recorded device call. Only the fields relevant to Op are set.
type Call struct {
	Op      Op
	Rect    guibridge.Rect        // SetViewport, SetScissor
	State   guibridge.RenderState // SetRenderState
	Draw    guibridge.DrawCall    // Draw
	Scissor guibridge.Rect        // Scissor in effect at Draw
	Size    int                   // Capacity for allocations, element count for uploads
}

func (c Call) String() string {
	switch c.Op {
	case OpSetViewport, OpSetScissor:
		return fmt.Sprintf("%v %d,%d %dx%d", c.Op, c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height)
	case OpSetRenderState:
		return fmt.Sprintf("%v %+v", c.Op, c.State)
	case OpDraw:
		tex := 0
		if t, ok := c.Draw.Texture.(*Texture); ok {
			tex = t.ID
		}
		return fmt.Sprintf("%v tex=%d base=%d start=%d count=%d scissor=%d,%d %dx%d",
			c.Op, tex, c.Draw.BaseVertex, c.Draw.StartIndex, c.Draw.IndexCount,
			c.Scissor.X, c.Scissor.Y, c.Scissor.Width, c.Scissor.Height)
	case OpSetBuffers:
		return c.Op.String()
	default:
		return fmt.Sprintf("%v %d", c.Op, c.Size)
	}
}

// Texture is a recorded texture holding a copy of its pixels.
type Texture struct {
	ID     int
	Width  int
	Height int
	Pixels []byte
}

// Size implements guibridge.Texture.
func (t *Texture) Size() (int, int) { return t.Width, t.Height }

// VertexBuffer keeps uploaded vertices in memory.
type VertexBuffer struct {
	device   *Device
	ID       int
	capacity int
	Data     []imgui.Vertex
	Disposed bool
}

// Capacity implements guibridge.VertexBuffer.
func (b *VertexBuffer) Capacity() int { return b.capacity }

// SetData implements guibridge.VertexBuffer.
func (b *VertexBuffer) SetData(vertices []imgui.Vertex) error {
	if b.Disposed {
		return ErrDisposed
	}
	if len(vertices) > b.capacity {
		return fmt.Errorf("recording: %d vertices exceed capacity %d", len(vertices), b.capacity)
	}
	b.Data = append(b.Data[:0], vertices...)
	b.device.record(Call{Op: OpSetVertexData, Size: len(vertices)})
	return nil
}

// Dispose implements guibridge.VertexBuffer.
func (b *VertexBuffer) Dispose() {
	b.Disposed = true
	b.device.record(Call{Op: OpDisposeVertexBuffer, Size: b.capacity})
}

// IndexBuffer keeps uploaded indices in memory.
type IndexBuffer struct {
	device   *Device
	ID       int
	capacity int
	Data     []uint16
	Disposed bool
}

// Capacity implements guibridge.IndexBuffer.
func (b *IndexBuffer) Capacity() int { return b.capacity }

// SetData implements guibridge.IndexBuffer.
func (b *IndexBuffer) SetData(indices []uint16) error {
	if b.Disposed {
		return ErrDisposed
	}
	if len(indices) > b.capacity {
		return fmt.Errorf("recording: %d indices exceed capacity %d", len(indices), b.capacity)
	}
	b.Data = append(b.Data[:0], indices...)
	b.device.record(Call{Op: OpSetIndexData, Size: len(indices)})
	return nil
}

// Dispose implements guibridge.IndexBuffer.
func (b *IndexBuffer) Dispose() {
	b.Disposed = true
	b.device.record(Call{Op: OpDisposeIndexBuffer, Size: b.capacity})
}

// Device is a guibridge.Device that records calls. Draws are validated
// against the bound buffers, so out-of-range offsets fail like they would
// on a strict GPU driver.
type Device struct {
	Width, Height int
	Calls         []Call

	// AllocErr, when set, is returned by every allocation.
	AllocErr error

	viewport guibridge.Rect
	scissor  guibridge.Rect
	state    guibridge.RenderState
	vb       guibridge.VertexBuffer
	ib       guibridge.IndexBuffer
	nextID   int
}

var _ guibridge.Device = (*Device)(nil)

// NewDevice creates a device with a back buffer of the given size.
func NewDevice(width, height int) *Device {
	full := guibridge.Rect{Width: width, Height: height}
	return &Device{Width: width, Height: height, viewport: full, scissor: full}
}

func (d *Device) record(c Call) {
	d.Calls = append(d.Calls, c)
}

func (d *Device) id() int {
	d.nextID++
	return d.nextID
}

// NewVertexBuffer implements guibridge.Device.
func (d *Device) NewVertexBuffer(capacity int) (guibridge.VertexBuffer, error) {
	if d.AllocErr != nil {
		return nil, d.AllocErr
	}
	d.record(Call{Op: OpNewVertexBuffer, Size: capacity})
	return &VertexBuffer{device: d, ID: d.id(), capacity: capacity}, nil
}

// NewIndexBuffer implements guibridge.Device.
func (d *Device) NewIndexBuffer(capacity int) (guibridge.IndexBuffer, error) {
	if d.AllocErr != nil {
		return nil, d.AllocErr
	}
	d.record(Call{Op: OpNewIndexBuffer, Size: capacity})
	return &IndexBuffer{device: d, ID: d.id(), capacity: capacity}, nil
}

// NewTexture implements guibridge.Device.
func (d *Device) NewTexture(width, height int, pixels []byte) (guibridge.Texture, error) {
	if d.AllocErr != nil {
		return nil, d.AllocErr
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("recording: %d bytes for a %dx%d RGBA texture", len(pixels), width, height)
	}
	d.record(Call{Op: OpNewTexture, Size: width * height})
	return &Texture{ID: d.id(), Width: width, Height: height, Pixels: append([]byte(nil), pixels...)}, nil
}

// BackBufferSize implements guibridge.Device.
func (d *Device) BackBufferSize() (int, int) { return d.Width, d.Height }

// Viewport implements guibridge.Device.
func (d *Device) Viewport() guibridge.Rect { return d.viewport }

// SetViewport implements guibridge.Device.
func (d *Device) SetViewport(r guibridge.Rect) {
	d.viewport = r
	d.record(Call{Op: OpSetViewport, Rect: r})
}

// ScissorRect implements guibridge.Device.
func (d *Device) ScissorRect() guibridge.Rect { return d.scissor }

// SetScissorRect implements guibridge.Device.
func (d *Device) SetScissorRect(r guibridge.Rect) {
	d.scissor = r
	d.record(Call{Op: OpSetScissor, Rect: r})
}

// RenderState returns the last state set.
func (d *Device) RenderState() guibridge.RenderState { return d.state }

// SetRenderState implements guibridge.Device.
func (d *Device) SetRenderState(s guibridge.RenderState) {
	d.state = s
	d.record(Call{Op: OpSetRenderState, State: s})
}

// SetBuffers implements guibridge.Device.
func (d *Device) SetBuffers(vb guibridge.VertexBuffer, ib guibridge.IndexBuffer) {
	d.vb, d.ib = vb, ib
	d.record(Call{Op: OpSetBuffers})
}

// DrawIndexed implements guibridge.Device.
func (d *Device) DrawIndexed(call guibridge.DrawCall) error {
	if call.Texture == nil {
		return errors.New("recording: draw without texture")
	}
	vb, ok := d.vb.(*VertexBuffer)
	if !ok || vb.Disposed {
		return errors.New("recording: draw without a live vertex buffer")
	}
	ib, ok := d.ib.(*IndexBuffer)
	if !ok || ib.Disposed {
		return errors.New("recording: draw without a live index buffer")
	}

	end := call.StartIndex + call.IndexCount
	if call.StartIndex < 0 || end > len(ib.Data) {
		return fmt.Errorf("recording: indices [%d,%d) outside %d uploaded", call.StartIndex, end, len(ib.Data))
	}
	for _, idx := range ib.Data[call.StartIndex:end] {
		v := call.BaseVertex + int(idx)
		if v >= len(vb.Data) || int(idx) >= call.NumVertices {
			return fmt.Errorf("recording: vertex %d outside %d uploaded", v, len(vb.Data))
		}
	}

	d.record(Call{Op: OpDraw, Draw: call, Scissor: d.scissor})
	return nil
}

// Draws returns the recorded draw calls in order.
func (d *Device) Draws() []Call {
	var draws []Call
	for _, c := range d.Calls {
		if c.Op == OpDraw {
			draws = append(draws, c)
		}
	}
	return draws
}

// Count returns how many calls of op were recorded.
func (d *Device) Count(op Op) int {
	n := 0
	for _, c := range d.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls; buffers and state are kept.
func (d *Device) Reset() {
	d.Calls = d.Calls[:0]
}

// Dump writes one line per recorded call.
func (d *Device) Dump(w io.Writer) error {
	for i, c := range d.Calls {
		if _, err := fmt.Fprintf(w, "%4d %v\n", i, c); err != nil {
			return err
		}
	}
	return nil
}
