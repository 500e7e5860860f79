// Package opengl provides an OpenGL 4.1 device and a GLFW host for the
// guibridge renderer.
package opengl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/guibridge"
	"github.com/go-theft-auto/guibridge/imgui"
)

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// Fragment shader source. Every command samples a texture; solid fills use
// the white pixel of the font atlas.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D guiTexture;

void main() {
    FragColor = Color * texture(guiTexture, TexCoord);
}
` + "\x00"

// Texture is an RGBA8 OpenGL texture.
type Texture struct {
	id            uint32
	width, height int
}

// Size implements guibridge.Texture.
func (t *Texture) Size() (int, int) { return t.width, t.height }

// ID returns the OpenGL texture name.
func (t *Texture) ID() uint32 { return t.id }

// Delete releases the texture. Unbind it from the renderer first.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// VertexBuffer is an OpenGL array buffer sized in vertices.
type VertexBuffer struct {
	id       uint32
	capacity int
}

// Capacity implements guibridge.VertexBuffer.
func (b *VertexBuffer) Capacity() int { return b.capacity }

// SetData implements guibridge.VertexBuffer.
func (b *VertexBuffer) SetData(vertices []imgui.Vertex) error {
	if b.id == 0 {
		return errors.New("opengl: vertex buffer deleted")
	}
	if len(vertices) > b.capacity {
		return fmt.Errorf("opengl: %d vertices exceed capacity %d", len(vertices), b.capacity)
	}
	if len(vertices) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.id)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*imgui.VertexSize, gl.Ptr(vertices))
	return nil
}

// Dispose implements guibridge.VertexBuffer.
func (b *VertexBuffer) Dispose() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// IndexBuffer is an OpenGL element buffer of 16-bit indices.
type IndexBuffer struct {
	id       uint32
	capacity int
}

// Capacity implements guibridge.IndexBuffer.
func (b *IndexBuffer) Capacity() int { return b.capacity }

// SetData implements guibridge.IndexBuffer.
func (b *IndexBuffer) SetData(indices []uint16) error {
	if b.id == 0 {
		return errors.New("opengl: index buffer deleted")
	}
	if len(indices) > b.capacity {
		return fmt.Errorf("opengl: %d indices exceed capacity %d", len(indices), b.capacity)
	}
	if len(indices) == 0 {
		return nil
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.id)
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, len(indices)*imgui.IndexSize, gl.Ptr(indices))
	return nil
}

// Dispose implements guibridge.IndexBuffer.
func (b *IndexBuffer) Dispose() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// Device implements guibridge.Device on the current OpenGL context.
// All methods must be called on the thread owning that context.
type Device struct {
	shader  uint32
	vao     uint32
	projLoc int32
	texLoc  int32

	width, height int
	viewport      guibridge.Rect
	scissor       guibridge.Rect
}

var _ guibridge.Device = (*Device)(nil)

// NewDevice compiles the GUI shader and creates the vertex array object.
// width and height are the framebuffer size in pixels.
func NewDevice(width, height int) (*Device, error) {
	d := &Device{}

	var err error
	d.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	d.projLoc = gl.GetUniformLocation(d.shader, gl.Str("projection\x00"))
	d.texLoc = gl.GetUniformLocation(d.shader, gl.Str("guiTexture\x00"))

	gl.GenVertexArrays(1, &d.vao)

	d.Resize(width, height)
	return d, nil
}

// Resize updates the framebuffer size. Call it from the framebuffer size
// callback; viewport and scissor reset to the full framebuffer.
func (d *Device) Resize(width, height int) {
	d.width = width
	d.height = height
	full := guibridge.Rect{Width: width, Height: height}
	d.SetViewport(full)
	d.SetScissorRect(full)
}

// NewVertexBuffer implements guibridge.Device.
func (d *Device) NewVertexBuffer(capacity int) (guibridge.VertexBuffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, errors.New("opengl: glGenBuffers failed")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	gl.BufferData(gl.ARRAY_BUFFER, capacity*imgui.VertexSize, nil, gl.DYNAMIC_DRAW)
	if err := glError("allocate vertex buffer"); err != nil {
		gl.DeleteBuffers(1, &id)
		return nil, err
	}
	return &VertexBuffer{id: id, capacity: capacity}, nil
}

// NewIndexBuffer implements guibridge.Device.
func (d *Device) NewIndexBuffer(capacity int) (guibridge.IndexBuffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil, errors.New("opengl: glGenBuffers failed")
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, capacity*imgui.IndexSize, nil, gl.DYNAMIC_DRAW)
	if err := glError("allocate index buffer"); err != nil {
		gl.DeleteBuffers(1, &id)
		return nil, err
	}
	return &IndexBuffer{id: id, capacity: capacity}, nil
}

// NewTexture implements guibridge.Device.
func (d *Device) NewTexture(width, height int, pixels []byte) (guibridge.Texture, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("opengl: %d bytes for a %dx%d RGBA texture", len(pixels), width, height)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if err := glError("upload texture"); err != nil {
		gl.DeleteTextures(1, &tex)
		return nil, err
	}
	return &Texture{id: tex, width: width, height: height}, nil
}

// BackBufferSize implements guibridge.Device.
func (d *Device) BackBufferSize() (int, int) { return d.width, d.height }

// Viewport implements guibridge.Device.
func (d *Device) Viewport() guibridge.Rect { return d.viewport }

// SetViewport implements guibridge.Device. r has a top-left origin.
func (d *Device) SetViewport(r guibridge.Rect) {
	d.viewport = r
	gl.Viewport(int32(r.X), int32(d.height-r.Y-r.Height), int32(r.Width), int32(r.Height))
}

// ScissorRect implements guibridge.Device.
func (d *Device) ScissorRect() guibridge.Rect { return d.scissor }

// SetScissorRect implements guibridge.Device. r has a top-left origin and
// is clamped to the framebuffer.
func (d *Device) SetScissorRect(r guibridge.Rect) {
	d.scissor = r

	x := int32(r.X)
	y := int32(d.height - r.Y - r.Height) // OpenGL is bottom-up
	w := int32(r.Width)
	h := int32(r.Height)
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	gl.Scissor(x, y, max(w, 0), max(h, 0))
}

// SetRenderState implements guibridge.Device.
func (d *Device) SetRenderState(s guibridge.RenderState) {
	switch s.Blend {
	case guibridge.BlendNonPremultiplied:
		gl.Enable(gl.BLEND)
		gl.BlendEquation(gl.FUNC_ADD)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	default:
		gl.Disable(gl.BLEND)
	}
	if s.CullBack {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(s.DepthWrite)
	if s.ScissorTest {
		gl.Enable(gl.SCISSOR_TEST)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}
}

// SetBuffers implements guibridge.Device. It binds both buffers into the
// vertex array object and describes the vertex layout.
func (d *Device) SetBuffers(vb guibridge.VertexBuffer, ib guibridge.IndexBuffer) {
	gl.BindVertexArray(d.vao)

	if v, ok := vb.(*VertexBuffer); ok {
		gl.BindBuffer(gl.ARRAY_BUFFER, v.id)

		stride := int32(imgui.VertexSize)
		gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(imgui.Vertex{}.Pos))
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(imgui.Vertex{}.UV))
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(imgui.Vertex{}.Col))
		gl.EnableVertexAttribArray(2)
	}
	if i, ok := ib.(*IndexBuffer); ok {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, i.id)
	}
}

// DrawIndexed implements guibridge.Device.
func (d *Device) DrawIndexed(call guibridge.DrawCall) error {
	tex, ok := call.Texture.(*Texture)
	if !ok {
		return fmt.Errorf("opengl: cannot draw with texture of type %T", call.Texture)
	}

	gl.UseProgram(d.shader)
	gl.UniformMatrix4fv(d.projLoc, 1, false, &call.Projection[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(d.texLoc, 0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.DrawElementsBaseVertexWithOffset(
		gl.TRIANGLES,
		int32(call.IndexCount),
		gl.UNSIGNED_SHORT,
		uintptr(call.StartIndex)*imgui.IndexSize,
		int32(call.BaseVertex),
	)
	return glError("draw")
}

// Delete releases the shader and vertex array object.
func (d *Device) Delete() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.shader != 0 {
		gl.DeleteProgram(d.shader)
		d.shader = 0
	}
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: %s: error 0x%04x", op, code)
	}
	return nil
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}
	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}
