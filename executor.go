package guibridge

import (
	"fmt"

	"github.com/go-theft-auto/guibridge/imgui"
)

// CommandListExecutor replays draw commands as indexed draw calls.
type CommandListExecutor struct {
	device   Device
	registry *TextureRegistry
}

// NewCommandListExecutor creates an executor resolving textures in registry.
func NewCommandListExecutor(device Device, registry *TextureRegistry) *CommandListExecutor {
	return &CommandListExecutor{device: device, registry: registry}
}

// Execute issues one draw call per command of dd, in order, against the
// already-flushed buffers. Vertex and index offsets accumulate across lists
// exactly as GeometryBufferManager.Flush laid them out. The first command
// whose texture cannot be resolved aborts the rest of the frame.
func (e *CommandListExecutor) Execute(dd *imgui.DrawData, vb VertexBuffer, ib IndexBuffer, projection [16]float32) error {
	if dd == nil || dd.TotalVtxCount == 0 {
		return nil
	}

	e.device.SetBuffers(vb, ib)

	vtxOffset, idxOffset := 0, 0
	for n, dl := range dd.CmdLists {
		for i, cmd := range dl.CmdBuffer {
			tex, err := e.registry.Resolve(cmd.TextureID)
			if err != nil {
				return fmt.Errorf("draw list %d command %d: %w", n, i, err)
			}

			e.device.SetScissorRect(scissorFromClip(cmd.ClipRect))

			err = e.device.DrawIndexed(DrawCall{
				Texture:     tex,
				Projection:  projection,
				BaseVertex:  vtxOffset,
				StartIndex:  idxOffset,
				IndexCount:  int(cmd.ElemCount),
				NumVertices: len(dl.VtxBuffer),
			})
			if err != nil {
				return fmt.Errorf("draw list %d command %d: %w", n, i, err)
			}

			idxOffset += int(cmd.ElemCount)
		}
		vtxOffset += len(dl.VtxBuffer)
	}
	return nil
}

// scissorFromClip converts a (x1, y1, x2, y2) clip rectangle to integer
// pixel bounds.
func scissorFromClip(clip [4]float32) Rect {
	return Rect{
		X:      int(clip[0]),
		Y:      int(clip[1]),
		Width:  int(clip[2] - clip[0]),
		Height: int(clip[3] - clip[1]),
	}
}

// OrthoProjection returns a column-major orthographic projection mapping
// (0, 0) to the top-left and (width, height) to the bottom-right corner,
// with near and far planes at -1 and 1.
func OrthoProjection(width, height float32) [16]float32 {
	return orthoMatrix(0, width, height, 0, -1, 1)
}

func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
