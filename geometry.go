package guibridge

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/guibridge/imgui"
)

// DefaultBufferGrowth is the factor applied to the required element count
// when a GPU buffer must be reallocated.
const DefaultBufferGrowth = 1.5

// GeometryBufferManager owns the frame's GPU vertex and index buffers and
// packs every draw list into them.
//
// Buffers are created on first use and replaced only when a frame needs
// more room than they have; capacity never shrinks. The CPU staging slices
// always match the GPU capacity.
type GeometryBufferManager struct {
	device Device
	growth float64
	logger *slog.Logger

	vb      VertexBuffer
	ib      IndexBuffer
	vtxData []imgui.Vertex
	idxData []uint16
}

// NewGeometryBufferManager creates a manager that allocates from device.
func NewGeometryBufferManager(device Device, growth float64, logger *slog.Logger) *GeometryBufferManager {
	if growth < 1 {
		growth = DefaultBufferGrowth
	}
	if logger == nil {
		logger = defaultLogger
	}
	return &GeometryBufferManager{device: device, growth: growth, logger: logger}
}

// Flush uploads all vertex and index data of dd. Lists are laid out
// back-to-back in order; the executor relies on the same cumulative
// offsets. A frame without vertices does no buffer work.
func (m *GeometryBufferManager) Flush(dd *imgui.DrawData) error {
	if dd == nil || dd.TotalVtxCount == 0 {
		return nil
	}

	totalVtx, totalIdx := 0, 0
	for _, dl := range dd.CmdLists {
		totalVtx += len(dl.VtxBuffer)
		totalIdx += len(dl.IdxBuffer)
	}
	if totalVtx != dd.TotalVtxCount || totalIdx != dd.TotalIdxCount {
		return fmt.Errorf("draw data totals %d/%d disagree with lists %d/%d",
			dd.TotalVtxCount, dd.TotalIdxCount, totalVtx, totalIdx)
	}

	if err := m.ensureVertexCapacity(totalVtx); err != nil {
		return err
	}
	if err := m.ensureIndexCapacity(totalIdx); err != nil {
		return err
	}

	vtxOffset, idxOffset := 0, 0
	for _, dl := range dd.CmdLists {
		vtxOffset += copy(m.vtxData[vtxOffset:], dl.VtxBuffer)
		idxOffset += copy(m.idxData[idxOffset:], dl.IdxBuffer)
	}

	if err := m.vb.SetData(m.vtxData[:totalVtx]); err != nil {
		return fmt.Errorf("upload vertices: %w", err)
	}
	if totalIdx > 0 {
		if err := m.ib.SetData(m.idxData[:totalIdx]); err != nil {
			return fmt.Errorf("upload indices: %w", err)
		}
	}
	return nil
}

func (m *GeometryBufferManager) ensureVertexCapacity(required int) error {
	if m.vb != nil && required <= m.vb.Capacity() {
		return nil
	}

	size := m.grow(required)
	vb, err := m.device.NewVertexBuffer(size)
	if err != nil {
		return fmt.Errorf("allocate vertex buffer of %d: %w", size, err)
	}
	old := 0
	if m.vb != nil {
		old = m.vb.Capacity()
		m.vb.Dispose()
	}
	m.vb = vb
	m.vtxData = make([]imgui.Vertex, size)
	m.logger.Debug("vertex buffer resized", "old", old, "new", size, "required", required)
	return nil
}

func (m *GeometryBufferManager) ensureIndexCapacity(required int) error {
	if required == 0 || (m.ib != nil && required <= m.ib.Capacity()) {
		return nil
	}

	size := m.grow(required)
	ib, err := m.device.NewIndexBuffer(size)
	if err != nil {
		return fmt.Errorf("allocate index buffer of %d: %w", size, err)
	}
	old := 0
	if m.ib != nil {
		old = m.ib.Capacity()
		m.ib.Dispose()
	}
	m.ib = ib
	m.idxData = make([]uint16, size)
	m.logger.Debug("index buffer resized", "old", old, "new", size, "required", required)
	return nil
}

// grow returns the amortized capacity for a required element count.
func (m *GeometryBufferManager) grow(required int) int {
	return max(int(float64(required)*m.growth), required)
}

// Buffers returns the current GPU buffers; either may be nil before the
// first non-empty frame.
func (m *GeometryBufferManager) Buffers() (VertexBuffer, IndexBuffer) {
	return m.vb, m.ib
}

// VertexCapacity returns the vertex buffer capacity, 0 before allocation.
func (m *GeometryBufferManager) VertexCapacity() int {
	if m.vb == nil {
		return 0
	}
	return m.vb.Capacity()
}

// IndexCapacity returns the index buffer capacity, 0 before allocation.
func (m *GeometryBufferManager) IndexCapacity() int {
	if m.ib == nil {
		return 0
	}
	return m.ib.Capacity()
}

// Dispose releases both GPU buffers.
func (m *GeometryBufferManager) Dispose() {
	if m.vb != nil {
		m.vb.Dispose()
		m.vb = nil
	}
	if m.ib != nil {
		m.ib.Dispose()
		m.ib = nil
	}
	m.vtxData = nil
	m.idxData = nil
}
