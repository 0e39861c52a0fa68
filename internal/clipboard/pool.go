// Package clipboard provides the fixed pool of staging buffers used to copy
// regions of the tile world and paste them back under a rotation/mirror
// transform, plus the per-buffer station aggregation that travels with a
// staged region.
package clipboard

import (
	"fmt"

	"gridclip/internal/tile"
)

// NumBuffers is the fixed number of clipboard buffer slots.
const NumBuffers = 5

var (
	buffers  [NumBuffers]tile.Map
	stations [NumBuffers]StationList
)

// StationList holds the stations staged in one buffer, keyed by id. It is
// owned by the buffer slot and replaced wholesale by a builder's Finish.
type StationList map[tile.StationID]*Station

// IsBuffer reports whether the map is one of the pool's slots.
func IsBuffer(m *tile.Map) bool {
	for i := range buffers {
		if m == &buffers[i] {
			return true
		}
	}
	return false
}

// GetBuffer returns the buffer at the given pool index.
func GetBuffer(index int) *tile.Map {
	if index < 0 || index >= NumBuffers {
		panic(fmt.Sprintf("clipboard: buffer index %d out of range", index))
	}
	return &buffers[index]
}

// BufferIndex returns the pool index of a buffer.
//
// Precondition: IsBuffer(m).
func BufferIndex(m *tile.Map) int {
	for i := range buffers {
		if m == &buffers[i] {
			return i
		}
	}
	panic("clipboard: map is not a clipboard buffer")
}

// IsBufferEmpty reports whether the buffer currently stages no content.
//
// Precondition: IsBuffer(m).
func IsBufferEmpty(m *tile.Map) bool {
	if !IsBuffer(m) {
		panic("clipboard: map is not a clipboard buffer")
	}
	return !m.IsAllocated()
}

// stationList returns the station list slot of a buffer.
func stationList(m *tile.Map) StationList {
	return stations[BufferIndex(m)]
}

// setStationList replaces the station list slot of a buffer.
func setStationList(m *tile.Map, list StationList) {
	stations[BufferIndex(m)] = list
}

// AllocateBuffer discards any prior content and station list of the buffer
// and sizes its storage to stage contentW×contentH tiles, adding one sentinel
// row and column which are filled with the void type.
//
// Precondition: IsBuffer(m), dimensions at least 1.
func AllocateBuffer(m *tile.Map, contentW, contentH int) {
	if !IsBuffer(m) {
		panic("clipboard: map is not a clipboard buffer")
	}
	if contentW < 1 || contentH < 1 {
		panic(fmt.Sprintf("clipboard: content size %dx%d too small", contentW, contentH))
	}

	setStationList(m, nil)
	m.Alloc(contentW+1, contentH+1)

	for it := tile.NewOrthoIter(tile.AreaXY(m, m.SizeX()-1, 0, 1, m.SizeY())); it.Next(); {
		it.Tile().MakeVoid()
	}
	for it := tile.NewOrthoIter(tile.AreaXY(m, 0, m.SizeY()-1, m.SizeX()-1, 1)); it.Next(); {
		it.Tile().MakeVoid()
	}
}

// EmptyBuffer releases the buffer's cell storage and discards its station
// list. Emptying an empty buffer is a no-op.
//
// Precondition: IsBuffer(m).
func EmptyBuffer(m *tile.Map) {
	if IsBufferEmpty(m) {
		return
	}
	setStationList(m, nil)
	m.Release()
}

// ClearClipboard empties every buffer in the pool.
func ClearClipboard() {
	for i := range buffers {
		EmptyBuffer(&buffers[i])
	}
}

// ContentArea returns the staged content of a buffer as an orthogonal area,
// excluding the sentinel borders.
//
// Precondition: IsBuffer(m), buffer not empty.
func ContentArea(m *tile.Map) tile.OrthogonalArea {
	if IsBufferEmpty(m) {
		panic("clipboard: buffer is empty")
	}
	return tile.AreaXY(m, 0, 0, m.SizeX()-1, m.SizeY()-1)
}
