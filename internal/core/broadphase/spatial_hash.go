package broadphase

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/zeusync/impulse/internal/core/geometry"
)

var ErrInvalidCellSize = errors.New("cell size must be positive and finite")

// Object is anything the broad phase can index.
type Object interface {
	ID() uuid.UUID
	Bounds() geometry.BoundingBox
}

// Detector narrows the set of object pairs that may collide. Objects sharing
// a group are candidates; objects that never share a group cannot collide.
type Detector[T Object] interface {
	Add(obj T)
	Remove(obj T)
	Update(obj T)
	CandidateGroups() [][]T
}

var _ Detector[Object] = (*SpatialHash[Object])(nil)

// CellIndex addresses one square cell of the grid.
type CellIndex struct {
	X, Y int
}

type cell[T Object] struct {
	index   CellIndex
	objects []T
}

// SpatialHash buckets objects into a uniform grid of square cells. Cells live
// in a map keyed by the xxhash digest of their coordinates; the rare digest
// collision is handled by chaining.
type SpatialHash[T Object] struct {
	cellSize float64
	cells    map[uint64][]*cell[T]
	members  map[uuid.UUID][]CellIndex
}

func NewSpatialHash[T Object](cellSize float64) (*SpatialHash[T], error) {
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		return nil, fmt.Errorf("spatial hash: %w: %v", ErrInvalidCellSize, cellSize)
	}
	return &SpatialHash[T]{
		cellSize: cellSize,
		cells:    make(map[uint64][]*cell[T]),
		members:  make(map[uuid.UUID][]CellIndex),
	}, nil
}

func (h *SpatialHash[T]) CellSize() float64 {
	return h.cellSize
}

// Add indexes obj under every cell its bounding box touches. Adding an object
// that is already indexed does nothing.
func (h *SpatialHash[T]) Add(obj T) {
	id := obj.ID()
	if _, ok := h.members[id]; ok {
		return
	}

	indices := h.cellsFor(obj.Bounds())
	for _, idx := range indices {
		c := h.lookup(idx, true)
		c.objects = append(c.objects, obj)
	}
	h.members[id] = indices
}

// Remove drops obj from every cell it occupies. Unknown objects are ignored.
func (h *SpatialHash[T]) Remove(obj T) {
	id := obj.ID()
	indices, ok := h.members[id]
	if !ok {
		return
	}

	for _, idx := range indices {
		c := h.lookup(idx, false)
		if c == nil {
			continue
		}
		c.objects = slices.DeleteFunc(c.objects, func(o T) bool { return o.ID() == id })
		if len(c.objects) == 0 {
			h.drop(idx)
		}
	}
	delete(h.members, id)
}

// Update re-indexes obj after its bounds changed.
func (h *SpatialHash[T]) Update(obj T) {
	h.Remove(obj)
	h.Add(obj)
}

// CandidateGroups returns the occupants of every cell holding at least two
// objects, ordered by cell coordinate.
func (h *SpatialHash[T]) CandidateGroups() [][]T {
	var crowded []*cell[T]
	for _, chain := range h.cells {
		for _, c := range chain {
			if len(c.objects) > 1 {
				crowded = append(crowded, c)
			}
		}
	}
	slices.SortFunc(crowded, func(a, b *cell[T]) int {
		return compareIndex(a.index, b.index)
	})

	groups := make([][]T, len(crowded))
	for i, c := range crowded {
		groups[i] = slices.Clone(c.objects)
	}
	return groups
}

// Cells lists the cells the object with the given id occupies.
func (h *SpatialHash[T]) Cells(id uuid.UUID) []CellIndex {
	return slices.Clone(h.members[id])
}

// Occupants lists the objects in one cell.
func (h *SpatialHash[T]) Occupants(idx CellIndex) []T {
	c := h.lookup(idx, false)
	if c == nil {
		return nil
	}
	return slices.Clone(c.objects)
}

func (h *SpatialHash[T]) Contains(id uuid.UUID) bool {
	_, ok := h.members[id]
	return ok
}

// Len is the number of indexed objects.
func (h *SpatialHash[T]) Len() int {
	return len(h.members)
}

// CellOf maps a coordinate pair to the cell containing it.
func (h *SpatialHash[T]) CellOf(x, y float64) CellIndex {
	return CellIndex{X: int(math.Floor(x / h.cellSize)), Y: int(math.Floor(y / h.cellSize))}
}

func (h *SpatialHash[T]) cellsFor(b geometry.BoundingBox) []CellIndex {
	lo, hi := h.CellOf(b.MinX, b.MinY), h.CellOf(b.MaxX, b.MaxY)
	indices := make([]CellIndex, 0, (hi.X-lo.X+1)*(hi.Y-lo.Y+1))
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			indices = append(indices, CellIndex{X: x, Y: y})
		}
	}
	return indices
}

func (h *SpatialHash[T]) lookup(idx CellIndex, create bool) *cell[T] {
	key := hashIndex(idx)
	for _, c := range h.cells[key] {
		if c.index == idx {
			return c
		}
	}
	if !create {
		return nil
	}
	c := &cell[T]{index: idx}
	h.cells[key] = append(h.cells[key], c)
	return c
}

func (h *SpatialHash[T]) drop(idx CellIndex) {
	key := hashIndex(idx)
	chain := slices.DeleteFunc(h.cells[key], func(c *cell[T]) bool { return c.index == idx })
	if len(chain) == 0 {
		delete(h.cells, key)
		return
	}
	h.cells[key] = chain
}

func hashIndex(idx CellIndex) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(idx.X))
	binary.LittleEndian.PutUint64(buf[8:], uint64(idx.Y))
	return xxhash.Sum64(buf[:])
}

func compareIndex(a, b CellIndex) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}
