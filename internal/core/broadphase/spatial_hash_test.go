package broadphase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/impulse/internal/core/geometry"
	"github.com/zeusync/impulse/internal/core/vector"
)

type box struct {
	id    uuid.UUID
	shape geometry.Geometry
}

func newBox(shape geometry.Geometry) *box {
	return &box{id: uuid.New(), shape: shape}
}

func (b *box) ID() uuid.UUID                { return b.id }
func (b *box) Bounds() geometry.BoundingBox { return b.shape.Bounds() }

func rect(x, y, w, h float64) geometry.Geometry {
	return geometry.NewRect(vector.NewPoint(x, y), w, h)
}

func newHash(t *testing.T, size float64) *SpatialHash[*box] {
	t.Helper()
	h, err := NewSpatialHash[*box](size)
	require.NoError(t, err)
	return h
}

func TestNewSpatialHash_InvalidCellSize(t *testing.T) {
	for _, size := range []float64{0, -1} {
		_, err := NewSpatialHash[*box](size)
		assert.ErrorIs(t, err, ErrInvalidCellSize)
	}
}

func TestSpatialHash_AddCoversBoundingBox(t *testing.T) {
	h := newHash(t, 10)
	b := newBox(rect(10, 5, 12, 4)) // x 4..16, y 3..7
	h.Add(b)

	assert.ElementsMatch(t, []CellIndex{{0, 0}, {1, 0}}, h.Cells(b.ID()))
	assert.Equal(t, []*box{b}, h.Occupants(CellIndex{1, 0}))
	assert.True(t, h.Contains(b.ID()))
	assert.Equal(t, 1, h.Len())
}

func TestSpatialHash_NegativeCoordinates(t *testing.T) {
	h := newHash(t, 10)
	b := newBox(rect(-5, -5, 2, 2))
	h.Add(b)
	assert.Equal(t, []CellIndex{{-1, -1}}, h.Cells(b.ID()))
	assert.Equal(t, CellIndex{X: -1, Y: 0}, h.CellOf(-0.5, 0.5))
}

func TestSpatialHash_DegenerateBoxOccupiesOneCell(t *testing.T) {
	h := newHash(t, 10)
	b := newBox(rect(3, 3, 0, 0))
	h.Add(b)
	assert.Equal(t, []CellIndex{{0, 0}}, h.Cells(b.ID()))
}

func TestSpatialHash_AddIsIdempotent(t *testing.T) {
	h := newHash(t, 10)
	b := newBox(rect(5, 5, 2, 2))
	h.Add(b)
	h.Add(b)
	assert.Len(t, h.Occupants(CellIndex{0, 0}), 1)
}

func TestSpatialHash_RoundTrip(t *testing.T) {
	h := newHash(t, 10)
	a := newBox(rect(5, 5, 30, 30))
	b := newBox(rect(6, 6, 2, 2))

	h.Add(a)
	h.Add(b)
	require.Len(t, h.CandidateGroups(), 1)

	h.Remove(b)
	assert.Empty(t, h.CandidateGroups())
	assert.Empty(t, h.Cells(b.ID()))
	assert.False(t, h.Contains(b.ID()))

	h.Remove(a)
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.cells, "empty cells are released")

	h.Remove(a)
}

func TestSpatialHash_CandidateGroups(t *testing.T) {
	h := newHash(t, 10)
	a := newBox(rect(2, 2, 2, 2))
	b := newBox(rect(4, 4, 2, 2))
	c := newBox(rect(15, 2, 2, 2))
	d := newBox(rect(50, 50, 2, 2))
	for _, o := range []*box{a, b, c, d} {
		h.Add(o)
	}

	groups := h.CandidateGroups()
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, []*box{a, b}, groups[0])

	// c now straddles cells 0 and 1 and joins the crowded cell.
	c.shape = rect(10, 2, 4, 2)
	h.Update(c)
	groups = h.CandidateGroups()
	require.Len(t, groups, 1)
	assert.ElementsMatch(t, []*box{a, b, c}, groups[0])
}

func TestSpatialHash_CandidateGroupsOrdered(t *testing.T) {
	h := newHash(t, 1)
	for _, x := range []float64{7.5, -3.5, 2.5} {
		h.Add(newBox(rect(x, 0.5, 0.5, 0.5)))
		h.Add(newBox(rect(x, 0.5, 0.25, 0.25)))
	}
	groups := h.CandidateGroups()
	require.Len(t, groups, 3)
	assert.Less(t, groups[0][0].Bounds().MinX, groups[1][0].Bounds().MinX)
	assert.Less(t, groups[1][0].Bounds().MinX, groups[2][0].Bounds().MinX)
}

func TestSpatialHash_UpdateMovesObject(t *testing.T) {
	h := newHash(t, 10)
	b := newBox(rect(5, 5, 2, 2))
	h.Add(b)

	b.shape = rect(35, 5, 2, 2)
	h.Update(b)
	assert.Equal(t, []CellIndex{{3, 0}}, h.Cells(b.ID()))
	assert.Empty(t, h.Occupants(CellIndex{0, 0}))
}
