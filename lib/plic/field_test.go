package plic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comphy-lab/vofpost/lib/eq"
	"github.com/comphy-lab/vofpost/lib/snapio"
)

// uniformGrid builds an nx-by-ny snapshot of unit-width cells with its
// lower-left corner at the origin and fractions given by f(x, y).
func uniformGrid(nx, ny int, f func(x, y float64) float64) *snapio.Snapshot {
	snap := &snapio.Snapshot{}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x, y := float64(i)+0.5, float64(j)+0.5
			snap.Cells = append(snap.Cells,
				snapio.Cell{X: x, Y: y, Delta: 1.0, F: f(x, y)})
		}
	}
	return snap
}

// pool is a horizontal interface: full below yInterface, cut at the row
// containing it, empty above.
func pool(yInterface float64) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		switch {
		case y+0.5 <= yInterface:
			return 1.0
		case y-0.5 >= yInterface:
			return 0.0
		default:
			return yInterface - (y - 0.5)
		}
	}
}

func TestNormalHorizontalInterface(t *testing.T) {
	field := NewField(uniformGrid(3, 3, pool(1.5)))

	// Center cell of the middle row.
	n := field.Normal(4)
	assert.InDelta(t, 0.0, n.X, 1e-12)
	assert.InDelta(t, 1.0, n.Y, 1e-12)
}

func TestFacetAtHorizontalInterface(t *testing.T) {
	field := NewField(uniformGrid(3, 3, pool(1.5)))

	facet, ok := field.FacetAt(4)
	require.True(t, ok, "the center cut cell must yield a facet")

	// An f = 0.5 cell with a horizontal normal reconstructs to a segment
	// spanning the full cell width at the cell center elevation.
	assert.InDelta(t, 1.0, facet.P0.X, 1e-12)
	assert.InDelta(t, 2.0, facet.P1.X, 1e-12)
	assert.InDelta(t, 1.5, facet.P0.Y, 1e-12)
	assert.InDelta(t, 1.5, facet.P1.Y, 1e-12)
}

func TestFacetEndpointsStayInCell(t *testing.T) {
	// A tilted interface: linear in x so every middle cell is cut at a
	// different fraction.
	field := NewField(uniformGrid(5, 3, func(x, y float64) float64 {
		f := (1.5 + 0.2*x - (y - 0.5))
		return math.Max(0, math.Min(1, f))
	}))

	facets := field.Reconstruct()
	require.NotEmpty(t, facets)

	for _, facet := range facets {
		h := facet.Cell.Delta / 2
		for _, p := range []Coord{facet.P0, facet.P1} {
			assert.LessOrEqualf(t, math.Abs(p.X-facet.Cell.X), h+1e-12,
				"endpoint %v leaves cell centered at (%g, %g)",
				p, facet.Cell.X, facet.Cell.Y)
			assert.LessOrEqualf(t, math.Abs(p.Y-facet.Cell.Y), h+1e-12,
				"endpoint %v leaves cell centered at (%g, %g)",
				p, facet.Cell.X, facet.Cell.Y)
		}
	}
}

func TestReconstructNoInterface(t *testing.T) {
	tests := []func(x, y float64) float64{
		func(x, y float64) float64 { return 0.0 },
		func(x, y float64) float64 { return 1.0 },
		func(x, y float64) float64 {
			if y < 1.0 {
				return 1.0
			}
			return 0.0
		},
	}

	for i, f := range tests {
		facets := NewField(uniformGrid(3, 3, f)).Reconstruct()
		assert.Emptyf(t, facets, "field %d has no cut cells", i)
	}
}

func TestReconstructIdempotent(t *testing.T) {
	snap := uniformGrid(4, 4, pool(2.5))
	a := NewField(snap).Reconstruct()
	b := NewField(snap).Reconstruct()
	assert.Equal(t, a, b)

	// The facet sets also match as unordered point sets, which is the
	// comparison downstream consumers are allowed to rely on.
	endpoints := func(facets []Facet) [][2]float64 {
		pts := [][2]float64{}
		for _, facet := range facets {
			pts = append(pts,
				[2]float64{facet.P0.X, facet.P0.Y},
				[2]float64{facet.P1.X, facet.P1.Y})
		}
		return pts
	}
	assert.True(t,
		eq.UnorderedVec2sEps(endpoints(a), endpoints(b), 1e-12))
}

func TestZeroNormalCellExcluded(t *testing.T) {
	// A uniform f = 0.5 field gives the center cell a zero gradient. The
	// cell is classified as cut but must be skipped, not crash.
	field := NewField(uniformGrid(3, 3, func(x, y float64) float64 {
		return 0.5
	}))

	_, ok := field.FacetAt(4)
	assert.False(t, ok, "a zero-normal cell must not yield a facet")
	assert.NotPanics(t, func() { field.Reconstruct() })
}

func TestAxisBoundaryIsEmpty(t *testing.T) {
	// Lookups left of the axis read no fluid, so a full column against the
	// axis still sees a gradient pointing away from it.
	field := NewField(uniformGrid(1, 3, pool(1.5)))

	n := field.Normal(1)
	assert.Less(t, n.X, 0.0,
		"the axis Dirichlet condition must pull the normal toward -x")

	facet, ok := field.FacetAt(1)
	require.True(t, ok)
	h := facet.Cell.Delta / 2
	for _, p := range []Coord{facet.P0, facet.P1} {
		assert.LessOrEqual(t, math.Abs(p.X-facet.Cell.X), h+1e-12)
		assert.LessOrEqual(t, math.Abs(p.Y-facet.Cell.Y), h+1e-12)
	}
}

func TestRefinedNeighborLookup(t *testing.T) {
	// One coarse full cell next to a 2x2 block of refined cells, with the
	// interface inside the fine block: lookups must cross levels both ways.
	snap := &snapio.Snapshot{Cells: []snapio.Cell{
		{X: 0.5, Y: 0.5, Delta: 1.0, F: 1.0},
		{X: 1.25, Y: 0.25, Delta: 0.5, F: 0.5},
		{X: 1.75, Y: 0.25, Delta: 0.5, F: 0.0},
		{X: 1.25, Y: 0.75, Delta: 0.5, F: 0.5},
		{X: 1.75, Y: 0.75, Delta: 0.5, F: 0.0},
	}}
	field := NewField(snap)

	// The fine cut cells sit between the full coarse cell to the left and
	// empty fine cells to the right, so their normals point to +x.
	for _, ci := range []int{1, 3} {
		n := field.Normal(ci)
		assert.Greaterf(t, n.X, 0.0, "cell %d normal %v", ci, n)

		facet, ok := field.FacetAt(ci)
		require.Truef(t, ok, "cell %d must yield a facet", ci)
		h := facet.Cell.Delta / 2
		for _, p := range []Coord{facet.P0, facet.P1} {
			assert.LessOrEqual(t, math.Abs(p.X-facet.Cell.X), h+1e-12)
			assert.LessOrEqual(t, math.Abs(p.Y-facet.Cell.Y), h+1e-12)
		}
	}

	// The coarse cell is full and contributes nothing.
	_, ok := field.FacetAt(0)
	assert.False(t, ok)
}
