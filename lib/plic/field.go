package plic

import (
	"math"

	"github.com/comphy-lab/vofpost/lib/snapio"
)

// Facet is the reconstructed interface piece inside one cut cell. P0 and P1
// lie on the cell's boundary, in absolute coordinates, so both are within
// Cell.Delta/2 of the cell center componentwise. The endpoint order carries
// no meaning; consumers treat facets as undirected segments.
type Facet struct {
	Cell   snapio.Cell
	P0, P1 Coord
}

// cellKey addresses one cell of the refinement hierarchy: level 0 is the
// coarsest width present in the snapshot and each level halves it, with
// (i, j) counting cells of that width from the domain's lower-left corner.
type cellKey struct {
	level, i, j int
}

// Field indexes a snapshot's cells so volume fraction lookups at neighbor
// offsets resolve across refinement levels. It also establishes the boundary
// behavior the reconstruction needs: lookups left of the symmetry axis
// return 0 (no fluid at the axis) and lookups past any other domain edge
// mirror the interior value. A Field never mutates its snapshot.
type Field struct {
	snap           *snapio.Snapshot
	index          map[cellKey]int
	x0, y0, x1, y1 float64
	delta0         float64
	maxLevel       int
}

// NewField builds the refinement-level index for snap. Cells are assumed
// square and axis-aligned with widths that are power-of-two divisions of the
// coarsest width, which is what an adaptively refined quadtree grid
// guarantees.
func NewField(snap *snapio.Snapshot) *Field {
	field := &Field{snap: snap, index: map[cellKey]int{}}
	if len(snap.Cells) == 0 {
		return field
	}

	c0 := snap.Cells[0]
	field.delta0 = c0.Delta
	field.x0, field.y0 = c0.X-c0.Delta/2, c0.Y-c0.Delta/2
	field.x1, field.y1 = c0.X+c0.Delta/2, c0.Y+c0.Delta/2
	for _, c := range snap.Cells {
		field.delta0 = math.Max(field.delta0, c.Delta)
		field.x0 = math.Min(field.x0, c.X-c.Delta/2)
		field.y0 = math.Min(field.y0, c.Y-c.Delta/2)
		field.x1 = math.Max(field.x1, c.X+c.Delta/2)
		field.y1 = math.Max(field.y1, c.Y+c.Delta/2)
	}

	for ci, c := range snap.Cells {
		level := int(math.Round(math.Log2(field.delta0 / c.Delta)))
		if level > field.maxLevel {
			field.maxLevel = level
		}
		i := int(math.Floor((c.X - field.x0) / c.Delta))
		j := int(math.Floor((c.Y - field.y0) / c.Delta))
		field.index[cellKey{level, i, j}] = ci
	}
	return field
}

// Len returns the number of cells in the underlying snapshot.
func (field *Field) Len() int { return len(field.snap.Cells) }

// Cell returns cell ci of the underlying snapshot.
func (field *Field) Cell(ci int) snapio.Cell { return field.snap.Cells[ci] }

// value returns the volume fraction at the point (x, y). level is the
// refinement level of the querying cell and fallback its own fraction,
// which is reused when the point leaves the domain through a mirrored edge
// or lands in a gap of the index.
func (field *Field) value(x, y float64, level int, fallback float64) float64 {
	if x < field.x0 {
		// Symmetry axis: Dirichlet, no fluid at the boundary.
		return 0
	}
	if x > field.x1 || y < field.y0 || y > field.y1 {
		return fallback
	}

	// The cell holding the point is usually at the querying cell's own
	// level or a coarser one; failing both, it was refined further.
	for l := level; l >= 0; l-- {
		if ci, ok := field.lookup(x, y, l); ok {
			return field.snap.Cells[ci].F
		}
	}
	for l := level + 1; l <= field.maxLevel; l++ {
		if ci, ok := field.lookup(x, y, l); ok {
			return field.snap.Cells[ci].F
		}
	}
	return fallback
}

func (field *Field) lookup(x, y float64, level int) (int, bool) {
	delta := field.delta0 / float64(int(1)<<uint(level))
	i := int(math.Floor((x - field.x0) / delta))
	j := int(math.Floor((y - field.y0) / delta))
	ci, ok := field.index[cellKey{level, i, j}]
	return ci, ok
}

// Normal estimates the interface normal at cell ci with Youngs' finite
// differences over the 3x3 neighborhood sampled at the cell's own spacing.
// The result is normalized so |X| + |Y| = 1 and points from the reference
// phase toward the empty phase. A uniform neighborhood yields the zero
// normal, which downstream facet extraction rejects.
func (field *Field) Normal(ci int) Coord {
	c := field.snap.Cells[ci]
	level := int(math.Round(math.Log2(field.delta0 / c.Delta)))

	var s [3][3]float64
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			s[di+1][dj+1] = field.value(
				c.X+float64(di)*c.Delta, c.Y+float64(dj)*c.Delta,
				level, c.F,
			)
		}
	}

	nx := s[0][0] + 2*s[0][1] + s[0][2] - s[2][0] - 2*s[2][1] - s[2][2]
	ny := s[0][0] + 2*s[1][0] + s[2][0] - s[0][2] - 2*s[1][2] - s[2][2]
	nn := math.Abs(nx) + math.Abs(ny)
	if nn == 0 {
		return Coord{}
	}
	return Coord{nx / nn, ny / nn}
}

// FacetAt reconstructs the facet of cell ci. The second return value is
// false when the cell is not a cut cell or when the reconstruction is
// degenerate (zero normal, or the line does not cross the cell boundary in
// exactly two points). Degenerate cells are an accepted approximation, not
// an error.
func (field *Field) FacetAt(ci int) (Facet, bool) {
	c := field.snap.Cells[ci]
	if !IsInterfaceCell(c.F) {
		return Facet{}, false
	}

	n := field.Normal(ci)
	alpha := Alpha(c.F, n)
	p, m := Facets(n, alpha)
	if m != 2 {
		return Facet{}, false
	}

	return Facet{
		Cell: c,
		P0:   Coord{c.X + p[0].X*c.Delta, c.Y + p[0].Y*c.Delta},
		P1:   Coord{c.X + p[1].X*c.Delta, c.Y + p[1].Y*c.Delta},
	}, true
}

// Reconstruct returns the facets of every cut cell in grid traversal order.
// An empty result is valid output: it is what a snapshot with no resolved
// interface looks like. Reconstruction never fails.
func (field *Field) Reconstruct() []Facet {
	facets := []Facet{}
	for ci := range field.snap.Cells {
		if facet, ok := field.FacetAt(ci); ok {
			facets = append(facets, facet)
		}
	}
	return facets
}
