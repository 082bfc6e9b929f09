/*
package plic reconstructs the two-phase interface stored in a volume
fraction field as one straight segment per cut cell (piecewise linear
interface calculus). The geometry routines in this file work in the cut
cell's own coordinates, a unit square centered on the origin; Field in
field.go lifts them onto a snapshot's grid.
*/
package plic

import (
	"math"
)

// InterfaceEps is the classification tolerance: a cell is a cut cell iff
// InterfaceEps < f < 1 - InterfaceEps. Values at exactly 0 or 1 polluted by
// round-off noise must not count as interface cells.
const InterfaceEps = 1e-6

// Coord is a point or vector in the 2-D axisymmetric cross-section.
type Coord struct {
	X, Y float64
}

// IsInterfaceCell returns true if a cell with volume fraction f contains a
// piece of the interface.
func IsInterfaceCell(f float64) bool {
	return f > InterfaceEps && f < 1-InterfaceEps
}

// Alpha returns the intercept alpha of the line n.X*x + n.Y*y = alpha that
// truncates the centered unit square to an area of c on the n.r <= alpha
// side. The normal must be normalized so |n.X| + |n.Y| = 1; a zero normal
// returns 0 (the caller discards such cells when the facet intersection
// fails). The solution is closed form, so it is deterministic and costs no
// iteration.
func Alpha(c float64, n Coord) float64 {
	n1, n2 := math.Abs(n.X), math.Abs(n.Y)
	if n1 > n2 {
		n1, n2 = n2, n1
	}
	if n2 == 0 {
		return 0
	}

	if c < 0 {
		c = 0
	} else if c > 1 {
		c = 1
	}

	var alpha float64
	v1 := n1 / 2
	switch {
	case c <= v1/n2:
		// Triangular truncation at the low corner.
		alpha = math.Sqrt(2 * c * n1 * n2)
	case c <= 1-v1/n2:
		// Quadrilateral truncation; alpha is linear in c.
		alpha = c*n2 + v1
	default:
		// Triangular truncation at the high corner.
		alpha = n1 + n2 - math.Sqrt(2*(1-c)*n1*n2)
	}

	if n.X < 0 {
		alpha += n.X
	}
	if n.Y < 0 {
		alpha += n.Y
	}
	return alpha - (n.X+n.Y)/2
}

// Facets intersects the line n.X*x + n.Y*y = alpha with the boundary of the
// centered unit square and returns the intersection points found and their
// count. At most two points are collected, visiting the edges in a fixed
// order (x = -1/2, y = -1/2, x = +1/2, y = +1/2), so when the line grazes a
// corner the first-found pair wins. Anything other than m == 2 means the
// cell has no usable facet.
func Facets(n Coord, alpha float64) (p [2]Coord, m int) {
	for s := -0.5; s <= 0.5; s += 1.0 {
		if n.Y != 0 && m < 2 {
			a := (alpha - s*n.X) / n.Y
			if a >= -0.5 && a <= 0.5 {
				p[m] = Coord{s, a}
				m++
			}
		}
		if n.X != 0 && m < 2 {
			a := (alpha - s*n.Y) / n.X
			if a >= -0.5 && a <= 0.5 {
				p[m] = Coord{a, s}
				m++
			}
		}
	}
	return p, m
}
