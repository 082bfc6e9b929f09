/*
package footprint derives scalar statistics and plot-ready output from
reconstructed interface facets. The footprint height of a snapshot is the
maximum axial elevation of the interface among cut cells inside a bounded
radial window, a scalar proxy for how far the contact line has spread.
*/
package footprint

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"

	"github.com/comphy-lab/vofpost/lib/plic"
)

// MaxHeight returns the maximum interface elevation among facets whose
// owning cell center lies at x < xCutoff. The elevation of one facet is the
// midpoint of its two endpoint y coordinates, not the cell center, since the
// crossing point sits up to half a cell width away from the center. When no
// facet qualifies the result is 0 by convention: no footprint observed below
// this cutoff is a legitimate physical state at early or late times, not an
// error.
func MaxHeight(facets []plic.Facet, xCutoff float64) float64 {
	heights := []float64{}
	for _, facet := range facets {
		if facet.Cell.X >= xCutoff {
			continue
		}
		heights = append(heights, (facet.P0.Y+facet.P1.Y)/2)
	}
	if len(heights) == 0 {
		return 0
	}
	return floats.Max(heights)
}

// WriteFacets writes facets as gnuplot-style segments: the two endpoints as
// whitespace-separated coordinate lines followed by a blank line. This is a
// pass-through formatter; no statistics are computed.
func WriteFacets(w io.Writer, facets []plic.Facet) error {
	for _, facet := range facets {
		_, err := fmt.Fprintf(w, "%g %g\n%g %g\n\n",
			facet.P0.X, facet.P0.Y, facet.P1.X, facet.P1.Y)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSample writes the single CSV line of footprint mode, "t,y_max".
func WriteSample(w io.Writer, t, yMax float64) error {
	_, err := fmt.Fprintf(w, "%g,%g\n", t, yMax)
	return err
}
