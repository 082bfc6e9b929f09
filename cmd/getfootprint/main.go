/*
	getfootprint probes the reconstructed interface of one snapshot for the

maximum elevation inside a radial window and prints a single CSV line to
stderr:

	t,y_max

Usage: getfootprint <snapshot-file> <xCutoff>

	snapshot-file  snapshot dump to restore
	xCutoff        upper bound in x for the search window (axisymmetric
	               radius); must be positive
*/
package main

import (
	"os"
	"strconv"

	"github.com/comphy-lab/vofpost/lib/error"
	"github.com/comphy-lab/vofpost/lib/footprint"
	"github.com/comphy-lab/vofpost/lib/plic"
	"github.com/comphy-lab/vofpost/lib/snapio"
)

func main() {
	if len(os.Args) != 3 {
		error.External("Expected 2 arguments.\nUsage: %s <snapshot-file> "+
			"<xCutoff>", os.Args[0])
	}

	xCutoff, err := strconv.ParseFloat(os.Args[2], 64)
	if err != nil {
		error.External("xCutoff must be a number, but '%s' is not.",
			os.Args[2])
	}
	if xCutoff <= 0 {
		error.External("xCutoff must be positive, but %g is not.", xCutoff)
	}

	snap, err := snapio.Read(os.Args[1])
	if err != nil {
		error.External("%s", err.Error())
	}

	facets := plic.NewField(snap).Reconstruct()
	yMax := footprint.MaxHeight(facets, xCutoff)
	if err := footprint.WriteSample(os.Stderr, snap.Time, yMax); err != nil {
		error.Internal("could not write the footprint sample: %s",
			err.Error())
	}
}
