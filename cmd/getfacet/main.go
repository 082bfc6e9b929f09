/*
	getfacet extracts the interface facets of one snapshot using piecewise

linear interface reconstruction and prints them as gnuplot-compatible line
segments to stderr:

	x1 y1
	x2 y2
	[blank line]
	...

Usage: getfacet <snapshot-file>
*/
package main

import (
	"os"

	"github.com/comphy-lab/vofpost/lib/error"
	"github.com/comphy-lab/vofpost/lib/footprint"
	"github.com/comphy-lab/vofpost/lib/plic"
	"github.com/comphy-lab/vofpost/lib/snapio"
)

func main() {
	if len(os.Args) != 2 {
		error.External("Expected 1 argument.\nUsage: %s <snapshot-file>",
			os.Args[0])
	}

	snap, err := snapio.Read(os.Args[1])
	if err != nil {
		error.External("%s", err.Error())
	}

	facets := plic.NewField(snap).Reconstruct()
	if err := footprint.WriteFacets(os.Stderr, facets); err != nil {
		error.Internal("could not write facets: %s", err.Error())
	}
}
