/*
	footprintsweep runs footprint extraction over a whole case: every snapshot

in the case's intermediate/ directory, for one or more radial cutoffs. Each
cutoff produces a rFootvsTime_<cutoff>.csv time series in the case directory,
ready for plotting. Snapshots are reconstructed once each and processed in
parallel; missing or unreadable snapshots are skipped with a notice.

Usage: footprintsweep -case <results-dir> [-cutoffs 1e-3,5e-3] [-n 4000]

	[-tsnap 0.01] [-workers 4]
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/comphy-lab/vofpost/lib/footprint"
	"github.com/comphy-lab/vofpost/lib/snapio"
	"github.com/comphy-lab/vofpost/lib/thread"
)

var log *zap.SugaredLogger

func main() {
	caseDir := flag.String("case", "",
		"path to the results folder housing intermediate/")
	cutoffList := flag.String("cutoffs", "1e-3,2.5e-3,5e-3,1e-2,5e-2",
		"comma-separated radial windows for footprint detection")
	n := flag.Int("n", 4000,
		"number of snapshot files to check inside intermediate/")
	tsnap := flag.Float64("tsnap", 0.01,
		"physical time interval between snapshots")
	workers := flag.Int("workers", 4,
		"number of worker goroutines (-1 for one per core)")
	debug := flag.Bool("debug", false, "turn on debugging output")
	flag.Parse()

	var zapLogger *zap.Logger
	var err error
	if *debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Printf("can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	log = zapLogger.Sugar()

	cutoffs, err := parseCutoffs(*cutoffList)
	switch {
	case err != nil:
		fail("%s", err.Error())
	case *caseDir == "":
		fail("the -case flag is required; point it at a results/ folder")
	case *n < 1:
		fail("-n must be at least 1, but is %d", *n)
	case *tsnap <= 0:
		fail("-tsnap must be positive, but is %g", *tsnap)
	}
	if info, err := os.Stat(*caseDir); err != nil || !info.IsDir() {
		fail("the case directory %s does not exist", *caseDir)
	}

	nWorkers := thread.Set(*workers)

	tasks := snapio.Sequence(*caseDir, *n, *tsnap)
	log.Infow("starting footprint sweep",
		"case", *caseDir, "snapshots", len(tasks), "cutoffs", cutoffs,
		"workers", nWorkers)

	series := footprint.Sweep(tasks, cutoffs, nWorkers,
		func(task snapio.Task, err error) {
			if ue, ok := err.(*snapio.UnreadableError); ok && ue.NotExist {
				log.Debugw("skipping missing snapshot", "path", task.Path)
			} else {
				log.Warnw("skipping snapshot", "path", task.Path,
					"error", err.Error())
			}
		})

	for _, s := range series {
		path, err := footprint.WriteSeries(*caseDir, s)
		if err != nil {
			fail("could not write the series for cutoff %g: %s",
				s.XCutoff, err.Error())
		}
		log.Infow("wrote series", "cutoff", s.XCutoff,
			"rows", len(s.Samples), "path", path)
	}
}

func parseCutoffs(list string) ([]float64, error) {
	fields := strings.Split(list, ",")
	cutoffs := make([]float64, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("the cutoff '%s' is not a number", field)
		}
		if x <= 0 {
			return nil, fmt.Errorf("cutoffs must be positive, but %g is not",
				x)
		}
		cutoffs = append(cutoffs, x)
	}
	if len(cutoffs) == 0 {
		return nil, fmt.Errorf("at least one cutoff is required")
	}
	return cutoffs, nil
}

func fail(format string, a ...interface{}) {
	log.Errorf(format, a...)
	os.Exit(1)
}
