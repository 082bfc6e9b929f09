package footprint

/* sweep.go drives footprint extraction across a snapshot sequence and a set
of radial cutoffs. Each snapshot is read and reconstructed exactly once and
then reduced once per cutoff; only the window predicate changes between
cutoffs, never the facets. Snapshots are independent, so they are fanned out
to a bounded pool of goroutines. */

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/comphy-lab/vofpost/lib/plic"
	"github.com/comphy-lab/vofpost/lib/snapio"
)

// Sample is the footprint statistic of one snapshot: the snapshot's embedded
// timestamp and the maximum interface elevation inside the window.
type Sample struct {
	T, YMax float64
}

// Series is the time-ordered footprint history for one cutoff.
type Series struct {
	XCutoff float64
	Samples []Sample
}

// Sweep computes one Series per cutoff across the given snapshot tasks.
// Snapshots are processed by `workers` goroutines; a missing or unreadable
// snapshot is reported through skip (if non-nil) and contributes no sample
// to any series, leaving the remaining snapshots untouched. Samples follow
// task order, which the caller is expected to keep monotonic in time.
func Sweep(
	tasks []snapio.Task, cutoffs []float64, workers int,
	skip func(task snapio.Task, err error),
) []Series {
	if workers < 1 {
		workers = 1
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	type row struct {
		ok   bool
		t    float64
		yMax []float64
	}
	rows := make([]row, len(tasks))

	queue := make(chan int)
	wg := &sync.WaitGroup{}
	skipMu := &sync.Mutex{}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ti := range queue {
				snap, err := snapio.Read(tasks[ti].Path)
				if err != nil {
					if skip != nil {
						skipMu.Lock()
						skip(tasks[ti], err)
						skipMu.Unlock()
					}
					continue
				}

				facets := plic.NewField(snap).Reconstruct()
				yMax := make([]float64, len(cutoffs))
				for c := range cutoffs {
					yMax[c] = MaxHeight(facets, cutoffs[c])
				}
				rows[ti] = row{true, snap.Time, yMax}
			}
		}()
	}

	for ti := range tasks {
		queue <- ti
	}
	close(queue)
	wg.Wait()

	series := make([]Series, len(cutoffs))
	for c := range cutoffs {
		series[c] = Series{XCutoff: cutoffs[c], Samples: []Sample{}}
		for ti := range rows {
			if rows[ti].ok {
				series[c].Samples = append(series[c].Samples,
					Sample{rows[ti].t, rows[ti].yMax[c]})
			}
		}
	}
	return series
}

// CutoffLabel formats a cutoff for output filenames: four decimals for
// sub-unity windows, trailing zeros trimmed otherwise, so 0.005 becomes
// "0.0050" and 2.5 becomes "2.5".
func CutoffLabel(x float64) string {
	label := fmt.Sprintf("%.4f", x)
	if x < 1 {
		return label
	}
	return strings.TrimRight(strings.TrimRight(label, "0"), ".")
}

// WriteSeries writes a series into dir as rFootvsTime_<label>.csv with a
// time,rf header line, sorted by time, and returns the file's path.
func WriteSeries(dir string, series Series) (string, error) {
	samples := make([]Sample, len(series.Samples))
	copy(samples, series.Samples)
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].T < samples[j].T
	})

	path := filepath.Join(dir,
		fmt.Sprintf("rFootvsTime_%s.csv", CutoffLabel(series.XCutoff)))
	fp, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer fp.Close()

	w := csv.NewWriter(fp)
	if err := w.Write([]string{"time", "rf"}); err != nil {
		return "", err
	}
	for _, s := range samples {
		err := w.Write([]string{
			strconv.FormatFloat(s.T, 'g', -1, 64),
			strconv.FormatFloat(s.YMax, 'g', -1, 64),
		})
		if err != nil {
			return "", err
		}
	}
	w.Flush()
	return path, w.Error()
}
