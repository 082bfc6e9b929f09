package footprint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/comphy-lab/vofpost/lib/eq"
	"github.com/comphy-lab/vofpost/lib/snapio"
)

// poolSnapshot builds a 3x3 unit-cell snapshot holding a horizontal
// interface: cells below yInterface full, the row containing it cut, cells
// above empty.
func poolSnapshot(time, yInterface float64) *snapio.Snapshot {
	snap := &snapio.Snapshot{Time: time}
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			y := float64(j) + 0.5
			f := yInterface - (y - 0.5)
			if f < 0 {
				f = 0
			} else if f > 1 {
				f = 1
			}
			snap.Cells = append(snap.Cells, snapio.Cell{
				X: float64(i) + 0.5, Y: y, Delta: 1.0, F: f,
			})
		}
	}
	return snap
}

func TestSweep(t *testing.T) {
	caseDir := t.TempDir()
	snapDir := filepath.Join(caseDir, snapio.SnapshotSubdir)
	if err := os.MkdirAll(snapDir, 0755); err != nil {
		t.Fatalf("could not create snapshot dir: %s", err.Error())
	}

	// Three expected snapshots: the pool rises between the first two, and
	// the third was never written.
	tasks := snapio.Sequence(caseDir, 3, 0.01)
	err := snapio.Write(tasks[0].Path, poolSnapshot(0.0, 1.5))
	if err != nil {
		t.Fatalf("could not write snapshot: %s", err.Error())
	}
	err = snapio.Write(tasks[1].Path, poolSnapshot(0.01, 2.5))
	if err != nil {
		t.Fatalf("could not write snapshot: %s", err.Error())
	}

	skipped := []snapio.Task{}
	series := Sweep(tasks, []float64{1.0, 10.0}, 2,
		func(task snapio.Task, err error) {
			skipped = append(skipped, task)
			ue, ok := err.(*snapio.UnreadableError)
			if !ok || !ue.NotExist {
				t.Errorf("expected a missing-file error for %s, got: %s",
					task.Path, err.Error())
			}
		})

	if len(skipped) != 1 || skipped[0].Index != 2 {
		t.Fatalf("expected exactly the third task to be skipped, got %v",
			skipped)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}

	// Both windows contain interface cells, so both series see the pool
	// surface at the cut rows' elevations.
	for c, cutoff := range []float64{1.0, 10.0} {
		if series[c].XCutoff != cutoff {
			t.Errorf("series %d has cutoff %g, not %g",
				c, series[c].XCutoff, cutoff)
		}
		if len(series[c].Samples) != 2 {
			t.Fatalf("series %d has %d samples, not 2",
				c, len(series[c].Samples))
		}

		ts := []float64{series[c].Samples[0].T, series[c].Samples[1].T}
		ys := []float64{
			series[c].Samples[0].YMax, series[c].Samples[1].YMax,
		}
		if !eq.Float64sEps(ts, []float64{0.0, 0.01}, 1e-12) {
			t.Errorf("series %d has times %v", c, ts)
		}
		if !eq.Float64sEps(ys, []float64{1.5, 2.5}, 1e-12) {
			t.Errorf("series %d has heights %v, want [1.5 2.5]", c, ys)
		}
	}
}

func TestCutoffLabel(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{0.001, "0.0010"},
		{0.0025, "0.0025"},
		{0.005, "0.0050"},
		{0.01, "0.0100"},
		{0.05, "0.0500"},
		{1.0, "1"},
		{2.5, "2.5"},
	}

	for _, test := range tests {
		if got := CutoffLabel(test.x); got != test.want {
			t.Errorf("CutoffLabel(%g) = %q, want %q", test.x, got, test.want)
		}
	}
}

func TestWriteSeries(t *testing.T) {
	dir := t.TempDir()

	// Samples deliberately out of order; the file must come out sorted.
	series := Series{
		XCutoff: 0.005,
		Samples: []Sample{{0.02, 0.25}, {0.0, 0.0}, {0.01, 0.125}},
	}

	path, err := WriteSeries(dir, series)
	if err != nil {
		t.Fatalf("WriteSeries failed: %s", err.Error())
	}
	if filepath.Base(path) != "rFootvsTime_0.0050.csv" {
		t.Errorf("WriteSeries chose the file name %s", filepath.Base(path))
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read the series back: %s", err.Error())
	}
	want := "time,rf\n0,0\n0.01,0.125\n0.02,0.25\n"
	if string(b) != want {
		t.Errorf("WriteSeries wrote %q, want %q", string(b), want)
	}
}
