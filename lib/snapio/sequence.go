package snapio

import (
	"fmt"
	"path/filepath"
)

// SnapshotSubdir is the directory inside a case's results folder where the
// solver drops its evenly spaced restart snapshots.
const SnapshotSubdir = "intermediate"

// Task identifies one snapshot in an evenly spaced output sequence. Time is
// the timestamp implied by the sequence spacing, which the snapshot's
// embedded timestamp is expected to match.
type Task struct {
	Index int
	Time  float64
	Path  string
}

// Sequence returns the tasks for the first n snapshots of a case written
// every tsnap time units, in increasing time order. The solver names its
// files snapshot-<t> with four decimals, so t = 0.13 becomes
// intermediate/snapshot-0.1300. Files are not checked for existence here;
// sweep drivers skip missing ones as they go.
func Sequence(caseDir string, n int, tsnap float64) []Task {
	tasks := make([]Task, n)
	for i := 0; i < n; i++ {
		t := tsnap * float64(i)
		tasks[i] = Task{
			Index: i,
			Time:  t,
			Path: filepath.Join(caseDir, SnapshotSubdir,
				fmt.Sprintf("snapshot-%.4f", t)),
		}
	}
	return tasks
}
