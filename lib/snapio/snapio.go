/*
package snapio contains functions for reading and writing vofpost snapshot
files. A snapshot is the persisted state of one instant of an axisymmetric
two-phase simulation: the (possibly adaptively refined) grid topology, the
volume fraction field, and optionally the velocity field. snapio only copies
values in and out; it never interprets the fields.
*/
package snapio

import (
	"fmt"
)

// Cell is one finite-volume cell of the snapshot grid. X and Y are the cell
// center coordinates (radial and axial, respectively, in the axisymmetric
// convention), Delta is the cell width (cells are square, but Delta varies
// across refinement levels), and F is the volume fraction of the reference
// phase, 0 <= F <= 1.
type Cell struct {
	X, Y, Delta, F float64
}

// Snapshot is the in-memory form of one persisted simulation state. Cells
// are immutable once read. U and V are the radial and axial velocity
// components; they either have the same length as Cells or length zero when
// the snapshot was written without velocity.
type Snapshot struct {
	Time  float64
	Cells []Cell
	U, V  []float64
}

// HasVelocity returns true if the snapshot stores a velocity field.
func (snap *Snapshot) HasVelocity() bool {
	return len(snap.U) == len(snap.Cells) && len(snap.Cells) > 0
}

// UnreadableError is returned when a file does not resolve to a valid
// snapshot: it doesn't exist, its header is malformed, its data block is
// truncated, or its format version is unknown. The caller gets no partial
// snapshot alongside it.
type UnreadableError struct {
	Path   string
	Reason string
	// NotExist is true when the file is simply absent, which sweep drivers
	// treat more leniently than a corrupted one.
	NotExist bool
}

func (err *UnreadableError) Error() string {
	return fmt.Sprintf("the snapshot file %s cannot be read: %s",
		err.Path, err.Reason)
}

// unreadable builds an *UnreadableError with a formatted reason.
func unreadable(path, format string, a ...interface{}) *UnreadableError {
	return &UnreadableError{Path: path, Reason: fmt.Sprintf(format, a...)}
}
