package executor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/renamer/internal/planner"
)

// Direction distinguishes forward execution from undo replay.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

// String returns the display label for a direction.
func (d Direction) String() string {
	if d == Reverse {
		return "undo"
	}
	return "rename"
}

// Report is a plan after execution: the same operations with final statuses,
// plus aggregate counts. Undo produces a Report of the same shape so callers
// reuse one presentation path.
type Report struct {
	BatchID   uuid.UUID
	Direction Direction
	Ops       []planner.Operation
	Started   time.Time
	Elapsed   time.Duration
	Cancelled bool
}

// Counts holds the aggregate outcome of a report.
type Counts struct {
	Succeeded int
	Failed    int
	Skipped   int
	Pending   int
}

// Counts tallies operation statuses.
func (r *Report) Counts() Counts {
	var c Counts
	for _, op := range r.Ops {
		switch op.Status {
		case planner.StatusSucceeded:
			c.Succeeded++
		case planner.StatusFailed:
			c.Failed++
		case planner.StatusSkipped:
			c.Skipped++
		default:
			c.Pending++
		}
	}
	return c
}

// Succeeded returns the operations that completed, in execution order. This
// is the set the undo manager captures.
func (r *Report) Succeeded() []planner.Operation {
	var out []planner.Operation
	for _, op := range r.Ops {
		if op.Status == planner.StatusSucceeded {
			out = append(out, op)
		}
	}
	return out
}

// Summary returns a one-line outcome, e.g. "3 renamed, 1 failed, 1 skipped".
func (r *Report) Summary() string {
	c := r.Counts()
	verb := "renamed"
	if r.Direction == Reverse {
		verb = "restored"
	}
	s := fmt.Sprintf("%d %s, %d failed, %d skipped", c.Succeeded, verb, c.Failed, c.Skipped)
	if c.Pending > 0 {
		s += fmt.Sprintf(", %d not attempted", c.Pending)
	}
	return s
}
