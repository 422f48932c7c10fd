package planner

import (
	"github.com/google/uuid"

	"github.com/backmassage/renamer/internal/naming"
)

// Status is the execution state of a single rename operation.
type Status int

const (
	StatusPending Status = iota
	StatusSucceeded
	StatusFailed
	StatusSkipped // recognized no-op (destination equals source)
)

// String returns the display label for a status.
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "ok"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "pending"
	}
}

// FailReason classifies why an operation failed at execution time.
type FailReason int

const (
	FailNone FailReason = iota
	FailSourceMissing
	FailDestinationExists
	FailPermissionDenied
	FailOther
)

// String returns the display label for a failure reason.
func (r FailReason) String() string {
	switch r {
	case FailSourceMissing:
		return "source missing"
	case FailDestinationExists:
		return "destination exists"
	case FailPermissionDenied:
		return "permission denied"
	case FailOther:
		return "filesystem error"
	default:
		return ""
	}
}

// Operation is one planned rename: source → destination plus execution
// state. NoOp marks operations whose destination equals the source exactly;
// the executor skips them without counting a failure.
type Operation struct {
	Source       string
	Destination  string
	OriginalName string // basename of Source, for reports
	NoOp         bool

	Status Status
	Reason FailReason
	Detail string // extra context for FailOther
}

// Plan is the ordered set of rename operations for one batch. Destinations
// are pairwise unique under case-insensitive comparison; the planner excludes
// any item that would break that invariant.
type Plan struct {
	ID      uuid.UUID
	Project string
	Mode    naming.Mode
	Ops     []Operation
}

// Empty reports whether the plan contains no operations.
func (p *Plan) Empty() bool { return len(p.Ops) == 0 }

// ExclusionReason classifies why an item was left out of a plan.
type ExclusionReason int

const (
	ExcludeInvalidProject ExclusionReason = iota
	ExcludeValidation
	ExcludeDuplicateDestination
)

// String returns the display label for an exclusion reason.
func (r ExclusionReason) String() string {
	switch r {
	case ExcludeInvalidProject:
		return "invalid project number"
	case ExcludeDuplicateDestination:
		return "duplicate destination"
	default:
		return "validation failed"
	}
}

// Excluded pairs an item that did not make it into the plan with a
// human-presentable reason.
type Excluded struct {
	Item   naming.Item
	Reason ExclusionReason
	Detail string
}
