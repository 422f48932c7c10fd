package executor

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/backmassage/renamer/internal/planner"
)

// ErrBusy is returned when an execution or undo is requested while another
// run is still in flight. Overlapping runs are a caller contract violation,
// not a per-operation failure.
var ErrBusy = errors.New("an execution is already in flight")

// Progress is called after each attempted operation with the number of
// operations handled so far and the total. May be nil.
type Progress func(done, total int)

// Executor owns all filesystem-mutating calls. The zero value is not usable;
// construct with New.
type Executor struct {
	log      zerolog.Logger
	inFlight atomic.Bool
}

// New returns an Executor logging through log.
func New(log zerolog.Logger) *Executor {
	return &Executor{log: log}
}

// Execute applies plan in order and returns the report. The plan itself is
// not mutated; the report owns its operation copies. Blocks until the batch
// finishes or ctx is cancelled between operations.
func (e *Executor) Execute(ctx context.Context, plan *planner.Plan, progress Progress) (*Report, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.inFlight.Store(false)

	report := &Report{
		BatchID:   plan.ID,
		Direction: Forward,
		Ops:       append([]planner.Operation(nil), plan.Ops...),
		Started:   time.Now(),
	}
	e.run(ctx, report, progress)
	return report, nil
}

// ExecuteReverse replays previously succeeded operations backwards,
// destination → source, in reverse order (last renamed, first restored).
// Used only by the undo manager.
func (e *Executor) ExecuteReverse(ctx context.Context, ops []planner.Operation, progress Progress) (*Report, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer e.inFlight.Store(false)

	report := &Report{Direction: Reverse, Started: time.Now()}
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		report.Ops = append(report.Ops, planner.Operation{
			Source:       op.Destination,
			Destination:  op.Source,
			OriginalName: op.OriginalName,
			NoOp:         op.NoOp,
		})
	}
	e.run(ctx, report, progress)
	return report, nil
}

// run executes report.Ops sequentially, recording statuses in place.
func (e *Executor) run(ctx context.Context, report *Report, progress Progress) {
	defer func() { report.Elapsed = time.Since(report.Started) }()

	total := len(report.Ops)
	for i := range report.Ops {
		if ctx.Err() != nil {
			// Remaining operations stay Pending; nothing completed is
			// rolled back.
			report.Cancelled = true
			e.log.Warn().Int("remaining", total-i).Msg("execution cancelled")
			return
		}

		op := &report.Ops[i]
		e.apply(op)

		switch op.Status {
		case planner.StatusFailed:
			e.log.Error().
				Str("source", op.Source).
				Str("destination", op.Destination).
				Str("reason", op.Reason.String()).
				Str("detail", op.Detail).
				Msg("rename failed")
		case planner.StatusSucceeded:
			e.log.Debug().
				Str("source", op.Source).
				Str("destination", op.Destination).
				Msg("renamed")
		}

		if progress != nil {
			progress(i+1, total)
		}
	}
}

// apply performs one move and records the outcome on op.
func (e *Executor) apply(op *planner.Operation) {
	if op.NoOp {
		op.Status = planner.StatusSkipped
		return
	}

	src, err := os.Lstat(op.Source)
	if err != nil {
		if os.IsNotExist(err) {
			op.Status = planner.StatusFailed
			op.Reason = planner.FailSourceMissing
			return
		}
		fail(op, err)
		return
	}

	// An occupied destination is refused rather than overwritten — earlier
	// operations in the plan vacate names before later ones reuse them, so by
	// the time we get here it is a genuine conflict. The one exception is the
	// source itself: on case-insensitive filesystems a case-only rename (the
	// extension lower-casing) resolves the destination to the same directory
	// entry, which os.SameFile tells apart from an unrelated file.
	if dst, err := os.Lstat(op.Destination); err == nil && !os.SameFile(src, dst) {
		op.Status = planner.StatusFailed
		op.Reason = planner.FailDestinationExists
		return
	}

	if err := os.Rename(op.Source, op.Destination); err != nil {
		fail(op, err)
		return
	}
	op.Status = planner.StatusSucceeded
}

// fail records a failed operation with the classified reason.
func fail(op *planner.Operation, err error) {
	op.Status = planner.StatusFailed
	op.Reason, op.Detail = classify(err)
}
