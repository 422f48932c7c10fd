// Package undo retains the most recent executed batch as a reversible
// transaction. The history is deliberately single-level: a two-state machine
// (Empty/Armed) instead of an open-ended stack, so the reversal contract
// stays simple. A new successful execution replaces any prior transaction;
// invoking undo always clears the slot, even when some reversals fail.
package undo

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/backmassage/renamer/internal/executor"
	"github.com/backmassage/renamer/internal/planner"
)

// ErrNothingToUndo is returned when Undo is invoked in the Empty state. That
// is a caller contract violation — the UI disables undo while Empty.
var ErrNothingToUndo = errors.New("no batch to undo")

// State is the undo slot's lifecycle state.
type State int

const (
	Empty State = iota // no reversible batch
	Armed              // holds the last batch's successful operations
)

// String returns the display label for a state.
func (s State) String() string {
	if s == Armed {
		return "armed"
	}
	return "empty"
}

// Manager holds at most one reversible transaction. Safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	batch uuid.UUID
	ops   []planner.Operation // succeeded ops of the last batch, verbatim
}

// NewManager returns a Manager in the Empty state.
func NewManager() *Manager {
	return &Manager{}
}

// State reports whether a batch is available for reversal.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.ops) == 0 {
		return Empty
	}
	return Armed
}

// Arm captures the successful operations of a forward report, replacing any
// prior transaction. A report with no successes leaves the slot untouched —
// there is nothing new to revert, and discarding the previous transaction
// would lose the only reversible batch.
func (m *Manager) Arm(report *executor.Report) {
	if report.Direction != executor.Forward {
		return
	}
	succeeded := report.Succeeded()
	if len(succeeded) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.batch = report.BatchID
	m.ops = succeeded
}

// Undo replays the armed transaction backwards through exec and clears the
// slot. The report has the same shape as a forward execution; a partially
// reversed batch still transitions to Empty, with the failures enumerated in
// the report. Returns ErrNothingToUndo in the Empty state and passes through
// executor.ErrBusy when a run is in flight.
func (m *Manager) Undo(ctx context.Context, exec *executor.Executor, progress executor.Progress) (*executor.Report, error) {
	m.mu.Lock()
	batch, ops := m.batch, m.ops
	m.mu.Unlock()

	if len(ops) == 0 {
		return nil, ErrNothingToUndo
	}

	report, err := exec.ExecuteReverse(ctx, ops, progress)
	if err != nil {
		// The transaction survives: nothing was attempted.
		return nil, err
	}
	report.BatchID = batch

	m.mu.Lock()
	m.batch = uuid.Nil
	m.ops = nil
	m.mu.Unlock()

	return report, nil
}
