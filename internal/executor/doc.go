// Package executor applies rename plans to the filesystem and produces
// per-operation reports.
//
// Operations run strictly in plan order because later operations may reuse a
// name an earlier one vacated. A single failure never aborts the batch:
// every remaining operation is still attempted, and the report records
// exactly what happened. Reverse execution (destination → source) drives
// undo with the same per-operation failure handling.
//
// An Executor rejects overlapping runs: Execute and ExecuteReverse return
// ErrBusy while another run is in flight. Cancellation is cooperative and
// checked between operations; untouched operations stay Pending in the
// report.
package executor
