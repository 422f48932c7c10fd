// Package pipeline orchestrates a batch: discover files, assemble items
// from config and per-file assignments, build the plan, preview it, execute,
// and summarize. Execution and undo run on the caller's goroutine — the CLI
// drives them directly, a GUI would hand them to a worker.
package pipeline
