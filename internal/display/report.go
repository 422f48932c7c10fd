package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/backmassage/renamer/internal/executor"
	"github.com/backmassage/renamer/internal/planner"
)

// RenderReport writes the per-operation outcome of an execution or undo,
// then the one-line summary. Failures always carry their reason; nothing is
// silently dropped.
func RenderReport(w io.Writer, report *executor.Report) {
	for _, op := range report.Ops {
		switch op.Status {
		case planner.StatusFailed:
			line := op.Reason.String()
			if op.Detail != "" {
				line += ": " + op.Detail
			}
			fmt.Fprintf(w, "  [%s] %s -> %s (%s)\n", op.Status, op.OriginalName, filepath.Base(op.Destination), line)
		default:
			fmt.Fprintf(w, "  [%s] %s -> %s\n", op.Status, op.OriginalName, filepath.Base(op.Destination))
		}
	}

	label := "Renamed"
	if report.Direction == executor.Reverse {
		label = "Undo"
	}
	if report.Cancelled {
		label += " (interrupted)"
	}
	fmt.Fprintf(w, "%s: %s in %.1fs\n", label, report.Summary(), report.Elapsed.Seconds())
}
