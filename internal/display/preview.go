package display

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/backmassage/renamer/internal/planner"
)

// RenderPreview writes the original → proposed table for a plan, followed by
// the excluded items with their reasons. No filesystem state is consulted;
// this is exactly what execution would attempt.
func RenderPreview(w io.Writer, plan *planner.Plan, excluded []planner.Excluded) {
	if plan.Empty() && len(excluded) == 0 {
		fmt.Fprintln(w, "Nothing to rename.")
		return
	}

	if !plan.Empty() {
		width := 0
		for _, op := range plan.Ops {
			if len(op.OriginalName) > width {
				width = len(op.OriginalName)
			}
		}
		fmt.Fprintf(w, "Plan %s (%s, %s mode): %d file(s)\n", plan.ID, plan.Project, plan.Mode, len(plan.Ops))
		for _, op := range plan.Ops {
			arrow := "->"
			if op.NoOp {
				arrow = "==" // already named correctly
			}
			fmt.Fprintf(w, "  %-*s %s %s\n", width, op.OriginalName, arrow, filepath.Base(op.Destination))
		}
	}

	if len(excluded) > 0 {
		fmt.Fprintf(w, "Excluded: %d file(s)\n", len(excluded))
		for _, ex := range excluded {
			line := ex.Reason.String()
			if ex.Detail != "" {
				line += ": " + ex.Detail
			}
			fmt.Fprintf(w, "  %s (%s)\n", ex.Item.OriginalName(), line)
		}
	}
}
