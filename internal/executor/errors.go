package executor

import (
	"os"

	"github.com/backmassage/renamer/internal/planner"
)

// classify maps a filesystem error onto the failure taxonomy. Anything that
// is neither a missing source nor a permission problem becomes FailOther
// with the error text preserved for the report.
func classify(err error) (planner.FailReason, string) {
	switch {
	case os.IsNotExist(err):
		return planner.FailSourceMissing, ""
	case os.IsPermission(err):
		return planner.FailPermissionDenied, ""
	case os.IsExist(err):
		return planner.FailDestinationExists, ""
	default:
		return planner.FailOther, err.Error()
	}
}
