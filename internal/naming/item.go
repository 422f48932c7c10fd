package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Mode selects the naming strategy and grouping key for a planning pass.
type Mode string

const (
	ModeNormal   Mode = "normal"   // project + tag code + date (default).
	ModePosition Mode = "position" // project + position label, no date.
	ModePAMat    Mode = "pa_mat"   // project + PA_MAT marker + date.
)

// ParseMode validates a mode string and returns the typed value.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeNormal:
		return ModeNormal, nil
	case ModePosition:
		return ModePosition, nil
	case ModePAMat:
		return ModePAMat, nil
	default:
		return "", fmt.Errorf("invalid mode %q (use 'normal', 'position' or 'pa_mat')", s)
	}
}

// Date formats. Items carry dates as editable ISO strings; stems render the
// compact form.
const (
	DateLayout     = "2006-01-02"
	StemDateLayout = "20060102"
)

// Item is one file queued for renaming, with all attributes resolved by the
// caller (tag selection, date, suffix). SourcePath must be absolute.
type Item struct {
	SourcePath string
	Tags       []string // tag short-codes, normal mode
	Date       string   // ISO date (DateLayout), normal and pa_mat modes
	Suffix     string   // optional free-text suffix
	Position   string   // position label, position mode

	SizeBytes int64 // for batch statistics; not part of any name
}

// OriginalName returns the basename of the source path, for display and
// report labeling.
func (it Item) OriginalName() string {
	return filepath.Base(it.SourcePath)
}

// Ext returns the source extension lower-cased, including the leading dot.
// Destinations always carry the lower-cased extension so repeated runs
// produce consistent names on case-insensitive filesystems.
func (it Item) Ext() string {
	return strings.ToLower(filepath.Ext(it.SourcePath))
}

// ParseDate parses an item date string. The empty string is rejected; callers
// decide the fallback (the pipeline fills dates in before planning).
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t, nil
}
