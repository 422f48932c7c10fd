package naming

import (
	"fmt"
	"regexp"
	"time"
)

// dateRule pairs a compiled regex with submatch positions for year, month
// and day. Rules are evaluated in order by [DateFromFilename]; first match
// that survives calendar validation wins.
type dateRule struct {
	name    string
	pattern *regexp.Regexp
}

// Ordered date-extraction rules for camera and messenger filenames
// (IMG_20240105_123456.jpg, PXL_20240105..., IMG-20240105-WA0001.jpg,
// 2024-01-05 13.37.00.jpg). Dashed ISO is tried first so "2024-01-05" is not
// misread by the compact rule.
var dateRules = []dateRule{
	{"iso-dashed", regexp.MustCompile(`(?:^|\D)(20[0-9]{2})-([0-9]{2})-([0-9]{2})(?:\D|$)`)},
	{"compact", regexp.MustCompile(`(?:^|\D)(20[0-9]{2})([0-9]{2})([0-9]{2})(?:\D|$)`)},
}

// DateFromFilename extracts a capture date embedded in a file's basename and
// returns it in ISO form. The second return is false when no rule matches or
// the digits do not form a real calendar date.
func DateFromFilename(basename string) (string, bool) {
	for _, rule := range dateRules {
		m := rule.pattern.FindStringSubmatch(basename)
		if m == nil {
			continue
		}
		iso := fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
		if t, err := time.Parse(DateLayout, iso); err == nil {
			// Reject normalized dates like 2024-02-31 → 2024-03-02.
			if t.Format(DateLayout) == iso {
				return iso, true
			}
		}
	}
	return "", false
}
