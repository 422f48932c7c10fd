package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// Project numbers are one letter followed by 3-6 digits (e.g. "C123456",
// "C999"). Lowercase input is accepted and normalized.
var reProject = regexp.MustCompile(`^[A-Z][0-9]{3,6}$`)

// NormalizeProject trims and upper-cases raw and validates it against the
// project number pattern. The returned value is safe to embed in stems.
func NormalizeProject(raw string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(raw))
	if !reProject.MatchString(p) {
		return "", fmt.Errorf("invalid project number %q (expected letter + 3-6 digits, e.g. C123456)", raw)
	}
	return p, nil
}

// ValidProject reports whether raw normalizes to a valid project number.
func ValidProject(raw string) bool {
	_, err := NormalizeProject(raw)
	return err == nil
}
