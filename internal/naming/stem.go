package naming

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins stem segments. Fixed by the naming scheme.
const Separator = "_"

// paMatMarker is the fixed sequence segment for pa_mat mode stems.
const paMatMarker = "PA" + Separator + "MAT"

// keySep joins grouping key fields. It cannot occur in any field, so distinct
// tuples never collapse into the same key.
const keySep = "\x1f"

// Validate checks that it carries every field the mode requires and that the
// free-text fields are safe to embed in a filename. Failures exclude the
// item from planning; they never abort the batch.
func Validate(mode Mode, it Item) error {
	if it.SourcePath == "" {
		return errors.New("missing source path")
	}
	if err := checkSegment("suffix", it.Suffix); err != nil {
		return err
	}

	switch mode {
	case ModeNormal:
		if len(it.Tags) == 0 {
			return errors.New("no tags selected")
		}
		for _, tag := range it.Tags {
			if err := checkSegment("tag", tag); err != nil {
				return err
			}
		}
		if _, err := ParseDate(it.Date); err != nil {
			return err
		}
	case ModePosition:
		if strings.TrimSpace(it.Position) == "" {
			return errors.New("missing position label")
		}
		if err := checkSegment("position", it.Position); err != nil {
			return err
		}
	case ModePAMat:
		if _, err := ParseDate(it.Date); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid mode %q", mode)
	}
	return nil
}

// checkSegment rejects free-text values that would change the destination
// directory or corrupt the name.
func checkSegment(field, v string) error {
	if strings.ContainsAny(v, `/\`) {
		return fmt.Errorf("%s must not contain path separators", field)
	}
	if strings.ContainsAny(v, "\x00\n\r") {
		return fmt.Errorf("%s contains control characters", field)
	}
	return nil
}

// GroupKey returns the disambiguation key for it under mode: items sharing a
// key form one collision group. The item must have passed Validate.
//
// Keys per mode:
//
//	normal:   (project, tagcode, date, suffix)
//	position: (project, position, suffix)
//	pa_mat:   (project, date, suffix)
func GroupKey(mode Mode, it Item, project string, order TagOrder) string {
	switch mode {
	case ModePosition:
		return strings.Join([]string{project, it.Position, it.Suffix}, keySep)
	case ModePAMat:
		return strings.Join([]string{project, stemDate(it.Date), it.Suffix}, keySep)
	default:
		return strings.Join([]string{project, TagCode(it.Tags, order), stemDate(it.Date), it.Suffix}, keySep)
	}
}

// Stem builds the filename stem (no extension) for it. index is the token
// assigned by AssignIndexes; the empty string omits the segment. The item
// must have passed Validate.
func Stem(mode Mode, it Item, project, index string, order TagOrder) string {
	var parts []string
	switch mode {
	case ModePosition:
		parts = []string{project, it.Position}
	case ModePAMat:
		parts = []string{project, paMatMarker, stemDate(it.Date)}
	default:
		parts = []string{project, TagCode(it.Tags, order), stemDate(it.Date)}
	}

	if index != "" {
		parts = append(parts, index)
	}
	if it.Suffix != "" {
		parts = append(parts, it.Suffix)
	}
	return strings.Join(parts, Separator)
}

// stemDate renders an ISO item date in the compact stem form. Validate has
// already run, so a parse failure here means a programming error; the raw
// string is returned to keep the stem deterministic rather than panicking.
func stemDate(iso string) string {
	t, err := ParseDate(iso)
	if err != nil {
		return iso
	}
	return t.Format(StemDateLayout)
}
