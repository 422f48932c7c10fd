package naming

import (
	"sort"
	"strings"
)

// TagOrder puts a set of tag short-codes into canonical order. The same tag
// set must always produce the same sequence regardless of selection order;
// the vocabulary layer supplies an order based on declaration position, and
// AlphabeticalOrder is the fallback when no vocabulary is loaded.
type TagOrder func(codes []string) []string

// AlphabeticalOrder sorts codes case-insensitively. It is the default
// canonical ordering.
func AlphabeticalOrder(codes []string) []string {
	out := append([]string(nil), codes...)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToUpper(out[i]) < strings.ToUpper(out[j])
	})
	return out
}

// TagCode concatenates an item's tag codes in canonical order. Codes are
// upper-cased and de-duplicated before ordering; the segments are joined
// without an inner separator (tags [I, A] yield "IA" under a vocabulary that
// declares I before A).
func TagCode(tags []string, order TagOrder) string {
	if order == nil {
		order = AlphabeticalOrder
	}

	seen := make(map[string]bool, len(tags))
	codes := make([]string, 0, len(tags))
	for _, t := range tags {
		c := strings.ToUpper(strings.TrimSpace(t))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		codes = append(codes, c)
	}

	return strings.Join(order(codes), "")
}
