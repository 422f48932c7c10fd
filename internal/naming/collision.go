package naming

import (
	"fmt"
	"strconv"
)

// AssignIndexes resolves duplicate grouping keys into stable index tokens.
// keys holds one grouping key per item in batch order; the result holds one
// token per item, aligned by position.
//
// Items in a singleton group get the empty token (no index segment). Larger
// groups are numbered from 1 in input order, zero-padded to the width needed
// for the group size ("1".."9", then "01".."99", and so on). Because input
// order is preserved and never re-sorted, re-planning an unchanged batch
// yields identical tokens.
func AssignIndexes(keys []string) []string {
	sizes := make(map[string]int, len(keys))
	for _, k := range keys {
		sizes[k]++
	}

	next := make(map[string]int, len(sizes))
	tokens := make([]string, len(keys))
	for i, k := range keys {
		if sizes[k] < 2 {
			continue
		}
		next[k]++
		tokens[i] = fmt.Sprintf("%0*d", indexWidth(sizes[k]), next[k])
	}
	return tokens
}

// indexWidth returns the zero-padding width for a group of n items.
func indexWidth(n int) int {
	return len(strconv.Itoa(n))
}
