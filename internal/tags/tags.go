// Package tags loads the tag vocabulary: short-codes with per-language
// labels, in a declaration order that defines the canonical tag-code
// ordering used in generated names. The vocabulary file is plain YAML so
// sites can maintain their own classification scheme.
package tags

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/renamer/internal/naming"
)

// Entry is one vocabulary tag. Label maps language codes to display text
// ("en", "de", ...).
type Entry struct {
	Code  string            `yaml:"code"`
	Label map[string]string `yaml:"label"`
}

// vocabularyFile is the on-disk document shape.
type vocabularyFile struct {
	Tags []Entry `yaml:"tags"`
}

// Vocabulary is an ordered tag catalogue. The zero value is an empty
// vocabulary whose Order falls back to alphabetical.
type Vocabulary struct {
	entries []Entry
	rank    map[string]int // upper-cased code → declaration position
}

// Load reads a YAML vocabulary from path. Codes are normalized to upper
// case; duplicate codes are an error because they would make the canonical
// order ambiguous.
func Load(path string) (*Vocabulary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tag vocabulary: %w", err)
	}

	var doc vocabularyFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse tag vocabulary %s: %w", path, err)
	}

	v := &Vocabulary{rank: make(map[string]int, len(doc.Tags))}
	for _, e := range doc.Tags {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		if code == "" {
			return nil, fmt.Errorf("tag vocabulary %s: entry with empty code", path)
		}
		if _, dup := v.rank[code]; dup {
			return nil, fmt.Errorf("tag vocabulary %s: duplicate code %q", path, code)
		}
		e.Code = code
		v.rank[code] = len(v.entries)
		v.entries = append(v.entries, e)
	}
	return v, nil
}

// Len returns the number of vocabulary entries.
func (v *Vocabulary) Len() int { return len(v.entries) }

// Entries returns the vocabulary in declaration order.
func (v *Vocabulary) Entries() []Entry {
	return append([]Entry(nil), v.entries...)
}

// Contains reports whether code is declared in the vocabulary.
func (v *Vocabulary) Contains(code string) bool {
	_, ok := v.rank[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Label returns the display text for code in lang, falling back to "en" and
// then to the code itself.
func (v *Vocabulary) Label(code, lang string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	i, ok := v.rank[code]
	if !ok {
		return code
	}
	labels := v.entries[i].Label
	if s, ok := labels[lang]; ok && s != "" {
		return s
	}
	if s, ok := labels["en"]; ok && s != "" {
		return s
	}
	return code
}

// Order returns the canonical tag ordering backed by this vocabulary:
// declared codes sort by declaration position, unknown codes come after
// them alphabetically. Deterministic for any input permutation.
func (v *Vocabulary) Order() naming.TagOrder {
	return func(codes []string) []string {
		out := append([]string(nil), codes...)
		sort.SliceStable(out, func(i, j int) bool {
			ri, iKnown := v.rank[out[i]]
			rj, jKnown := v.rank[out[j]]
			switch {
			case iKnown && jKnown:
				return ri < rj
			case iKnown:
				return true
			case jKnown:
				return false
			default:
				return out[i] < out[j]
			}
		})
		return out
	}
}
