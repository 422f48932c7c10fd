package planner

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/backmassage/renamer/internal/naming"
)

// BuildPlan produces the rename plan for one batch. Items are processed in
// input order, which also fixes disambiguation indices, so planning the same
// ordered batch twice yields an identical plan (modulo the generated ID).
//
// Flow:
//  1. Validate the project number once; a bad project excludes every item.
//  2. Validate each item for the active mode (bad date, missing position,
//     empty tag set, unsafe suffix); failures go to excluded.
//  3. Resolve grouping keys into index tokens and assemble destinations in
//     each source's own directory.
//  4. Drop every operation whose destination collides case-insensitively
//     with another destination in the plan — all offenders are excluded, none
//     silently wins.
func BuildPlan(items []naming.Item, project string, mode naming.Mode, order naming.TagOrder) (*Plan, []Excluded) {
	plan := &Plan{ID: uuid.New(), Mode: mode}
	var excluded []Excluded

	proj, err := naming.NormalizeProject(project)
	if err != nil {
		for _, it := range items {
			excluded = append(excluded, Excluded{Item: it, Reason: ExcludeInvalidProject, Detail: err.Error()})
		}
		return plan, excluded
	}
	plan.Project = proj

	// Per-item validation. Valid items keep their batch order.
	valid := make([]naming.Item, 0, len(items))
	keys := make([]string, 0, len(items))
	for _, it := range items {
		if err := naming.Validate(mode, it); err != nil {
			excluded = append(excluded, Excluded{Item: it, Reason: ExcludeValidation, Detail: err.Error()})
			continue
		}
		valid = append(valid, it)
		keys = append(keys, naming.GroupKey(mode, it, proj, order))
	}

	tokens := naming.AssignIndexes(keys)

	ops := make([]Operation, len(valid))
	for i, it := range valid {
		stem := naming.Stem(mode, it, proj, tokens[i], order)
		dest := filepath.Join(filepath.Dir(it.SourcePath), stem+it.Ext())
		ops[i] = Operation{
			Source:       it.SourcePath,
			Destination:  dest,
			OriginalName: it.OriginalName(),
			NoOp:         dest == it.SourcePath,
		}
	}

	// Global uniqueness check. Two items from different groups can still
	// coincide (e.g. a position label that mimics another group's suffix),
	// so count destinations across the whole plan.
	counts := make(map[string]int, len(ops))
	for _, op := range ops {
		counts[strings.ToLower(op.Destination)]++
	}
	for i, op := range ops {
		if counts[strings.ToLower(op.Destination)] > 1 {
			excluded = append(excluded, Excluded{
				Item:   valid[i],
				Reason: ExcludeDuplicateDestination,
				Detail: "would also be named " + filepath.Base(op.Destination),
			})
			continue
		}
		plan.Ops = append(plan.Ops, op)
	}

	return plan, excluded
}
