// Package planner turns a batch of items into an ordered, collision-free
// rename plan. Planning is pure: no filesystem access, so a plan can be
// previewed, discarded, and rebuilt freely.
//
// BuildPlan validates the project number once, validates each item for the
// active mode, resolves duplicate base names into stable indices, and
// verifies that destination paths are unique case-insensitively across the
// whole plan. Invalid and colliding items land in the excluded list with a
// reason; they never abort the rest of the batch.
package planner
