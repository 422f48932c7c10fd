// Package naming builds filename stems from item attributes: project number
// validation, canonical tag codes, per-mode stem assembly, group/index
// resolution for duplicate base names, and date extraction from camera
// filenames.
//
// Everything here is pure string computation; no filesystem access.
//
// Types:
//   - Item (source path, tags, date, suffix, position)
//   - Mode (normal, position, pa_mat)
//   - TagOrder (pluggable canonical ordering for tag codes)
//
// Functions:
//   - NormalizeProject(raw) → validated project number
//   - GroupKey(mode, item, project, order) → disambiguation key
//   - Stem(mode, item, project, index, order) → filename stem
//   - AssignIndexes(keys) → per-item index tokens ("" for singletons)
//   - DateFromFilename(basename) → embedded date, if any
//
// Split along these boundaries: item.go, project.go, tagcode.go, stem.go,
// collision.go, dateparse.go.
package naming
