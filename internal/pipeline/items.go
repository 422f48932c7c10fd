package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/naming"
)

// BuildItems assembles the planner input for the discovered files. Per-file
// assignments win over batch-wide config defaults; dates fall back from
// assignment → config → a date embedded in the filename → the file's
// modification time, so every item enters planning with a usable date.
func BuildItems(files []string, cfg *config.Config, assignments map[string]Assignment) []naming.Item {
	items := make([]naming.Item, 0, len(files))
	for _, path := range files {
		asg := assignments[filepath.Base(path)]

		it := naming.Item{
			SourcePath: path,
			Tags:       cfg.Tags,
			Suffix:     cfg.Suffix,
			Position:   cfg.Position,
			Date:       cfg.Date,
		}
		if len(asg.Tags) > 0 {
			it.Tags = asg.Tags
		}
		if asg.Suffix != "" {
			it.Suffix = asg.Suffix
		}
		if asg.Position != "" {
			it.Position = asg.Position
		}
		if asg.Date != "" {
			it.Date = asg.Date
		}

		fi, err := os.Stat(path)
		if err == nil {
			it.SizeBytes = fi.Size()
		}

		if it.Date == "" {
			if d, ok := naming.DateFromFilename(filepath.Base(path)); ok {
				it.Date = d
			} else if err == nil {
				it.Date = fi.ModTime().Format(naming.DateLayout)
			}
		}

		items = append(items, it)
	}
	return items
}
