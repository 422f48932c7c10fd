package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover resolves the path arguments into the ordered batch file list.
// Directory arguments are scanned for accepted extensions (recursively when
// asked); file arguments are taken as-is but still filtered by extension.
// Paths are made absolute, de-duplicated, and sorted lexicographically so
// repeated runs see the same batch order.
func Discover(args []string, recursive bool, accept map[string]bool) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(path string) {
		if accept[strings.ToLower(filepath.Ext(path))] && !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", arg, err)
		}
		fi, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}

		if !fi.IsDir() {
			add(abs)
			continue
		}

		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if !recursive && path != abs {
					return filepath.SkipDir
				}
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", arg, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
