// Package scan discovers image files on disk for the carousel's source list.
package scan

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions lists the file extensions treated as loadable images.
var Extensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// Dir walks root recursively and returns the paths of all image files found,
// sorted for a stable slide order. Unreadable entries are skipped, not fatal:
// a single bad directory should not empty the deck.
func Dir(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("skipping unreadable entry", "path", path, "err", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if Extensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
