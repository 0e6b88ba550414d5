// Package browse finds GPX files for the interactive file picker.
package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GPXFiles lists .gpx files directly in dir and in its immediate
// subdirectories, sorted by path. Unreadable subdirectories are skipped.
func GPXFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !entry.IsDir() {
			if isGPX(path) {
				files = append(files, path)
			}
			continue
		}

		children, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, child := range children {
			childPath := filepath.Join(path, child.Name())
			if !child.IsDir() && isGPX(childPath) {
				files = append(files, childPath)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func isGPX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gpx")
}
