package grader

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"labgrade/internal/config"
)

// ErrNoSource reports that no markup file could be located.
var ErrNoSource = os.ErrNotExist

// DiscoverSource locates the submitted markup file: the configured filename
// in the working directory wins, otherwise a directory walk (skipping
// dependency, version-control, and output directories) returns the first
// match. WalkDir visits entries in lexical order, so the result is
// deterministic for a given tree.
func DiscoverSource(dir string, source config.SourceConfig, outputDir string) (string, error) {
	preferred := filepath.Join(dir, source.Filename)
	if info, err := os.Stat(preferred); err == nil && !info.IsDir() {
		return preferred, nil
	}

	skip := map[string]struct{}{}
	for _, name := range source.ExcludeDirs {
		skip[name] = struct{}{}
	}
	if outputDir != "" {
		skip[filepath.Base(outputDir)] = struct{}{}
	}

	var found string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			if path == dir {
				return nil
			}
			if _, excluded := skip[entry.Name()]; excluded {
				return filepath.SkipDir
			}
			return nil
		}
		if isMarkupFile(entry.Name()) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if found == "" {
		return "", ErrNoSource
	}
	return found, nil
}

func isMarkupFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".html" || ext == ".htm"
}
