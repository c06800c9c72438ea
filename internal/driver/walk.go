package driver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// StdinPath names standard input among Request.Paths.
const StdinPath = "-"

// Collect expands paths into a sorted, duplicate-free file list. Directories
// are walked recursively and keep only files with one of extensions (with
// leading dot, case-insensitive); files named explicitly are always kept.
// exclude patterns (filepath.Match syntax) are tested against the base name
// and the slash-separated path; a matching directory is skipped whole.
func Collect(paths, extensions, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
	}
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		p = filepath.Clean(p)
		if _, dup := seen[p]; dup {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, root := range paths {
		if root == StdinPath {
			add(root)
			continue
		}
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root && excluded(path, exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if _, ok := exts[strings.ToLower(filepath.Ext(path))]; ok {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// stdin stays first, the rest in lexical order
	sort.SliceStable(files, func(i, j int) bool {
		if files[i] == StdinPath || files[j] == StdinPath {
			return files[i] == StdinPath && files[j] != StdinPath
		}
		return files[i] < files[j]
	})
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	return files, nil
}

// ErrNoFiles is returned when the paths expand to nothing.
var ErrNoFiles = errors.New("no files to analyze")

func excluded(path string, patterns []string) bool {
	base := filepath.Base(path)
	slashed := filepath.ToSlash(path)
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
		if ok, _ := filepath.Match(p, slashed); ok {
			return true
		}
	}
	return false
}
