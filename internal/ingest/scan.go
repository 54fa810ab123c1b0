package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoSource is returned when the source directory is missing or not a directory.
var ErrNoSource = errors.New("source directory not found")

// Source says where event-log files are looked for.
type Source struct {
	Dir       string
	Recursive bool
	Pattern   string // matched against base names, doublestar syntax
}

// Scan is the outcome of enumerating a Source.
type Scan struct {
	Root  string
	Dirs  []string // the root first, then subdirectories in lexical order
	Files []string // matching files in lexical order
}

// Discover enumerates src. Without Recursive only the top-level directory is read.
// File order is lexical by path, which is also the order files are folded in.
func Discover(src Source) (*Scan, error) {
	info, err := os.Stat(src.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoSource, src.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNoSource, src.Dir)
	}

	pattern := src.Pattern
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q", pattern)
	}

	walk := "*"
	if src.Recursive {
		walk = "**"
	}

	scan := &Scan{Root: src.Dir, Dirs: []string{src.Dir}}
	err = doublestar.GlobWalk(os.DirFS(src.Dir), walk, func(rel string, d fs.DirEntry) error {
		if rel == "." {
			return nil
		}
		full := filepath.Join(src.Dir, filepath.FromSlash(rel))
		if d.IsDir() {
			if src.Recursive {
				scan.Dirs = append(scan.Dirs, full)
			}
			return nil
		}
		ok, err := doublestar.Match(pattern, path.Base(rel))
		if err != nil {
			return err
		}
		if ok {
			scan.Files = append(scan.Files, full)
		}
		return nil
	}, doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", src.Dir, err)
	}

	slices.Sort(scan.Dirs[1:])
	slices.Sort(scan.Files)
	return scan, nil
}
