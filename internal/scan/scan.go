// Package scan discovers git repositories under a directory tree.
//
// A directory counts as a repository root when it has a direct child
// named .git that is itself a directory. A .git file (as used by
// worktrees and submodules) is deliberately not a match: those checkouts
// belong to a repository discovered elsewhere.
package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrPathNotFound is returned when the scan root does not exist.
var ErrPathNotFound = errors.New("path not found")

// markerName identifies a repository root.
const markerName = ".git"

// Repo is a discovered git repository.
type Repo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// NewRepo creates a Repo from the path of a repository root.
// The name is the final path segment.
func NewRepo(path string) Repo {
	return Repo{Name: filepath.Base(path), Path: path}
}

// entryKind classifies a directory entry for the walker.
// Unreadable entries are a first-class outcome, not an error path:
// a single inaccessible subtree must not abort the walk.
type entryKind int

const (
	entryDir entryKind = iota
	entryOther
	entryUnreadable
)

// classify determines how the walker should treat an entry.
// Symlinks are never followed, even when they point at directories.
func classify(entry os.DirEntry) entryKind {
	if _, err := entry.Info(); err != nil {
		// Entry vanished or is inaccessible between ReadDir and now.
		return entryUnreadable
	}
	if entry.Type()&os.ModeSymlink != 0 {
		return entryOther
	}
	if entry.IsDir() {
		return entryDir
	}
	return entryOther
}

// Scan walks the tree rooted at root, descending at most maxDepth levels
// (depth 0 means root itself), and returns all discovered repositories
// sorted by name. Hidden directories are included since the marker itself
// is a dot-name. Duplicate names at different paths are both kept, in
// discovery order. The walk does not prune on a match, so nested or
// vendored repositories are reported too.
func Scan(root string, maxDepth int) ([]Repo, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, root)
	}

	repos := []Repo{}
	walk(root, 0, maxDepth, &repos)

	// Stable sort keeps discovery order for duplicate names.
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].Name < repos[j].Name
	})

	return repos, nil
}

// walk visits dir at the given depth, recording a repository when a
// .git directory child is found and recursing into subdirectories while
// depth budget remains.
func walk(dir string, depth, maxDepth int, repos *[]Repo) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Unreadable directory: skip it, keep scanning siblings.
		return
	}

	for _, entry := range entries {
		switch classify(entry) {
		case entryDir:
			if entry.Name() == markerName {
				*repos = append(*repos, NewRepo(dir))
				continue
			}
			if depth < maxDepth {
				walk(filepath.Join(dir, entry.Name()), depth+1, maxDepth, repos)
			}
		case entryOther, entryUnreadable:
			// Plain files (including a file named .git) and symlinks
			// are not markers and are not descended into.
		}
	}
}
