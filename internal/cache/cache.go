// Package cache persists scan results keyed by a fingerprint of the
// search path, with freshness derived from file modification time.
//
// Entries are plain TSV files (one "name\tpath" record per line) so they
// stay human-inspectable and diffable. The cache is a best-effort speed
// optimization: there is no locking, concurrent writers race at the
// filesystem level and the last one wins.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/raphi011/gn/internal/scan"
)

// entryExt is the extension of recognized cache entry files.
const entryExt = ".cache"

// Store reads and writes cached repository lists under a single
// storage directory. The directory is threaded in explicitly; there is
// no process-wide cache location state.
type Store struct {
	dir string
	ttl time.Duration
}

// DefaultDir returns the user-level cache directory for gn.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "gn"), nil
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, ttl time.Duration) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory %s: %w", dir, err)
	}
	return &Store{dir: dir, ttl: ttl}, nil
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// EntryPath returns the entry file path for a search path.
func (s *Store) EntryPath(searchPath string) string {
	return filepath.Join(s.dir, "repos_"+Fingerprint(searchPath)+entryExt)
}

// IsValid reports whether a fresh cache entry exists for searchPath.
// Any probe failure counts as invalid: the caller falls back to a fresh
// scan, never to stale data. A zero TTL means entries are always stale.
func (s *Store) IsValid(searchPath string) bool {
	info, err := os.Stat(s.EntryPath(searchPath))
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < s.ttl
}

// Load reads the cached repository list for searchPath.
// Lines that do not split into exactly two tab-separated fields are
// dropped silently; only an unreadable file is an error.
func (s *Store) Load(searchPath string) ([]scan.Repo, error) {
	path := s.EntryPath(searchPath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cache entry %s: %w", path, err)
	}

	repos := []scan.Repo{}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			continue
		}
		repos = append(repos, scan.Repo{Name: fields[0], Path: fields[1]})
	}
	return repos, nil
}

// Save overwrites the cache entry for searchPath with the given records.
func (s *Store) Save(searchPath string, repos []scan.Repo) error {
	path := s.EntryPath(searchPath)
	if err := os.WriteFile(path, []byte(scan.FormatTSV(repos)), 0o644); err != nil {
		return fmt.Errorf("write cache entry %s: %w", path, err)
	}
	return nil
}

// Clear removes the whole storage directory and recreates it empty.
// This invalidates entries for every search path at once.
func (s *Store) Clear() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("clear cache directory %s: %w", s.dir, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("recreate cache directory %s: %w", s.dir, err)
	}
	return nil
}

// Entries lists the paths of all recognized entry files, sorted.
// Files without the .cache extension are ignored.
func (s *Store) Entries() ([]string, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache directory %s: %w", s.dir, err)
	}

	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != entryExt {
			continue
		}
		files = append(files, filepath.Join(s.dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// TotalSize sums the byte sizes of all entry files.
func (s *Store) TotalSize() (int64, error) {
	files, err := s.Entries()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			return 0, fmt.Errorf("stat cache entry %s: %w", file, err)
		}
		total += info.Size()
	}
	return total, nil
}
