// Package config loads the gn configuration from
// ~/.config/gn/config.toml, applies GN_* environment overrides and
// validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/gn/internal/preview"
)

// ErrInvalid marks out-of-range configuration values. It is reported
// before any scan or cache work begins.
var ErrInvalid = errors.New("invalid configuration")

// SearchConfig controls where and how deep repositories are discovered.
type SearchConfig struct {
	BasePath string `toml:"base_path"`
	MaxDepth int    `toml:"max_depth"`
}

// CacheConfig controls scan-result caching.
type CacheConfig struct {
	Enabled    bool  `toml:"enabled"`
	TTLSeconds int64 `toml:"ttl_seconds"`
}

// UIConfig shapes the fuzzy-selector invocation.
type UIConfig struct {
	Prompt              string `toml:"prompt"`
	Header              string `toml:"header"`
	PreviewWidthPercent int    `toml:"preview_width_percent"`
	Layout              string `toml:"layout"`
	HeightPercent       int    `toml:"height_percent"`
	ShowBorder          bool   `toml:"show_border"`
}

// PreviewConfig mirrors preview.Config with TOML tags.
type PreviewConfig struct {
	ShowBranch       bool   `toml:"show_branch"`
	ShowLastActivity bool   `toml:"show_last_activity"`
	ShowStatus       bool   `toml:"show_status"`
	RecentCommits    int    `toml:"recent_commits"`
	DateFormat       string `toml:"date_format"`
}

// Config holds the gn configuration.
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Cache   CacheConfig   `toml:"cache"`
	UI      UIConfig      `toml:"ui"`
	Preview PreviewConfig `toml:"preview"`
}

// PreviewOptions converts the preview section for the renderer.
func (c *Config) PreviewOptions() preview.Config {
	return preview.Config{
		ShowBranch:       c.Preview.ShowBranch,
		ShowLastActivity: c.Preview.ShowLastActivity,
		ShowStatus:       c.Preview.ShowStatus,
		RecentCommits:    c.Preview.RecentCommits,
		DateFormat:       c.Preview.DateFormat,
	}
}

// Default returns the built-in configuration. The search base path
// falls back to "~" when the home directory cannot be resolved; it is
// expanded again at load time.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	return Config{
		Search: SearchConfig{
			BasePath: home,
			MaxDepth: 5,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 300,
		},
		UI: UIConfig{
			Prompt:              "Select repo > ",
			Header:              "Repository (↑/↓, ⏎, Esc)",
			PreviewWidthPercent: 60,
			Layout:              "reverse",
			HeightPercent:       90,
			ShowBorder:          true,
		},
		Preview: PreviewConfig{
			ShowBranch:       true,
			ShowLastActivity: true,
			ShowStatus:       true,
			RecentCommits:    5,
			DateFormat:       "2006-01-02 15:04",
		},
	}
}

// expandPath expands a leading ~ to the user's home directory.
// Shells do not expand ~ inside config files.
func expandPath(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gn", "config.toml"), nil
}

// Load reads the configuration with priority custom path > default
// path > built-in defaults, then applies environment overrides and
// expands ~ in the search base path. A missing file is not an error; a
// present but unparsable file is.
func Load(customPath string) (Config, error) {
	path := customPath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return applyEnv(Default())
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults apply. A custom path is expected to exist though.
		if customPath != "" {
			return cfg, fmt.Errorf("read config file %s: %w", path, err)
		}
	case err != nil:
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	return applyEnv(cfg)
}

// applyEnv layers GN_* environment overrides over cfg and finishes
// path expansion.
func applyEnv(cfg Config) (Config, error) {
	if v := os.Getenv("GN_SEARCH_PATH"); v != "" {
		cfg.Search.BasePath = v
	}
	if v := os.Getenv("GN_MAX_DEPTH"); v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: GN_MAX_DEPTH %q is not an integer", ErrInvalid, v)
		}
		cfg.Search.MaxDepth = depth
	}
	if v := os.Getenv("GN_CACHE_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: GN_CACHE_ENABLED %q is not a boolean", ErrInvalid, v)
		}
		cfg.Cache.Enabled = enabled
	}
	if v := os.Getenv("GN_CACHE_TTL"); v != "" {
		ttl, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: GN_CACHE_TTL %q is not an integer", ErrInvalid, v)
		}
		cfg.Cache.TTLSeconds = ttl
	}

	expanded, err := expandPath(cfg.Search.BasePath)
	if err != nil {
		return cfg, err
	}
	cfg.Search.BasePath = expanded

	return cfg, nil
}

// Validate checks value ranges. Percent fields must stay within
// 1..100 and counts must not be negative.
func (c *Config) Validate() error {
	if c.Search.MaxDepth < 1 {
		return fmt.Errorf("%w: search.max_depth must be at least 1, got %d", ErrInvalid, c.Search.MaxDepth)
	}
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("%w: cache.ttl_seconds must not be negative, got %d", ErrInvalid, c.Cache.TTLSeconds)
	}
	if c.UI.PreviewWidthPercent < 1 || c.UI.PreviewWidthPercent > 100 {
		return fmt.Errorf("%w: ui.preview_width_percent must be in 1..100, got %d", ErrInvalid, c.UI.PreviewWidthPercent)
	}
	if c.UI.HeightPercent < 1 || c.UI.HeightPercent > 100 {
		return fmt.Errorf("%w: ui.height_percent must be in 1..100, got %d", ErrInvalid, c.UI.HeightPercent)
	}
	if c.UI.Layout != "default" && c.UI.Layout != "reverse" && c.UI.Layout != "reverse-list" {
		return fmt.Errorf("%w: ui.layout %q: must be \"default\", \"reverse\" or \"reverse-list\"", ErrInvalid, c.UI.Layout)
	}
	if c.Preview.RecentCommits < 0 {
		return fmt.Errorf("%w: preview.recent_commits must not be negative, got %d", ErrInvalid, c.Preview.RecentCommits)
	}
	return nil
}

const defaultConfig = `# gn configuration

[search]
# Base directory to scan for git repositories.
# Must be an absolute path or start with ~
base_path = "~"
# How many directory levels to descend below base_path.
max_depth = 5

[cache]
# Cache scan results so repeated invocations skip the directory walk.
enabled = true
# Seconds before a cached scan is considered stale. 0 disables reuse.
ttl_seconds = 300

[ui]
# fzf prompt and header.
prompt = "Select repo > "
header = "Repository (↑/↓, ⏎, Esc)"
# Width of the preview pane as a percentage of the terminal.
preview_width_percent = 60
# fzf layout: "default", "reverse" or "reverse-list".
layout = "reverse"
# Height of the finder as a percentage of the terminal.
height_percent = 90
show_border = true

[preview]
show_branch = true
show_last_activity = true
show_status = true
# Number of commits in the preview. 0 hides the section.
recent_commits = 5
# Go reference-time layout for the absolute last-activity date.
date_format = "2006-01-02 15:04"
`

// Init creates a commented default config file at the default path,
// or at customPath when given. If force is true an existing file is
// overwritten. Returns the path of the created file.
func Init(customPath string, force bool) (string, error) {
	path := customPath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
