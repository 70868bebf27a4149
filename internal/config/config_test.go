package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Search.MaxDepth != 5 {
		t.Errorf("Default() max_depth = %d, want 5", cfg.Search.MaxDepth)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTLSeconds != 300 {
		t.Errorf("Default() cache = %+v, want enabled with 300s TTL", cfg.Cache)
	}
	if cfg.Preview.RecentCommits != 5 {
		t.Errorf("Default() recent_commits = %d, want 5", cfg.Preview.RecentCommits)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestLoad_MissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load() error = nil, want error for missing custom path")
	}
}

func TestLoad_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[search]
base_path = "/srv/code"
max_depth = 2

[cache]
enabled = false
ttl_seconds = 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.BasePath != "/srv/code" || cfg.Search.MaxDepth != 2 {
		t.Errorf("Load() search = %+v", cfg.Search)
	}
	if cfg.Cache.Enabled || cfg.Cache.TTLSeconds != 60 {
		t.Errorf("Load() cache = %+v", cfg.Cache)
	}
	// Unset sections keep their defaults.
	if cfg.UI.Prompt != "Select repo > " {
		t.Errorf("Load() ui.prompt = %q, want default", cfg.UI.Prompt)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("search = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() error = nil, want parse error")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GN_SEARCH_PATH", "/srv/override")
	t.Setenv("GN_MAX_DEPTH", "9")
	t.Setenv("GN_CACHE_ENABLED", "false")
	t.Setenv("GN_CACHE_TTL", "42")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[search]\nbase_path = \"/srv/file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.BasePath != "/srv/override" {
		t.Errorf("GN_SEARCH_PATH not applied: %q", cfg.Search.BasePath)
	}
	if cfg.Search.MaxDepth != 9 {
		t.Errorf("GN_MAX_DEPTH not applied: %d", cfg.Search.MaxDepth)
	}
	if cfg.Cache.Enabled {
		t.Error("GN_CACHE_ENABLED not applied")
	}
	if cfg.Cache.TTLSeconds != 42 {
		t.Errorf("GN_CACHE_TTL not applied: %d", cfg.Cache.TTLSeconds)
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("GN_MAX_DEPTH", "deep")

	_, err := Load("")
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want ErrInvalid", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	got, err := expandPath("~/code")
	if err != nil {
		t.Fatalf("expandPath() error = %v", err)
	}
	if got != filepath.Join(home, "code") {
		t.Errorf("expandPath(~/code) = %q", got)
	}

	got, err = expandPath("~")
	if err != nil {
		t.Fatalf("expandPath() error = %v", err)
	}
	if got != home {
		t.Errorf("expandPath(~) = %q, want %q", got, home)
	}

	got, err = expandPath("/absolute")
	if err != nil || got != "/absolute" {
		t.Errorf("expandPath(/absolute) = %q, %v", got, err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero depth", mutate: func(c *Config) { c.Search.MaxDepth = 0 }},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.TTLSeconds = -1 }},
		{name: "preview width too large", mutate: func(c *Config) { c.UI.PreviewWidthPercent = 101 }},
		{name: "zero height", mutate: func(c *Config) { c.UI.HeightPercent = 0 }},
		{name: "unknown layout", mutate: func(c *Config) { c.UI.Layout = "sideways" }},
		{name: "negative commits", mutate: func(c *Config) { c.Preview.RecentCommits = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "conf", "config.toml")

	created, err := Init(path, false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if created != path {
		t.Errorf("Init() = %q, want %q", created, path)
	}

	// The generated file must parse and validate.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of generated config error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("generated config does not validate: %v", err)
	}

	// Second init without force refuses to overwrite.
	if _, err := Init(path, false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Init() without force = %v, want already-exists error", err)
	}
	if _, err := Init(path, true); err != nil {
		t.Errorf("Init() with force error = %v", err)
	}
}
