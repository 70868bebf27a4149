//go:build integration

package main

import (
	"strings"
	"testing"
)

// runListOnce populates the cache for the configured search path.
func runListOnce(t *testing.T) {
	t.Helper()

	ctx, _ := testContext(t)
	cmd := newListCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}
}

// TestCacheInfo tests the diagnostic output.
//
// Scenario: User runs `gn cache info` after a cached scan
// Expected: Directory, entry count and size are reported
func TestCacheInfo(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := t.TempDir()
	setupFakeRepo(t, root, "alpha")
	writeTestConfig(t, root, true)
	runListOnce(t)

	ctx, out := testContext(t)
	cmd := newCacheCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"info"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache info failed: %v", err)
	}
	if !strings.Contains(out.String(), "Entries:   1") {
		t.Errorf("cache info missing entry count:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "TTL:       300s") {
		t.Errorf("cache info missing TTL:\n%s", out.String())
	}
}

// TestCacheClear_DryRun tests that a dry run removes nothing.
//
// Scenario: User runs `gn cache clear --dry-run` with one entry
// Expected: The entry is listed but still present afterwards
func TestCacheClear_DryRun(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := t.TempDir()
	setupFakeRepo(t, root, "alpha")
	writeTestConfig(t, root, true)
	runListOnce(t)

	ctx, out := testContext(t)
	cmd := newCacheCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"clear", "--dry-run"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache clear --dry-run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Would remove repos_") {
		t.Errorf("dry run did not list the entry:\n%s", out.String())
	}

	// The entry must survive a dry run.
	ctx, out = testContext(t)
	cmd = newCacheCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"info"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache info failed: %v", err)
	}
	if !strings.Contains(out.String(), "Entries:   1") {
		t.Errorf("dry run removed the entry:\n%s", out.String())
	}
}

// TestCacheClear tests actual removal.
//
// Scenario: User runs `gn cache clear` with one entry
// Expected: No entries remain
func TestCacheClear(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := t.TempDir()
	setupFakeRepo(t, root, "alpha")
	writeTestConfig(t, root, true)
	runListOnce(t)

	ctx, _ := testContext(t)
	cmd := newCacheCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"clear"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache clear failed: %v", err)
	}

	ctx, out := testContext(t)
	cmd = newCacheCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"info"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache info failed: %v", err)
	}
	if !strings.Contains(out.String(), "Entries:   0") {
		t.Errorf("clear left entries behind:\n%s", out.String())
	}
}

// TestCacheDisabled tests the disabled-cache message.
//
// Scenario: User runs `gn cache info` with caching disabled
// Expected: A disabled notice instead of stats
func TestCacheDisabled(t *testing.T) {
	writeTestConfig(t, t.TempDir(), false)

	ctx, out := testContext(t)
	cmd := newCacheCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"info"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("cache info failed: %v", err)
	}
	if !strings.Contains(out.String(), "Cache is disabled") {
		t.Errorf("cache info output:\n%s", out.String())
	}
}
