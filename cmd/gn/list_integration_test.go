//go:build integration

package main

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestList_TSV tests the default tab-separated listing.
//
// Scenario: User runs `gn list` over a tree with two repositories
// Expected: One name<TAB>path line per repository, sorted by name
func TestList_TSV(t *testing.T) {
	root := t.TempDir()
	setupFakeRepo(t, root, "beta")
	setupFakeRepo(t, root, "alpha")
	writeTestConfig(t, root, false)

	ctx, out := testContext(t)

	cmd := newListCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("list printed %d lines, want 2:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "alpha\t") || !strings.HasPrefix(lines[1], "beta\t") {
		t.Errorf("list output not sorted name\\tpath:\n%s", out.String())
	}
}

// TestList_JSON tests structured output.
//
// Scenario: User runs `gn list --json`
// Expected: A JSON array of {name, path} objects
func TestList_JSON(t *testing.T) {
	root := t.TempDir()
	repoPath := setupFakeRepo(t, root, "alpha")
	writeTestConfig(t, root, false)

	ctx, out := testContext(t)

	cmd := newListCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list --json failed: %v", err)
	}

	var repos []struct {
		Name string `json:"name"`
		Path string `json:"path"`
	}
	if err := json.Unmarshal(out.Bytes(), &repos); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, out.String())
	}
	if len(repos) != 1 || repos[0].Name != "alpha" || repos[0].Path != repoPath {
		t.Errorf("list --json = %+v", repos)
	}
}

// TestList_EmptyTree tests listing with nothing to find.
//
// Scenario: User runs `gn list` over a tree without repositories
// Expected: No output, no error
func TestList_EmptyTree(t *testing.T) {
	writeTestConfig(t, t.TempDir(), false)

	ctx, out := testContext(t)

	cmd := newListCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("list printed %q for an empty tree", out.String())
	}
}

// TestList_MissingRoot tests the scan-root error path.
//
// Scenario: The configured base path does not exist
// Expected: The command fails
func TestList_MissingRoot(t *testing.T) {
	writeTestConfig(t, "/does/not/exist", false)

	ctx, _ := testContext(t)

	cmd := newListCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err == nil {
		t.Fatal("list succeeded for a missing base path")
	}
}
