//go:build integration

package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

// TestConfigShow tests the effective-config output.
//
// Scenario: User runs `gn config show` with a custom config file
// Expected: Parseable TOML reflecting the file's values
func TestConfigShow(t *testing.T) {
	root := t.TempDir()
	writeTestConfig(t, root, true)

	ctx, out := testContext(t)

	cmd := newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"show"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	var decoded map[string]any
	if err := toml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid TOML: %v\noutput: %s", err, out.String())
	}
	if !strings.Contains(out.String(), root) {
		t.Errorf("config show missing configured base path:\n%s", out.String())
	}
}

// TestConfigInit tests config file creation.
//
// Scenario: User runs `gn config init` twice, then with --force
// Expected: Created once, refused once, overwritten with --force
func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })

	ctx, _ := testContext(t)

	cmd := newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"init"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	cmd = newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"init"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("config init overwrote an existing file without --force")
	}

	cmd = newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"init", "--force"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init --force failed: %v", err)
	}
}

// TestNavigate_EmptyTree tests the no-repositories short circuit.
//
// Scenario: User runs `gn` over a tree without repositories
// Expected: No selection, no error, nothing on stdout
func TestNavigate_EmptyTree(t *testing.T) {
	writeTestConfig(t, t.TempDir(), false)

	ctx, out := testContext(t)

	cmd := newListCmd() // carrier for the context only
	cmd.SetContext(ctx)

	if err := runNavigate(cmd, nil); err != nil {
		t.Fatalf("navigate failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("navigate printed %q for an empty tree", out.String())
	}
}
