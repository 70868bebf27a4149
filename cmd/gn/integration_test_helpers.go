//go:build integration

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/raphi011/gn/internal/log"
	"github.com/raphi011/gn/internal/output"
)

// testContext returns a context with a silent logger and a printer
// capturing primary output.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &out)
	return ctx, &out
}

// setupFakeRepo creates dir/name with an empty .git directory. The
// scanner only looks at the marker, no git history is needed.
func setupFakeRepo(t *testing.T, dir, name string) string {
	t.Helper()

	repoPath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Join(repoPath, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}
	return repoPath
}

// writeTestConfig writes a config file scanning root and returns its
// path. The global --config flag is pointed at it for the test.
func writeTestConfig(t *testing.T, root string, cacheEnabled bool) string {
	t.Helper()

	content := fmt.Sprintf(`[search]
base_path = %q
max_depth = 3

[cache]
enabled = %t
ttl_seconds = 300
`, root, cacheEnabled)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	old := configPath
	configPath = path
	t.Cleanup(func() { configPath = old })

	return path
}
