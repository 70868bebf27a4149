package cmd

import (
	"context"
	"strings"
	"testing"
)

func TestOutputContext(t *testing.T) {
	t.Parallel()

	out, err := OutputContext(context.Background(), "", "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("OutputContext() error = %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello" {
		t.Errorf("OutputContext() = %q, want hello", out)
	}
}

func TestRunContext_StderrInError(t *testing.T) {
	t.Parallel()

	err := RunContext(context.Background(), "", "sh", "-c", "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext() error = nil for failing command")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("RunContext() error = %v, want stderr content", err)
	}
}

func TestRunContext_Dir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out, err := OutputContext(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("OutputContext() error = %v", err)
	}
	if !strings.Contains(string(out), dir) {
		t.Errorf("OutputContext() ran in %q, want %q", out, dir)
	}
}
