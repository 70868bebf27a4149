// Package fzf drives an external fzf process as the repository
// selector. The repositories are piped in as tab-separated records and
// the preview pane re-invokes the gn binary for the highlighted entry.
package fzf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/raphi011/gn/internal/cmd"
	"github.com/raphi011/gn/internal/log"
	"github.com/raphi011/gn/internal/scan"
)

// UIOptions shapes the fzf invocation.
type UIOptions struct {
	Prompt              string
	Header              string
	PreviewWidthPercent int
	Layout              string
	HeightPercent       int
	ShowBorder          bool
}

// Available reports whether a working fzf can be invoked.
func Available(ctx context.Context) bool {
	_, err := cmd.OutputContext(ctx, "", "fzf", "--version")
	return err == nil
}

// buildArgs assembles the fzf argument list. Records are name\tpath;
// only the name column is shown, the path drives the preview command.
func buildArgs(ui UIOptions, previewBin string) []string {
	args := []string{
		"--prompt", ui.Prompt,
		"--header", ui.Header,
		"--delimiter", "\t",
		"--with-nth", "1",
		"--preview-window", fmt.Sprintf("right:%d%%:wrap", ui.PreviewWidthPercent),
		"--layout", ui.Layout,
		"--height", strconv.Itoa(ui.HeightPercent) + "%",
	}
	if ui.ShowBorder {
		args = append(args, "--border")
	}
	// Keep the scanner's alphabetical order.
	args = append(args, "--no-sort")
	args = append(args, "--preview", previewBin+" preview {2}")
	return args
}

// Select presents repos in fzf and returns the chosen repository path.
// The second return is false when the user cancelled (ESC or Ctrl-C)
// or when there was nothing to select; cancellation is not an error.
func Select(ctx context.Context, repos []scan.Repo, ui UIOptions, previewBin string) (string, bool, error) {
	input := scan.FormatTSV(repos)
	if input == "" {
		return "", false, nil
	}

	args := buildArgs(ui, previewBin)
	log.FromContext(ctx).Command("fzf", args...)

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, "fzf", args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Nonzero exit means the user backed out.
			return "", false, nil
		}
		return "", false, fmt.Errorf("run fzf: %w", err)
	}

	path, ok := parseSelection(stdout.String())
	return path, ok, nil
}

// parseSelection extracts the path column from the selected line.
func parseSelection(out string) (string, bool) {
	fields := strings.Split(strings.TrimSpace(out), "\t")
	if len(fields) < 2 || fields[1] == "" {
		return "", false
	}
	return fields[1], true
}
