// Package preview renders a metadata summary for a single git
// repository: current branch, working-tree status tallies, recent
// commits and last-activity age. The output is a multi-line colorized
// block meant for the preview pane of the fuzzy selector.
package preview

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrOpenRepository is returned when a path cannot be opened as a git
// repository.
var ErrOpenRepository = errors.New("open repository")

// detachedHead is shown when the head does not resolve to a branch.
const detachedHead = "(detached HEAD)"

// shortHashLen is the number of hex characters shown per commit.
const shortHashLen = 7

// Config controls which sections Render produces. Disabled sections
// contribute nothing to the output, not an empty placeholder.
type Config struct {
	ShowBranch       bool
	ShowLastActivity bool
	ShowStatus       bool
	RecentCommits    int
	DateFormat       string
}

// Render describes the repository at repoPath as a colorized text
// block. Only a completely unopenable repository is a hard failure;
// individual sections degrade gracefully. A repository with no head
// (fresh init, no commits) still yields the name and location header.
func Render(repoPath string, cfg Config) (string, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOpenRepository, repoPath, err)
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	branchStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	commitsStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	stagedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unstagedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	untrackedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hashStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	var lines []string
	lines = append(lines,
		headerStyle.Render("Repository:")+" "+filepath.Base(repoPath),
		headerStyle.Render("Location:")+" "+repoPath,
		"",
	)

	// A missing head is not an error, it just hides the sections that
	// need one.
	head, headErr := repo.Head()

	if cfg.ShowBranch && headErr == nil {
		name := detachedHead
		if head.Name().IsBranch() {
			name = head.Name().Short()
		}
		lines = append(lines, branchStyle.Render("Branch:")+" "+name)
	}

	if cfg.ShowLastActivity && headErr == nil {
		if commit, err := repo.CommitObject(head.Hash()); err == nil {
			when := commit.Committer.When
			lines = append(lines, fmt.Sprintf("%s %s (%s)",
				sectionStyle.Render("Last Activity:"),
				Relative(time.Since(when)),
				when.Local().Format(cfg.DateFormat),
			), "")
		}
	}

	if cfg.ShowStatus {
		if tally, ok := statusTallies(repo); ok {
			lines = append(lines, sectionStyle.Render("Status:"))
			if tally.staged == 0 && tally.unstaged == 0 && tally.untracked == 0 {
				lines = append(lines, "  Clean working tree")
			} else {
				if tally.staged > 0 {
					lines = append(lines, "  "+stagedStyle.Render(fmt.Sprintf("+%d staged", tally.staged)))
				}
				if tally.unstaged > 0 {
					lines = append(lines, "  "+unstagedStyle.Render(fmt.Sprintf("~%d unstaged", tally.unstaged)))
				}
				if tally.untracked > 0 {
					lines = append(lines, "  "+untrackedStyle.Render(fmt.Sprintf("?%d untracked", tally.untracked)))
				}
			}
			lines = append(lines, "")
		}
	}

	if cfg.RecentCommits > 0 {
		lines = append(lines, commitsStyle.Render("Recent commits:"))
		if headErr == nil {
			for _, c := range recentCommits(repo, head.Hash(), cfg.RecentCommits) {
				lines = append(lines, "  "+hashStyle.Render(c.shortID)+" "+c.subject)
			}
		}
	}

	return strings.Join(lines, "\n"), nil
}

// statusTally holds independent counters; a single path may increment
// more than one of them (staged and then modified again, for example).
type statusTally struct {
	staged    int
	unstaged  int
	untracked int
}

func statusTallies(repo *gogit.Repository) (statusTally, bool) {
	var tally statusTally

	wt, err := repo.Worktree()
	if err != nil {
		return tally, false
	}
	status, err := wt.Status()
	if err != nil {
		return tally, false
	}

	for _, fs := range status {
		switch fs.Staging {
		case gogit.Added, gogit.Modified, gogit.Deleted:
			tally.staged++
		}
		switch fs.Worktree {
		case gogit.Modified, gogit.Deleted:
			tally.unstaged++
		case gogit.Untracked:
			tally.untracked++
		}
	}
	return tally, true
}

type commitLine struct {
	shortID string
	subject string
}

// recentCommits walks history from head in reverse-chronological order,
// taking at most limit entries. A failing walk yields what was read so
// far; the preview never aborts on history errors.
func recentCommits(repo *gogit.Repository, from plumbing.Hash, limit int) []commitLine {
	iter, err := repo.Log(&gogit.LogOptions{From: from})
	if err != nil {
		return nil
	}
	defer iter.Close()

	var commits []commitLine
	for len(commits) < limit {
		commit, err := iter.Next()
		if err != nil {
			// io.EOF or a read failure, either way history ends here.
			break
		}
		subject := commit.Message
		if i := strings.IndexByte(subject, '\n'); i >= 0 {
			subject = subject[:i]
		}
		commits = append(commits, commitLine{
			shortID: commit.Hash.String()[:shortHashLen],
			subject: subject,
		})
	}
	return commits
}
