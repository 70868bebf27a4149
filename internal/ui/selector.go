// Package ui provides a built-in fuzzy repository selector used when
// fzf is not installed or explicitly disabled. It renders to stderr so
// the selected path on stdout stays pipeable (cd "$(gn)" still works).
package ui

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/gn/internal/scan"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

// repoSource implements fuzzy.Source over repository names.
type repoSource []scan.Repo

func (s repoSource) String(i int) string { return s[i].Name }
func (s repoSource) Len() int            { return len(s) }

// selectorModel is the bubbletea model for repository selection.
type selectorModel struct {
	repos      []scan.Repo
	filtered   []fuzzy.Match
	nameCounts map[string]int
	textInput  textinput.Model
	prompt     string
	cursor     int
	selected   int // index into filtered, -1 if none
	cancelled  bool
	maxHeight  int
}

func newSelectorModel(repos []scan.Repo, prompt string) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.SetWidth(40)

	// Duplicate names are disambiguated by showing the path.
	counts := make(map[string]int, len(repos))
	for _, r := range repos {
		counts[r.Name]++
	}

	m := selectorModel{
		repos:      repos,
		nameCounts: counts,
		textInput:  ti,
		prompt:     prompt,
		selected:   -1,
		maxHeight:  10,
	}
	m.applyFilter()
	return m
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = m.cursor
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.applyFilter()

	return m, cmd
}

// applyFilter recomputes the visible matches from the current query.
// An empty query keeps the scanner's alphabetical order; otherwise
// matches are ranked by fuzzy score.
func (m *selectorModel) applyFilter() {
	query := m.textInput.Value()
	if query == "" {
		m.filtered = make([]fuzzy.Match, len(m.repos))
		for i, r := range m.repos {
			m.filtered[i] = fuzzy.Match{Str: r.Name, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(query, repoSource(m.repos))
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m selectorModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m selectorModel) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  No matches found"))
		b.WriteString("\n")
	} else {
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			// Keep the cursor centered in the visible window.
			start = m.cursor - m.maxHeight/2
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			repo := m.repos[m.filtered[i].Index]

			nameStyle := unselectedStyle
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> "))
				nameStyle = selectedStyle
			} else {
				b.WriteString("  ")
			}
			b.WriteString(nameStyle.Render(repo.Name))
			if m.nameCounts[repo.Name] > 1 {
				b.WriteString("  " + dimStyle.Render(repo.Path))
			}
			b.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			b.WriteString(dimStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return b.String()
}

// Select shows the interactive selector and returns the chosen
// repository path. The second return is false when the user cancelled
// or there was nothing to select.
func Select(repos []scan.Repo, prompt string) (string, bool, error) {
	if len(repos) == 0 {
		return "", false, nil
	}

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newSelectorModel(repos, prompt),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m := finalModel.(selectorModel)
	if m.cancelled || m.selected < 0 || m.selected >= len(m.filtered) {
		return "", false, nil
	}
	return m.repos[m.filtered[m.selected].Index].Path, true, nil
}
