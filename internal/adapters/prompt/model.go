// Package prompt implements ports.Chooser as a small bubbletea list.
package prompt

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/autobahn/internal/ui/style"
)

// Model is the state of one provider choice.
type Model struct {
	Library    domain.LibraryName
	Candidates []domain.CandidateEdge
	Cursor     int
	Chosen     int
	Cancelled  bool
}

// NewModel creates a Model with the cursor on the first candidate.
func NewModel(lib domain.LibraryName, candidates []domain.CandidateEdge) *Model {
	return &Model{
		Library:    lib,
		Candidates: candidates,
		Chosen:     -1,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Fast typing and pastes arrive as a single message holding several runes.
	if key.Type == tea.KeyRunes && len(key.Runes) > 1 {
		for _, r := range key.Runes {
			if cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}); cmd != nil {
				return m, cmd
			}
		}
		return m, nil
	}

	return m, m.handleKey(key)
}

func (m *Model) handleKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.Cancelled = true
		return tea.Quit
	case "enter":
		if len(m.Candidates) == 0 {
			m.Cancelled = true
			return tea.Quit
		}
		m.Chosen = m.Cursor
		return tea.Quit
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "j", "down":
		if m.Cursor < len(m.Candidates)-1 {
			m.Cursor++
		}
	case "g", "home":
		m.Cursor = 0
	case "G", "end":
		m.Cursor = max(len(m.Candidates)-1, 0)
	default:
		// Digits jump straight to a numbered row.
		if n, err := strconv.Atoi(key.String()); err == nil && n >= 1 && n <= len(m.Candidates) {
			m.Cursor = n - 1
		}
	}

	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.Cancelled || m.Chosen >= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(style.Title.Render("Pick provider for " + m.Library.String()))
	b.WriteString("\n\n")

	for i, c := range m.Candidates {
		prefix := "  "
		name := c.Package.String()
		if i == m.Cursor {
			prefix = style.Pointer + " "
			name = style.Selected.Render(name)
		}
		b.WriteString(prefix + strconv.Itoa(i+1) + ". " + name + " " + style.Muted.Render(c.ProvidedPath) + "\n")
	}

	b.WriteString("\n" + style.Muted.Render("↑/↓ move • enter select • esc cancel") + "\n")
	return b.String()
}
