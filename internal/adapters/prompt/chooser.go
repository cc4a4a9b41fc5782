package prompt

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/autobahn/internal/core/domain"
	"go.trai.ch/zerr"
)

// Chooser asks on the terminal which candidate should provide a library.
type Chooser struct {
	teaOptions []tea.ProgramOption
}

// New creates a Chooser rendering to stderr. Options are appended to the
// program defaults, so tests can replace input and output.
func New(opts ...tea.ProgramOption) *Chooser {
	return &Chooser{teaOptions: opts}
}

// Choose implements ports.Chooser.
func (c *Chooser) Choose(ctx context.Context, lib domain.LibraryName, candidates []domain.CandidateEdge) (int, error) {
	model := NewModel(lib, candidates)

	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}, c.teaOptions...)

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return -1, errors.Join(domain.ErrSelectionCancelled,
			zerr.With(zerr.Wrap(err, "chooser stopped"), "library", lib.String()))
	}

	result, ok := final.(*Model)
	if !ok || result.Cancelled || result.Chosen < 0 {
		return -1, zerr.With(zerr.Wrap(domain.ErrSelectionCancelled, "no provider chosen"), "library", lib.String())
	}

	return result.Chosen, nil
}
