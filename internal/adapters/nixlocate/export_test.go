package nixlocate

import "go.trai.ch/autobahn/internal/core/domain"

// Parse exposes the output parser to the black-box tests.
func (l *Locator) Parse(lib domain.LibraryName, out string) ([]domain.CandidateEdge, error) {
	return l.parse(lib, out)
}
