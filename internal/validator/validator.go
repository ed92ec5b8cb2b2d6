package validator

import (
	"strings"

	"svw.info/hanoi/internal/domain"
)

type MoveValidator struct{}

func New() *MoveValidator { return &MoveValidator{} }

// Validate decodes code and checks it against the pegs. The returned error wraps
// domain.ErrInvalidMove with the first rule that failed.
func (v *MoveValidator) Validate(b *domain.Board, code string) (domain.Move, error) {
	m, err := domain.ParseMove(strings.ToUpper(code))
	if err != nil {
		return domain.Move{}, err
	}
	src, dst := b.Peg(m.From), b.Peg(m.To)
	if src.Peek() == domain.NoDisk {
		return domain.Move{}, domain.ErrEmptySource
	}
	// destination must be empty or strictly larger on top
	if top := dst.Peek(); top != domain.NoDisk && src.Peek() >= top {
		return domain.Move{}, domain.ErrLargerOnSmaller
	}
	return m, nil
}
