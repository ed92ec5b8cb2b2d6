package solver

import (
	"fmt"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Resumer finishes a game from any legal position. The largest disk not yet on
// the target forces the plan: everything smaller is parked on the spare peg, the
// disk moves, and the parked tower is carried over with the wrapped Solver.
type Resumer struct {
	Solver ports.Solver
}

func NewResumer(s ports.Solver) *Resumer { return &Resumer{Solver: s} }

// Resume returns the shortest move list putting every disk of b on target.
// b is not modified.
func (r *Resumer) Resume(b *domain.Board, target domain.Role) ([]domain.Move, error) {
	pos, err := b.Positions()
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	var moves []domain.Move
	var gather func(k int, target domain.Role)
	gather = func(k int, target domain.Role) {
		if k == 0 {
			return
		}
		if pos[k] == target {
			gather(k-1, target)
			return
		}
		src := pos[k]
		spare := domain.Spare(src, target)
		gather(k-1, spare)
		moves = append(moves, domain.Move{From: src, To: target})
		pos[k] = target
		moves = append(moves, r.Solver.Solve(k-1, spare, target, src)...)
		for d := 1; d < k; d++ {
			pos[d] = target
		}
	}
	gather(len(pos)-1, target)
	return moves, nil
}
