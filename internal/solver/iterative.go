package solver

import (
	"math/bits"

	"svw.info/hanoi/internal/domain"
)

// IterativeSolver produces the same sequence as RecursiveSolver without recursion.
// Move i relocates disk tz(i)+1; each disk cycles through the pegs in a fixed
// direction set by the parity of its distance from the largest disk.
type IterativeSolver struct{}

func NewIterativeSolver() *IterativeSolver { return &IterativeSolver{} }

func (s *IterativeSolver) Solve(n int, from, to, via domain.Role) []domain.Move {
	if n <= 0 {
		return nil
	}
	var forward, backward [3]domain.Role
	forward[from], forward[to], forward[via] = to, via, from
	backward[from], backward[via], backward[to] = via, to, from

	pos := make([]domain.Role, n+1)
	for k := range pos {
		pos[k] = from
	}
	total := 1<<n - 1
	moves := make([]domain.Move, 0, total)
	for i := 1; i <= total; i++ {
		k := bits.TrailingZeros(uint(i)) + 1
		next := forward
		if (n-k)%2 == 1 {
			next = backward
		}
		m := domain.Move{From: pos[k], To: next[pos[k]]}
		pos[k] = m.To
		moves = append(moves, m)
	}
	return moves
}
