package solver

import "svw.info/hanoi/internal/domain"

// RecursiveSolver is the textbook divide-and-conquer solver.
type RecursiveSolver struct{}

func NewRecursiveSolver() *RecursiveSolver { return &RecursiveSolver{} }

// Solve returns the 2^n-1 moves carrying the top n disks of from onto to.
func (s *RecursiveSolver) Solve(n int, from, to, via domain.Role) []domain.Move {
	if n <= 0 {
		return nil
	}
	moves := make([]domain.Move, 0, 1<<n-1)
	var rec func(n int, from, to, via domain.Role)
	rec = func(n int, from, to, via domain.Role) {
		if n == 0 {
			return
		}
		rec(n-1, from, via, to)
		moves = append(moves, domain.Move{From: from, To: to})
		rec(n-1, via, to, from)
	}
	rec(n, from, to, via)
	return moves
}
