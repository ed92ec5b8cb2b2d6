package ports

import (
	"context"

	"svw.info/hanoi/internal/domain"
)

// Solver generates the move sequence transferring n disks from one peg to another.
type Solver interface {
	Solve(n int, from, to, via domain.Role) []domain.Move
}

// Resumer computes the shortest sequence gathering every disk of a legal board on target.
type Resumer interface {
	Resume(b *domain.Board, target domain.Role) ([]domain.Move, error)
}

// Validator checks a move command against the board.
type Validator interface {
	Validate(b *domain.Board, code string) (domain.Move, error)
}

// View receives everything the game shows to the player.
type View interface {
	Board(b *domain.Board)
	Instructions()
	Moved(d domain.Disk, m domain.Move)
}

// LineReader supplies one line of player input at a time. It returns io.EOF when input
// ends and ctx.Err() when ctx is done before a line arrives.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}
