package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove is wrapped by every reason a move command is rejected.
	ErrInvalidMove = errors.New("invalid move")

	ErrMoveFormat      = fmt.Errorf("%w: move must be two peg letters", ErrInvalidMove)
	ErrInvalidLetter   = fmt.Errorf("%w: unknown peg letter", ErrInvalidMove)
	ErrSamePeg         = fmt.Errorf("%w: source and destination are the same peg", ErrInvalidMove)
	ErrEmptySource     = fmt.Errorf("%w: source peg is empty", ErrInvalidMove)
	ErrLargerOnSmaller = fmt.Errorf("%w: disk is larger than the destination top", ErrInvalidMove)

	// ErrIllegalPosition reports a board that does not hold disks 1..n in stacking order.
	ErrIllegalPosition = errors.New("illegal position")
)

// LetterError carries the offending byte of a peg lookup.
type LetterError struct {
	Letter byte
}

func (e *LetterError) Error() string {
	return fmt.Sprintf("unknown peg letter %q", e.Letter)
}

func (e *LetterError) Unwrap() error { return ErrInvalidLetter }
