package usecase

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// State is the lifecycle phase of a game.
type State int

const (
	Playing State = iota
	Solved
	AutoSolving
)

func (s State) String() string {
	switch s {
	case Solved:
		return "solved"
	case AutoSolving:
		return "auto-solving"
	default:
		return "playing"
	}
}

// SurrenderMode picks what happens when the player gives up.
type SurrenderMode string

const (
	// SurrenderResume finishes the current position onto the destination peg.
	SurrenderResume SurrenderMode = "resume"
	// SurrenderLegacy runs AutoSolve(destination.Count(), destination, origin, auxiliary),
	// carrying whatever sits on the destination back to the origin.
	SurrenderLegacy SurrenderMode = "legacy"
)

var errNotConfigured = errors.New("usecase dependency not configured")

// Game owns the pegs and the player's move counter.
type Game struct {
	Solver    ports.Solver
	Resumer   ports.Resumer
	Validator ports.Validator
	View      ports.View

	log       *zap.Logger
	surrender SurrenderMode
	board     *domain.Board
	moves     int
	state     State
}

type Option func(*Game)

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

func WithSurrenderMode(m SurrenderMode) Option {
	return func(g *Game) {
		if m != "" {
			g.surrender = m
		}
	}
}

// NewGame stacks n disks on the origin peg, shows the board and prints the instructions.
func NewGame(n int, view ports.View, s ports.Solver, r ports.Resumer, v ports.Validator, opts ...Option) *Game {
	if view == nil {
		view = nopView{}
	}
	g := &Game{
		Solver:    s,
		Resumer:   r,
		Validator: v,
		View:      view,
		log:       zap.NewNop(),
		surrender: SurrenderResume,
		board:     domain.NewBoard(n),
	}
	for _, o := range opts {
		o(g)
	}
	if g.IsSolved() {
		g.state = Solved
	}
	g.log.Debug("game created", zap.Int("disks", n), zap.String("surrender", string(g.surrender)))
	g.Render()
	g.View.Instructions()
	return g
}

func (g *Game) Board() *domain.Board { return g.board }

// Moves counts accepted player moves. Auto-solve steps are not included.
func (g *Game) Moves() int { return g.moves }

func (g *Game) State() State { return g.state }

// IsSolved reports whether every disk sits on the destination peg.
func (g *Game) IsSolved() bool {
	return g.board.Peg(domain.Origin).Count() == 0 && g.board.Peg(domain.Auxiliary).Count() == 0
}

// CheckMove explains why code is not a legal move, or returns the decoded move.
func (g *Game) CheckMove(code string) (domain.Move, error) {
	if g.Validator == nil {
		return domain.Move{}, errNotConfigured
	}
	return g.Validator.Validate(g.board, code)
}

func (g *Game) ValidateMove(code string) bool {
	_, err := g.CheckMove(code)
	return err == nil
}

// ResolvePegByLetter maps O, D and A to their pegs.
func (g *Game) ResolvePegByLetter(letter byte) (*domain.Peg, error) {
	r, err := domain.ParseRole(letter)
	if err != nil {
		return nil, err
	}
	return g.board.Peg(r), nil
}

// ApplyMove performs a player move. Callers validate first; an invalid code here is a
// programming error and is returned rather than ignored.
func (g *Game) ApplyMove(code string) error {
	if g.state != Playing {
		return fmt.Errorf("apply %q: game is %s", code, g.state)
	}
	m, err := g.CheckMove(code)
	if err != nil {
		g.log.Error("apply unvalidated move", zap.String("code", code), zap.Error(err))
		return fmt.Errorf("apply %q: %w", code, err)
	}
	d, err := g.transfer(m)
	if err != nil {
		return fmt.Errorf("apply %q: %w", code, err)
	}
	g.moves++
	g.log.Debug("move applied", zap.String("move", m.Code()), zap.Int("disk", int(d)), zap.Int("moves", g.moves))
	g.View.Moved(d, m)
	g.Render()
	if g.IsSolved() {
		g.state = Solved
	}
	return nil
}

// AutoSolve carries the top n disks of from onto to, rendering after every step.
// It returns the number of steps taken.
func (g *Game) AutoSolve(n int, from, to, via domain.Role) (int, error) {
	if g.Solver == nil {
		return 0, errNotConfigured
	}
	return g.replay(g.Solver.Solve(n, from, to, via))
}

// Surrender hands the game to the solver and returns how many moves it made.
func (g *Game) Surrender() (int, error) {
	if g.state == Solved {
		return 0, nil
	}
	g.state = AutoSolving
	g.log.Debug("player surrendered", zap.Int("moves", g.moves), zap.String("mode", string(g.surrender)))

	var (
		steps int
		err   error
	)
	switch g.surrender {
	case SurrenderLegacy:
		dst := g.board.Peg(domain.Destination)
		steps, err = g.AutoSolve(dst.Count(), domain.Destination, domain.Origin, domain.Auxiliary)
	default:
		if g.Resumer == nil {
			return 0, errNotConfigured
		}
		var moves []domain.Move
		moves, err = g.Resumer.Resume(g.board, domain.Destination)
		if err == nil {
			steps, err = g.replay(moves)
		}
	}
	if err != nil {
		g.log.Error("auto-solve stopped", zap.Int("steps", steps), zap.Error(err))
		return steps, fmt.Errorf("surrender: %w", err)
	}
	if g.IsSolved() {
		g.state = Solved
	}
	return steps, nil
}

// Render shows the three pegs.
func (g *Game) Render() { g.View.Board(g.board) }

func (g *Game) replay(moves []domain.Move) (int, error) {
	for i, m := range moves {
		if _, err := g.transfer(m); err != nil {
			return i, fmt.Errorf("step %d (%s): %w", i+1, m, err)
		}
		g.Render()
	}
	return len(moves), nil
}

// transfer moves one disk and restores the source if the destination refuses it.
func (g *Game) transfer(m domain.Move) (domain.Disk, error) {
	src, dst := g.board.Peg(m.From), g.board.Peg(m.To)
	d := src.Pop()
	if d == domain.NoDisk {
		return d, domain.ErrEmptySource
	}
	if !dst.Push(d) {
		src.Push(d)
		return d, domain.ErrLargerOnSmaller
	}
	return d, nil
}

type nopView struct{}

func (nopView) Board(*domain.Board)            {}
func (nopView) Instructions()                  {}
func (nopView) Moved(domain.Disk, domain.Move) {}
