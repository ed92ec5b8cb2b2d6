package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
	"svw.info/hanoi/internal/usecase"
)

// SurrenderKey ends the game and hands it to the solver.
const SurrenderKey = "R"

// Outcome tells how a session ended.
type Outcome int

const (
	Abandoned Outcome = iota
	Solved
	Surrendered
)

func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Surrendered:
		return "surrendered"
	default:
		return "abandoned"
	}
}

// Result summarises a finished session.
type Result struct {
	Outcome    Outcome
	Difficulty domain.Difficulty
	Moves      int // accepted player moves
	AutoMoves  int // moves made by the solver after surrender
}

type Options struct {
	// Difficulty preselects a preset letter and skips the menu when set.
	Difficulty string
	Surrender  usecase.SurrenderMode
}

// Handler runs one interactive session: difficulty menu, then the turn loop.
type Handler struct {
	In        ports.LineReader
	View      *View
	Solver    ports.Solver
	Resumer   ports.Resumer
	Validator ports.Validator

	log  *zap.Logger
	opts Options
}

func New(in ports.LineReader, view *View, s ports.Solver, r ports.Resumer, v ports.Validator, log *zap.Logger, opts Options) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{In: in, View: view, Solver: s, Resumer: r, Validator: v, log: log, opts: opts}
}

// Run plays until the puzzle is solved, the player surrenders, input ends or ctx is done.
func (h *Handler) Run(ctx context.Context) (Result, error) {
	diff, err := h.chooseDifficulty(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{Outcome: Abandoned}, ctxErr
		}
		if errors.Is(err, io.EOF) {
			return Result{Outcome: Abandoned}, nil
		}
		return Result{}, fmt.Errorf("read difficulty: %w", err)
	}
	h.log.Info("session started", zap.Stringer("difficulty", diff), zap.Int("disks", diff.Disks()))

	g := usecase.NewGame(diff.Disks(), h.View, h.Solver, h.Resumer, h.Validator,
		usecase.WithLogger(h.log.Named("game")),
		usecase.WithSurrenderMode(h.opts.Surrender),
	)
	res := Result{Outcome: Abandoned, Difficulty: diff}

	for !g.IsSolved() {
		if err := ctx.Err(); err != nil {
			res.Moves = g.Moves()
			return res, err
		}
		h.View.Prompt()
		line, err := h.In.ReadLine(ctx)
		// A line typed before the interrupt is dropped, not played.
		if ctxErr := ctx.Err(); ctxErr != nil {
			res.Moves = g.Moves()
			return res, ctxErr
		}
		if err != nil {
			res.Moves = g.Moves()
			if errors.Is(err, io.EOF) {
				h.log.Info("input closed", zap.Int("moves", res.Moves))
				return res, nil
			}
			return res, fmt.Errorf("read move: %w", err)
		}

		cmd := strings.ToUpper(strings.TrimSpace(line))
		_, reason := g.CheckMove(cmd)
		switch {
		case reason == nil:
			if err := g.ApplyMove(cmd); err != nil {
				return res, err
			}
			continue
		case cmd != SurrenderKey:
			h.log.Debug("move rejected", zap.String("input", cmd), zap.Error(reason))
			h.View.Invalid()
			continue
		}

		h.View.Surrendered()
		steps, err := g.Surrender()
		res.Outcome = Surrendered
		res.Moves = g.Moves()
		res.AutoMoves = steps
		if err != nil {
			h.View.Failure(err)
			return res, nil
		}
		h.View.AutoSolved(steps, res.Moves, g.IsSolved())
		h.log.Info("session surrendered", zap.Int("moves", res.Moves), zap.Int("auto_moves", steps))
		return res, nil
	}

	res.Outcome = Solved
	res.Moves = g.Moves()
	h.View.Victory(res.Moves)
	h.log.Info("session solved", zap.Int("moves", res.Moves))
	return res, nil
}

func (h *Handler) chooseDifficulty(ctx context.Context) (domain.Difficulty, error) {
	if err := ctx.Err(); err != nil {
		return domain.Easy, err
	}
	if h.opts.Difficulty != "" {
		return domain.ParseDifficulty(h.opts.Difficulty), nil
	}
	h.View.DifficultyMenu()
	line, err := h.In.ReadLine(ctx)
	if err != nil {
		return domain.Easy, err
	}
	return domain.ParseDifficulty(line), nil
}
