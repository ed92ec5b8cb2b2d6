package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
	"svw.info/hanoi/internal/validator"
)

// play applies moves to b, failing on the first one a player would not be allowed to make.
func play(t *testing.T, b *domain.Board, moves []domain.Move) {
	t.Helper()
	v := validator.New()
	for i, m := range moves {
		_, err := v.Validate(b, m.Code())
		require.NoError(t, err, "move %d (%s)", i, m)
		require.True(t, b.Peg(m.To).Push(b.Peg(m.From).Pop()), "move %d (%s)", i, m)
	}
}

func codes(moves []domain.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Code()
	}
	return strings.Join(parts, " ")
}

func solvers() map[string]ports.Solver {
	return map[string]ports.Solver{
		"recursive": NewRecursiveSolver(),
		"iterative": NewIterativeSolver(),
	}
}

func TestSolveThreeDisks(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			got := s.Solve(3, domain.Origin, domain.Destination, domain.Auxiliary)
			assert.Equal(t, "OD OA DA OD AO AD OD", codes(got))
		})
	}
}

func TestSolveMinimalAndLegal(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			for n := 0; n <= 7; n++ {
				b := domain.NewBoard(n)
				moves := s.Solve(n, domain.Origin, domain.Destination, domain.Auxiliary)
				require.Len(t, moves, 1<<n-1, "n=%d", n)
				play(t, b, moves)

				assert.Equal(t, 0, b.Peg(domain.Origin).Count())
				assert.Equal(t, 0, b.Peg(domain.Auxiliary).Count())
				assert.Equal(t, domain.NewPeg(n).Disks(), b.Peg(domain.Destination).Disks())
			}
		})
	}
}

func TestIterativeMatchesRecursive(t *testing.T) {
	rec, it := NewRecursiveSolver(), NewIterativeSolver()
	roles := [][3]domain.Role{
		{domain.Origin, domain.Destination, domain.Auxiliary},
		{domain.Destination, domain.Origin, domain.Auxiliary},
		{domain.Auxiliary, domain.Destination, domain.Origin},
	}
	for _, r := range roles {
		for n := 0; n <= 7; n++ {
			assert.Equal(t, rec.Solve(n, r[0], r[1], r[2]), it.Solve(n, r[0], r[1], r[2]), "n=%d roles=%v", n, r)
		}
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	s := NewRecursiveSolver()
	assert.Equal(t, s.Solve(5, domain.Origin, domain.Destination, domain.Auxiliary),
		s.Solve(5, domain.Origin, domain.Destination, domain.Auxiliary))
}

func TestResumeFromStart(t *testing.T) {
	r := NewResumer(NewRecursiveSolver())
	for n := 0; n <= 7; n++ {
		got, err := r.Resume(domain.NewBoard(n), domain.Destination)
		require.NoError(t, err)
		assert.Equal(t, NewRecursiveSolver().Solve(n, domain.Origin, domain.Destination, domain.Auxiliary), got, "n=%d", n)
	}
}

func TestResumeAlongOptimalPath(t *testing.T) {
	const n = 5
	optimal := NewRecursiveSolver().Solve(n, domain.Origin, domain.Destination, domain.Auxiliary)
	r := NewResumer(NewIterativeSolver())

	for i := 0; i <= len(optimal); i++ {
		b := domain.NewBoard(n)
		play(t, b, optimal[:i])

		rest, err := r.Resume(b, domain.Destination)
		require.NoError(t, err)
		assert.Len(t, rest, len(optimal)-i, "after %d moves", i)

		play(t, b, rest)
		assert.Equal(t, n, b.Peg(domain.Destination).Count())
	}
}

func TestResumeOffPath(t *testing.T) {
	// disks moved the "wrong" way: 3 and 2 on auxiliary, 1 on destination
	b, err := domain.BoardOf(nil, []domain.Disk{1}, []domain.Disk{3, 2})
	require.NoError(t, err)

	moves, err := NewResumer(NewRecursiveSolver()).Resume(b, domain.Destination)
	require.NoError(t, err)
	// park 2 and 1 on origin, 3 to destination, carry the pair back over
	assert.Equal(t, "AO DO AD OA OD AD", codes(moves))
	play(t, b, moves)
	assert.Equal(t, []domain.Disk{3, 2, 1}, b.Peg(domain.Destination).Disks())
}

func TestResumeLeavesBoardUntouched(t *testing.T) {
	b := domain.NewBoard(4)
	_, err := NewResumer(NewRecursiveSolver()).Resume(b, domain.Destination)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Peg(domain.Origin).Count())
}

func TestResumeRejectsIllegalBoard(t *testing.T) {
	b, err := domain.BoardOf([]domain.Disk{5}, nil, nil)
	require.NoError(t, err)
	_, err = NewResumer(NewRecursiveSolver()).Resume(b, domain.Destination)
	assert.ErrorIs(t, err, domain.ErrIllegalPosition)
}
