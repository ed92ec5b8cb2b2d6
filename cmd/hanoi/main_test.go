package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlay(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader("F\nOD\nOA\nDA\nOD\nAO\nAD\nOD\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	require.NoError(t, rootCmd.RunE(rootCmd, nil))

	got := ansi.Strip(out.String())
	assert.Contains(t, got, "Choose the difficulty level:")
	assert.Contains(t, got, "You made 7 moves.")
	assert.Empty(t, errOut.String(), "default log level keeps stderr quiet")
}

func TestRunPlayEnvPreset(t *testing.T) {
	t.Setenv("HANOI_GAME_DIFFICULTY", "N")
	t.Setenv("HANOI_GAME_SOLVER", "iterative")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("R\n"))
	rootCmd.SetOut(&out)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
	})

	require.NoError(t, rootCmd.RunE(rootCmd, nil))
	got := ansi.Strip(out.String())
	assert.NotContains(t, got, "Choose the difficulty level:")
	assert.Contains(t, got, "Solved automatically in 31 moves.")
}

func TestRunPlayRejectsBadConfig(t *testing.T) {
	t.Setenv("HANOI_GAME_SURRENDER", "quit")
	assert.Error(t, rootCmd.RunE(rootCmd, nil))
}

func TestRunMoves(t *testing.T) {
	var out bytes.Buffer
	movesCmd.SetOut(&out)
	t.Cleanup(func() {
		movesCmd.SetOut(nil)
		movesDisks = 3
	})

	movesDisks = 3
	require.NoError(t, movesCmd.RunE(movesCmd, nil))
	assert.Equal(t, "OD\nOA\nDA\nOD\nAO\nAD\nOD\n", out.String())

	out.Reset()
	movesDisks = 7
	require.NoError(t, movesCmd.RunE(movesCmd, nil))
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 127)

	movesDisks = maxListedDisks + 1
	assert.Error(t, movesCmd.RunE(movesCmd, nil))
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "hanoi dev\n", out.String())
}
