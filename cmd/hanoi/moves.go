package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/hanoi/internal/domain"
)

const maxListedDisks = 20

var movesDisks int

// movesCmd prints the optimal move sequence without playing.
var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Print the optimal move codes for a tower",
	Long: `Print the minimal solution moving every disk from the origin peg to the
destination peg, one move code per line.

Examples:
  # The 7 moves for three disks
  hanoi moves --disks 3

  # Same sequence, produced without recursion
  hanoi moves --disks 7 --solver iterative`,
	Args: cobra.NoArgs,
	RunE: runMoves,
}

func init() {
	movesCmd.Flags().IntVarP(&movesDisks, "disks", "n", domain.Easy.Disks(), "number of disks")
}

func runMoves(cmd *cobra.Command, _ []string) error {
	if movesDisks < 0 || movesDisks > maxListedDisks {
		return fmt.Errorf("disks must be between 0 and %d, got %d", maxListedDisks, movesDisks)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, m := range newSolver(cfg.Game.Solver).Solve(movesDisks, domain.Origin, domain.Destination, domain.Auxiliary) {
		fmt.Fprintln(out, m.Code())
	}
	return nil
}
