package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahmedmegahed65/linsolve/linsolve"
)

var (
	fPivot bool
	fWidth int
)

var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Solve an augmented matrix read from a file or stdin",
	Long: `Solve reads one matrix row per line, the last column holding the
constant term, and streams the elimination transcript to stdout.

    $ printf '2 1 5\n1 3 10\n' | linsolve solve
    $ linsolve solve system.txt --pivot`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&fPivot, "pivot", false, "repair zero pivots by swapping rows (logged as operations)")
	solveCmd.Flags().IntVar(&fWidth, "width", linsolve.DefaultCellWidth, "matrix snapshot cell width")
}

func runSolve(cmd *cobra.Command, args []string) error {
	var (
		text []byte
		err  error
	)
	if len(args) == 1 {
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read grid: %w", err)
	}

	coeffs, consts, err := linsolve.ParseGrid(string(text))
	if err != nil {
		return err
	}
	if len(coeffs) == 0 {
		log.Warn().Msg("empty grid, nothing to solve")
		return nil
	}
	log.Debug().Int("rows", len(coeffs)).Int("vars", len(coeffs[0])).Msg("grid parsed")

	opts := linsolve.DefaultOptions()
	opts.PartialPivoting = fPivot
	opts.CellWidth = fWidth

	start := time.Now()
	res, err := linsolve.Solve(coeffs, consts, cmd.OutOrStdout(), &opts)
	if err != nil {
		return err
	}
	log.Debug().
		Stringer("kind", res.Kind).
		Int("values", len(res.Values)).
		Dur("took", time.Since(start)).
		Msg("solve finished")
	return nil
}
