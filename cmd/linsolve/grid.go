package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	fRows int
	fCols int
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print a zero-filled grid template",
	Long: `Grid prints a rows x cols template of zeros to fill in and feed back
to "linsolve solve". The last column is the constants column, so a system
of N variables needs N+1 total columns.`,
	Args: cobra.NoArgs,
	RunE: runGrid,
}

func init() {
	gridCmd.Flags().IntVar(&fRows, "rows", 3, "number of equations")
	gridCmd.Flags().IntVar(&fCols, "cols", 4, "total columns, coefficients plus the constants column")
}

func runGrid(cmd *cobra.Command, args []string) error {
	if fRows < 1 || fCols < 2 {
		return fmt.Errorf("rows must be >= 1 and total columns >= 2, got %dx%d", fRows, fCols)
	}

	cells := make([]string, fCols)
	for i := range cells {
		cells[i] = "0"
	}
	line := strings.Join(cells, " ")
	out := cmd.OutOrStdout()
	for i := 0; i < fRows; i++ {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
