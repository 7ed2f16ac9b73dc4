// Command linsolve is a terminal front end for the exact-rational linear
// system solver: it turns a text grid (last column = constants) into a
// step-by-step elimination transcript on stdout.
//
// Diagnostics go to stderr through zerolog; the transcript itself is plain
// program output and stays clean for piping.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var log zerolog.Logger

var fVerbose bool

var rootCmd = &cobra.Command{
	Use:   "linsolve",
	Short: "Reduce linear systems with exact rational arithmetic",
	Long: `linsolve reads an augmented coefficient matrix (the last column holds
the constants) and reduces it to reduced row-echelon form using exact
rational arithmetic, printing every elementary row operation along the way.

Cells may be integers (3), decimals (2.75) or fractions (-7/4); in
comma-separated rows an empty cell means zero.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if fVerbose {
			log = log.Level(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&fVerbose, "verbose", "v", false, "enable debug diagnostics on stderr")
	rootCmd.AddCommand(gridCmd, solveCmd)
}

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	log = zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("invalid input")
		os.Exit(1)
	}
}
