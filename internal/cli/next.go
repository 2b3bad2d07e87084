package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/primesieve/internal/sieve"
)

// NextOptions holds flags for the next command.
type NextOptions struct {
	*RootOptions
	Count int
}

// NextResult is the JSON payload of the next command.
type NextResult struct {
	Count  int      `json:"count"`
	Primes []uint64 `json:"primes"`
}

// NewNextCommand creates the next command.
func NewNextCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NextOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the first primes from the sieve",
		Long: `Print the first N primes, pulled one at a time from a fresh
incremental sieve.

Examples:
  primes next
  primes next --count 1000
  primes next --count 5 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				opts.Count = opts.Config.Count
			}
			return runNext(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 10, "number of primes to print")

	return cmd
}

func runNext(opts *NextOptions, cmd *cobra.Command) error {
	if opts.Count < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--count must be non-negative, got %d", opts.Count))
	}

	gen := sieve.New()
	f := opts.formatter(cmd)

	if opts.Format == "json" {
		primes := gen.Take(opts.Count)
		if primes == nil {
			primes = []uint64{}
		}
		slog.Debug("primes generated", "count", len(primes), "pending", gen.Pending())
		return f.Success(NextResult{Count: len(primes), Primes: primes})
	}

	// Text output streams, so large counts print as they are found.
	w := cmd.OutOrStdout()
	printed := 0
	if opts.Count > 0 {
		for p := range gen.All() {
			fmt.Fprintln(w, p)
			printed++
			if printed == opts.Count {
				break
			}
		}
	}
	slog.Debug("primes generated", "count", printed, "pending", gen.Pending())
	return nil
}
