package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/primesieve/internal/oracle"
)

// Error codes reported by is-prime.
const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeOutOfRange      = string(oracle.ErrCodeOutOfRange)
)

// IsPrimeOptions holds flags for the is-prime command.
type IsPrimeOptions struct {
	*RootOptions
	MaxQuery uint64
}

// QueryResult is one answered query.
type QueryResult struct {
	N     uint64 `json:"n"`
	Prime bool   `json:"prime"`
}

// IsPrimeResult is the JSON payload of the is-prime command.
type IsPrimeResult struct {
	Results []QueryResult `json:"results"`
	Stats   oracle.Stats  `json:"stats"`
}

// NewIsPrimeCommand creates the is-prime command.
func NewIsPrimeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &IsPrimeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "is-prime <n>...",
		Short: "Test integers for primality",
		Long: `Test one or more non-negative integers for primality.

All arguments are answered by one oracle, so later arguments reuse the
primes sieved for earlier ones.

Exit codes:
  0 - All arguments answered
  2 - Invalid argument or query above --max-query

Examples:
  primes is-prime 97
  primes is-prime 2 4 97 100 7919
  primes is-prime 1000003 --max-query 1000000`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-query") {
				opts.MaxQuery = opts.Config.MaxQuery
			}
			return runIsPrime(opts, args, cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.MaxQuery, "max-query", 0, "reject queries above this value (0 = unlimited)")

	return cmd
}

func runIsPrime(opts *IsPrimeOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	// Parse everything first so a bad argument fails before any sieve work.
	ns := make([]uint64, len(args))
	for i, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			msg := fmt.Sprintf("invalid argument %q: must be a non-negative integer", arg)
			if opts.Format == "json" {
				_ = f.Error(ErrCodeInvalidArgument, msg, nil)
			}
			return WrapExitError(ExitCommandError, msg, err)
		}
		ns[i] = n
	}

	o := oracle.New(
		oracle.WithLimit(opts.MaxQuery),
		oracle.WithLogger(slog.Default()),
	)

	results := make([]QueryResult, 0, len(ns))
	for _, n := range ns {
		prime, err := o.Check(n)
		if err != nil {
			if opts.Format == "json" {
				_ = f.Error(ErrCodeOutOfRange, err.Error(), map[string]uint64{"n": n, "limit": o.Limit()})
			}
			return WrapExitError(ExitCommandError, fmt.Sprintf("cannot test %d", n), err)
		}
		results = append(results, QueryResult{N: n, Prime: prime})
	}

	stats := o.Stats()
	f.VerboseLog("sieved %d primes, largest %d", stats.Cached, stats.LastPrime)

	if opts.Format == "json" {
		return f.Success(IsPrimeResult{Results: results, Stats: stats})
	}

	w := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(w, "%d: %v\n", r.N, r.Prime)
	}
	return nil
}
