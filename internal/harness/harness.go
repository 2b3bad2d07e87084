package harness

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/primesieve/internal/oracle"
	"github.com/roach88/primesieve/internal/sieve"
	"github.com/roach88/primesieve/internal/testutil"
)

// Harness executes one scenario with deterministic helpers.
type Harness struct {
	oracle *oracle.Oracle
	source *testutil.CountingSource
	gen    *sieve.Generator
	clock  *testutil.StepClock
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each run starts from a fresh Oracle, source and Generator. The returned
// error is reserved for execution failures; expectation and assertion
// failures are recorded in Result.Errors with Pass set to false.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with an explicit logger for the Oracle and step output.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}

	tokens := testutil.NewFixedTokenGenerator(scenario.RunToken)
	src := testutil.NewCountingSource(sieve.New())

	h := &Harness{
		oracle: oracle.New(
			oracle.WithSource(src),
			oracle.WithLimit(scenario.Limit),
			oracle.WithLogger(logger),
		),
		source: src,
		gen:    sieve.New(),
		clock:  testutil.NewStepClock(),
		logger: logger,
	}

	result := NewResult(tokens.Generate())
	for i, step := range scenario.Steps {
		if err := h.executeStep(i, step, result); err != nil {
			return nil, fmt.Errorf("failed to execute step %d: %w", i, err)
		}
	}

	result.Stats = h.oracle.Stats()
	result.Generated = h.gen.Pulled()

	for _, msg := range EvaluateAssertions(result, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

func (h *Harness) executeStep(i int, step Step, result *Result) error {
	seq := h.clock.Tick()

	switch {
	case step.IsPrime != nil:
		h.executeQuery(i, seq, *step.IsPrime, step, result)
	case step.Next != nil:
		primes := h.gen.Take(*step.Next)
		if primes == nil {
			primes = []uint64{}
		}
		result.AddNextTrace(seq, primes)
		h.logger.Debug("next executed", "step", i, "count", len(primes))

		if step.ExpectPrimes != nil && !slices.Equal(step.ExpectPrimes, primes) {
			result.AddError(fmt.Sprintf("steps[%d]: next %d: expected %v, got %v", i, *step.Next, step.ExpectPrimes, primes))
		}
	default:
		return fmt.Errorf("step has neither is_prime nor next")
	}
	return nil
}

func (h *Harness) executeQuery(i int, seq int64, n uint64, step Step, result *Result) {
	before := h.source.Count()
	got, err := h.oracle.Check(n)
	pulled := h.source.Count() - before

	if err != nil {
		code := errorCode(err)
		result.AddRejectedTrace(seq, n, code)
		h.logger.Debug("query rejected", "step", i, "n", n, "code", code)

		if step.ExpectError != code {
			result.AddError(fmt.Sprintf("steps[%d]: is_prime %d: unexpected error: %v", i, n, err))
		}
		return
	}

	result.AddQueryTrace(seq, n, got, pulled)
	h.logger.Debug("query executed", "step", i, "n", n, "result", got, "pulled", pulled)

	if step.ExpectError != "" {
		result.AddError(fmt.Sprintf("steps[%d]: is_prime %d: expected error %s, got %v", i, n, step.ExpectError, got))
		return
	}
	if step.Expect != nil && *step.Expect != got {
		result.AddError(fmt.Sprintf("steps[%d]: is_prime %d: expected %v, got %v", i, n, *step.Expect, got))
	}
}

// errorCode maps an oracle error to its scenario code.
func errorCode(err error) string {
	if oracle.IsRangeError(err) {
		return string(oracle.ErrCodeOutOfRange)
	}
	return "UNKNOWN"
}
