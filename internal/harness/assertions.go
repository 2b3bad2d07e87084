package harness

import (
	"fmt"
	"strings"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []TraceEvent
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, event := range e.Trace {
			switch event.Kind {
			case KindQuery:
				if event.Error != "" {
					fmt.Fprintf(&buf, "  [%d] is_prime %d -> %s\n", event.Seq, event.N, event.Error)
				} else {
					fmt.Fprintf(&buf, "  [%d] is_prime %d -> %v (pulled %d)\n", event.Seq, event.N, event.Result, event.Pulled)
				}
			case KindNext:
				fmt.Fprintf(&buf, "  [%d] next %d\n", event.Seq, event.Count)
			}
		}
	}

	return buf.String()
}

// EvaluateAssertions checks every assertion and returns failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	var errs []string
	for _, a := range assertions {
		if err := evaluateAssertion(result, a); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

func evaluateAssertion(result *Result, a Assertion) error {
	var actual uint64
	switch a.Type {
	case AssertLastPrime:
		actual = result.Stats.LastPrime
	case AssertCacheSize:
		actual = uint64(result.Stats.Cached)
	case AssertPulls:
		actual = result.Stats.Pulls
	case AssertGenerated:
		actual = result.Generated
	case AssertTraceCount:
		actual = countKind(result.Trace, a.Kind)
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}

	if actual == a.Value {
		return nil
	}

	expected := fmt.Sprintf("%s = %d", a.Type, a.Value)
	if a.Type == AssertTraceCount {
		expected = fmt.Sprintf("%d %s events", a.Value, a.Kind)
	}
	return &AssertionError{
		Type:     a.Type,
		Expected: expected,
		Actual:   fmt.Sprintf("%d", actual),
		Trace:    result.Trace,
	}
}

func countKind(trace []TraceEvent, kind string) uint64 {
	var n uint64
	for _, e := range trace {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
