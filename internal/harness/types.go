package harness

import "github.com/roach88/primesieve/internal/oracle"

// Trace event kinds.
const (
	KindQuery = "query"
	KindNext  = "next"
)

// TraceEvent records one executed step.
type TraceEvent struct {
	Kind string `json:"kind"`
	Seq  int64  `json:"seq"`

	// N is the queried integer (query events).
	N uint64 `json:"n,omitempty"`

	// Result is the oracle's answer (query events).
	Result bool `json:"result,omitempty"`

	// Pulled is how many primes the oracle pulled to answer (query events).
	Pulled int `json:"pulled,omitempty"`

	// Error is the error code when the query was rejected.
	Error string `json:"error,omitempty"`

	// Count and Primes describe a next event.
	Count  int      `json:"count,omitempty"`
	Primes []uint64 `json:"primes,omitempty"`
}

// CanonicalValue implements canon.Canonicalizer.
func (e TraceEvent) CanonicalValue() any {
	m := map[string]any{
		"kind": e.Kind,
		"seq":  e.Seq,
	}
	switch e.Kind {
	case KindQuery:
		m["n"] = e.N
		if e.Error != "" {
			m["error"] = e.Error
			return m
		}
		m["result"] = e.Result
		m["pulled"] = e.Pulled
	case KindNext:
		m["count"] = e.Count
		primes := e.Primes
		if primes == nil {
			primes = []uint64{}
		}
		m["primes"] = primes
	}
	return m
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation and assertion held.
	Pass bool `json:"pass"`

	// RunToken identifies the run.
	RunToken string `json:"run_token"`

	// Trace contains one event per step, in execution order.
	Trace []TraceEvent `json:"trace"`

	// Errors holds expectation and assertion failures.
	Errors []string `json:"errors,omitempty"`

	// Stats is the Oracle's state after the last step.
	Stats oracle.Stats `json:"stats"`

	// Generated is how many primes next steps pulled in total.
	Generated uint64 `json:"generated"`
}

// NewResult creates a passing result with an empty trace.
func NewResult(runToken string) *Result {
	return &Result{
		Pass:     true,
		RunToken: runToken,
		Trace:    []TraceEvent{},
		Errors:   []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddQueryTrace appends a query event.
func (r *Result) AddQueryTrace(seq int64, n uint64, result bool, pulled int) {
	r.Trace = append(r.Trace, TraceEvent{
		Kind:   KindQuery,
		Seq:    seq,
		N:      n,
		Result: result,
		Pulled: pulled,
	})
}

// AddRejectedTrace appends a query event that failed with code.
func (r *Result) AddRejectedTrace(seq int64, n uint64, code string) {
	r.Trace = append(r.Trace, TraceEvent{
		Kind:  KindQuery,
		Seq:   seq,
		N:     n,
		Error: code,
	})
}

// AddNextTrace appends a next event.
func (r *Result) AddNextTrace(seq int64, primes []uint64) {
	r.Trace = append(r.Trace, TraceEvent{
		Kind:   KindNext,
		Seq:    seq,
		Count:  len(primes),
		Primes: primes,
	})
}
