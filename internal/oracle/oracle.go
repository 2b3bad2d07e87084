package oracle

import (
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/roach88/primesieve/internal/sieve"
)

// Source produces primes in strictly increasing order, one per call.
// *sieve.Generator implements it.
type Source interface {
	Next() uint64
}

// Stats is a point-in-time view of an Oracle's cache.
type Stats struct {
	// LastPrime is the watermark: the most recent prime pulled, 0 if none.
	LastPrime uint64 `json:"last_prime"`

	// Cached is the number of primes in the cache.
	Cached int `json:"cached"`

	// Pulls is the total number of values pulled from the Source.
	Pulls uint64 `json:"pulls"`
}

// Oracle is a memoized primality test over a single prime Source.
type Oracle struct {
	mu        sync.Mutex
	src       Source
	primes    map[uint64]struct{}
	lastPrime uint64
	pulls     uint64

	limit  uint64
	logger *slog.Logger
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithSource replaces the default sieve.Generator. The Oracle takes
// ownership; the Source must not be pulled from elsewhere.
func WithSource(src Source) Option {
	return func(o *Oracle) {
		o.src = src
	}
}

// WithLimit sets the largest n Check accepts. Zero means no limit.
func WithLimit(limit uint64) Option {
	return func(o *Oracle) {
		o.limit = limit
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Oracle) {
		o.logger = logger
	}
}

// New creates an Oracle with its own Source, empty cache and zero watermark.
func New(opts ...Option) *Oracle {
	o := &Oracle{
		primes: make(map[uint64]struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.src == nil {
		o.src = sieve.New()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// IsPrime reports whether n is prime. 0 and 1 are not prime.
//
// Advances the Source until the watermark is at least n, then answers from
// the cache. Repeating a query, or asking about any n at or below the
// watermark, pulls nothing.
func (o *Oracle) IsPrime(n uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	pulled := o.advanceTo(n)
	_, ok := o.primes[n]

	if pulled > 0 {
		o.logger.Debug("sieve advanced",
			"n", n,
			"pulled", pulled,
			"last_prime", o.lastPrime,
			"cached", len(o.primes),
		)
	}
	return ok
}

// advanceTo pulls until lastPrime >= n. Caller must hold mu.
func (o *Oracle) advanceTo(n uint64) int {
	pulled := 0
	for o.lastPrime < n {
		p := o.src.Next()
		o.lastPrime = p
		o.primes[p] = struct{}{}
		o.pulls++
		pulled++
	}
	return pulled
}

// Check is IsPrime with the configured limit applied first. A query above
// the limit returns a *RangeError without touching the Source.
func (o *Oracle) Check(n uint64) (bool, error) {
	if o.limit > 0 && n > o.limit {
		return false, NewRangeError(n, o.limit)
	}
	return o.IsPrime(n), nil
}

// Limit returns the configured query limit, 0 if unlimited.
func (o *Oracle) Limit() uint64 {
	return o.limit
}

// Stats returns the current watermark, cache size and pull count.
func (o *Oracle) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Stats{
		LastPrime: o.lastPrime,
		Cached:    len(o.primes),
		Pulls:     o.pulls,
	}
}

// Known returns every cached prime in increasing order.
func (o *Oracle) Known() []uint64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Sorted(maps.Keys(o.primes))
}

// Default returns a shared Oracle for callers that do not need isolation.
// It is built on first use, so programs that never query it never sieve.
var Default = sync.OnceValue(func() *Oracle {
	return New()
})

// IsPrime queries Default.
func IsPrime(n uint64) bool {
	return Default().IsPrime(n)
}
