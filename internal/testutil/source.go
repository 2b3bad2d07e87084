package testutil

import (
	"sync"

	"github.com/roach88/primesieve/internal/sieve"
)

// PrimeSource is the pull interface shared by sieve.Generator and the
// oracle's Source.
type PrimeSource interface {
	Next() uint64
}

// CountingSource wraps a PrimeSource and records every value pulled through
// it. Tests use it to observe how much sieve work a query caused.
//
// Thread-safety: safe for concurrent use; the wrapped source is only ever
// called under the mutex.
type CountingSource struct {
	mu     sync.Mutex
	inner  PrimeSource
	pulled []uint64
}

// NewCountingSource wraps inner, or a fresh sieve.Generator when inner is nil.
func NewCountingSource(inner PrimeSource) *CountingSource {
	if inner == nil {
		inner = sieve.New()
	}
	return &CountingSource{inner: inner}
}

// Next pulls from the wrapped source and records the value.
func (s *CountingSource) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.inner.Next()
	s.pulled = append(s.pulled, p)
	return p
}

// Count returns how many values have been pulled.
func (s *CountingSource) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pulled)
}

// Pulled returns a copy of every value pulled, in order.
func (s *CountingSource) Pulled() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uint64, len(s.pulled))
	copy(out, s.pulled)
	return out
}
