package sieve

import (
	"errors"
	"iter"
	"math"
)

// ErrExhausted is the panic value raised when the cursor would move past
// math.MaxUint64. Reaching it means every representable integer was examined.
var ErrExhausted = errors.New("sieve: cursor exhausted uint64 range")

// Generator produces primes in strictly increasing order, starting at 2.
type Generator struct {
	// cursor is the next integer to examine.
	cursor uint64

	// composites maps an upcoming composite to the primes that divide it.
	composites map[uint64][]uint64

	// pulled counts primes emitted so far.
	pulled uint64
}

// New creates a Generator positioned before 2.
func New() *Generator {
	return &Generator{
		cursor:     2,
		composites: make(map[uint64][]uint64),
	}
}

// Next returns the next prime. It never returns a value twice and never
// stops on its own; demand is controlled by the caller.
//
// Panics with ErrExhausted if the cursor overflows uint64.
func (g *Generator) Next() uint64 {
	for {
		n := g.cursor
		factors, composite := g.composites[n]

		if !composite {
			g.markPrime(n)
			g.advance()
			g.pulled++
			return n
		}

		for _, f := range factors {
			g.push(n, f)
		}
		delete(g.composites, n)
		g.advance()
	}
}

// markPrime registers the first multiple of p not already marked by a
// smaller prime. Squares beyond uint64 can never be reached by the cursor.
func (g *Generator) markPrime(p uint64) {
	if p > math.MaxUint32 {
		return
	}
	sq := p * p
	g.composites[sq] = append(g.composites[sq], p)
}

// push moves factor f from composite n to its next multiple.
func (g *Generator) push(n, f uint64) {
	if n > math.MaxUint64-f {
		return
	}
	next := n + f
	g.composites[next] = append(g.composites[next], f)
}

func (g *Generator) advance() {
	if g.cursor == math.MaxUint64 {
		panic(ErrExhausted)
	}
	g.cursor++
}

// All returns a range-over-func view of the remaining primes.
//
// The sequence shares state with the Generator: breaking out of a range loop
// leaves the Generator positioned just after the last value yielded, and a
// later Next or All resumes from there.
func (g *Generator) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			if !yield(g.Next()) {
				return
			}
		}
	}
}

// Take pulls the next n primes. Returns nil for n <= 0.
func (g *Generator) Take(n int) []uint64 {
	if n <= 0 {
		return nil
	}
	out := make([]uint64, 0, n)
	for range n {
		out = append(out, g.Next())
	}
	return out
}

// Pulled returns how many primes have been produced.
func (g *Generator) Pulled() uint64 {
	return g.pulled
}

// Cursor returns the next integer the Generator will examine.
func (g *Generator) Cursor() uint64 {
	return g.cursor
}

// Pending returns the number of live registry entries.
func (g *Generator) Pending() int {
	return len(g.composites)
}
