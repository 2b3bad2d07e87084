// Package oracle answers "is n prime?" by extending a sieve on demand.
//
// An Oracle owns one prime Source (a sieve.Generator by default), a set of
// every prime pulled so far, and the last prime pulled (the watermark).
// A query for n pulls from the Source while the watermark is below n, then
// checks set membership:
//
//	for lastPrime < n {
//	    lastPrime = src.Next()
//	    primes[lastPrime] = struct{}{}
//	}
//	return primes[n]
//
// Queries at or below the watermark are a single map lookup. Larger queries
// pay only for the sieve work between the watermark and n. The cache is never
// pruned, which is what makes trusting it for n <= lastPrime correct.
//
// Oracle methods are safe for concurrent use. A mutex covers the full
// pull-then-lookup sequence so the watermark and the set always move
// together.
package oracle
