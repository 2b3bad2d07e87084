// Package sieve implements an incremental Sieve of Eratosthenes.
//
// Unlike the classical sieve, the Generator has no upper bound. It keeps a
// sparse registry that maps each upcoming composite to the primes whose
// current multiple it is. Every prime owns exactly one live entry once its
// square has been registered, so memory grows with the number of primes
// found (O(π(n))) rather than with the largest number examined.
//
// ALGORITHM:
//
// For each cursor value starting at 2:
//   - cursor not in the registry: it is prime. Register cursor² with
//     [cursor] and emit cursor.
//   - cursor in the registry: it is composite. Move every recorded factor f
//     to cursor+f, then delete the entry at cursor.
//
// The cursor advances by one each step. There is no skip-even optimization.
//
// The stream is pull-based and non-restartable: Next, Take and All all
// consume the same underlying sequence.
//
// Thread-safety: a Generator is NOT safe for concurrent use. Callers that
// share one (see package oracle) must serialize access themselves.
package sieve
