// SPDX-License-Identifier: MIT
// Package roster generates deterministic synthetic attendee rosters for
// tests, examples and benchmarks.
//
// Design:
//   - Determinism is explicit: a fixed default seed is used unless the
//     caller provides WithSeed or WithRand; same seed ⇒ same roster.
//   - Attribute pools default to the vocabulary of score.DefaultConfig,
//     so generated rosters always pass score.Build validation out of the
//     box; every pool can be overridden by a functional option.
//   - IDs are assigned 0..n-1 in roster order, matching the matrix index
//     convention of the score package.
//
// Concurrency: *rand.Rand is not goroutine-safe; do not share one Rand
// across concurrent Generate calls — use distinct seeds instead.
//
// Example usage:
//
//	attendees, err := roster.Generate(128,
//	    roster.WithSeed(42),
//	    roster.WithCountries("DE", "FR", "PL"),
//	)
package roster
