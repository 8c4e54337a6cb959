// Package pairwise turns a roster of conference attendees into an optimal
// one-to-one pairing — a weighted compatibility score per pair, and an
// exact minimum-cost assignment over the resulting matrix.
//
// 🚀 What is pairwise?
//
//	A small, deterministic, dependency-lean library that brings together:
//		• score/     — attribute scoring: exact-match weights, similarity
//		  sets, ordinal company-size tiers, threshold suppression → dense
//		  N×N cost matrix
//		• hungarian/ — exact Kuhn–Munkres assignment solver (O(N³), dual
//		  potentials, deterministic tie-breaks)
//		• match/     — the glue: build → solve → pairs, with directed,
//		  mutual-only and bipartite-split pairing policies plus a plain
//		  text report
//		• roster/    — seeded synthetic attendee generation for tests,
//		  examples and benchmarks
//
// ✨ Why choose pairwise?
//
//   - Exact, not heuristic – the solver returns a provably minimum-cost
//     perfect matching, verified against brute force in tests
//   - Deterministic – same roster + same config ⇒ same pairs, always
//   - Pure Go – no cgo, no hidden deps
//   - Data-driven scoring – every weight, similarity set and tier order
//     lives in one Config value, independently testable
//
// Typical flow:
//
//	attendees, _ := roster.Generate(64, roster.WithSeed(7))
//	res, err := match.Solve(attendees, score.DefaultConfig(),
//	    match.WithMode(match.MutualOnly))
//	if err != nil { ... }
//	fmt.Print(match.Format(res, attendees))
//
// Dive into examples/ for full scenarios, and each package's doc.go for
// contracts, complexity and error semantics.
//
//	go get github.com/katalvlaran/pairwise
package pairwise
