// Package match defines pairing policies, the result type and the
// sentinel errors of the pipeline dispatcher.
package match

import (
	"errors"

	"github.com/katalvlaran/pairwise/hungarian"
)

// Sentinel errors introduced by this package; builder and solver errors
// pass through unchanged.
var (
	// ErrUnknownMode indicates a Mode value outside the declared enum.
	ErrUnknownMode = errors.New("match: unknown pairing mode")

	// ErrOddRoster indicates BipartiteSplit was requested for an odd
	// number of attendees; halves of different sizes cannot be perfectly
	// matched against each other.
	ErrOddRoster = errors.New("match: bipartite split requires an even roster")
)

// Mode selects how the solver's directed permutation is turned into
// pairs.
//
// Directed       – report every row as a directed pair; maximal total.
// MutualOnly     – report only 2-cycles; the rest become Unpaired.
// BipartiteSplit – solve across a half/half split; always mutual.
type Mode int

const (
	// Directed accepts the raw permutation as N directed pairs.
	Directed Mode = iota

	// MutualOnly keeps a pair only when the assignment is reciprocal.
	MutualOnly

	// BipartiteSplit matches the first half of the roster against the
	// second half, which makes every pair mutual by construction.
	BipartiteSplit
)

// Pair is one reported pairing. For mutual modes A < B; for Directed,
// A is the row and B its assigned column. Score is the compatibility
// score of the pair: the mean of the two directed scores, which equals
// either of them whenever the scoring rules are symmetric.
type Pair struct {
	A, B  int
	Score float64
}

// Result is the outcome of one Solve call.
//
// Assignment – the row→column permutation over roster indices. For
//
//	BipartiteSplit it is reconstructed from the half-to-half
//	matching and is an involution by construction.
//
// Pairs      – the reported pairs, in deterministic order (ascending A).
// Unpaired   – roster indices left without a mutual partner
//
//	(MutualOnly mode only; empty otherwise).
//
// Total      – sum of Pair.Score over Pairs.
type Result struct {
	Assignment hungarian.Assignment
	Pairs      []Pair
	Unpaired   []int
	Total      float64
}

// Options configures Solve; currently the pairing Mode only.
type Options struct {
	Mode Mode
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithMode selects the pairing policy. Unknown modes are rejected by
// Solve with ErrUnknownMode rather than panicking here, because Mode
// values may legitimately arrive from caller-side configuration.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// DefaultOptions returns the defaults used when no functional options
// are supplied: Directed pairing.
func DefaultOptions() Options {
	return Options{Mode: Directed}
}
