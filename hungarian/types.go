// Package hungarian defines the result type, configuration options and
// sentinel errors for the assignment solver.
package hungarian

import (
	"errors"
	"math"
)

// Sentinel errors returned by Solve. Callers match them via errors.Is;
// Solve wraps them with positional context only where it helps.
var (
	// ErrEmptyMatrix indicates a zero-order matrix was passed to Solve.
	ErrEmptyMatrix = errors.New("hungarian: empty cost matrix")

	// ErrNonSquare indicates that row lengths do not equal the row count.
	// Reaching the solver with such a matrix is a builder/solver contract
	// violation, not a recoverable user condition.
	ErrNonSquare = errors.New("hungarian: cost matrix is not square")

	// ErrRaggedMatrix indicates rows of mutually different lengths.
	ErrRaggedMatrix = errors.New("hungarian: cost matrix rows differ in length")

	// ErrNaNCost indicates a NaN or −Inf entry; potential arithmetic is
	// undefined for both.
	ErrNaNCost = errors.New("hungarian: NaN or -Inf cost entry")

	// ErrTooLarge indicates the matrix order exceeds Options.MaxOrder;
	// the solver fails fast rather than start an oversized O(N³) run.
	ErrTooLarge = errors.New("hungarian: matrix order exceeds configured maximum")

	// ErrInfeasible indicates that every perfect matching uses at least
	// one forbidden edge. With a finite sentinel policy and only the
	// diagonal forbidden this cannot occur for N ≥ 2, but it is checked
	// rather than assumed.
	ErrInfeasible = errors.New("hungarian: no feasible perfect matching")
)

// MaxOrder is the default upper bound on the matrix order N. The O(N³)
// solve is cheap for the intended scale (hundreds); the bound exists so
// a degenerate caller fails fast instead of silently degrading.
const MaxOrder = 4096

// Assignment maps each row index to its assigned column index; it is a
// permutation of {0..N-1}. Because both axes usually enumerate the same
// entity set, Assignment[i] == j does not imply Assignment[j] == i —
// the matching is directed. See the match package for mutual-pairing
// policies built on top of this.
type Assignment []int

// Options configures Solve.
//
// ForbiddenAt – entries ≥ this value are forbidden edges. Default +Inf:
//
//	only true infinities are forbidden. Wire in a builder's
//	sentinel to make suppressed pairs hard-forbidden.
//
// MaxOrder    – maximum accepted matrix order. Default MaxOrder (4096).
type Options struct {
	ForbiddenAt float64
	MaxOrder    int
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithForbiddenAt marks every cost at or above v as a forbidden edge.
// Panics on NaN to surface programmer error early; algorithms themselves
// never panic on user input.
func WithForbiddenAt(v float64) Option {
	if math.IsNaN(v) {
		panic("hungarian: WithForbiddenAt(NaN)")
	}
	return func(o *Options) {
		o.ForbiddenAt = v
	}
}

// WithMaxOrder replaces the default order bound. Panics on n <= 0; a
// non-positive bound would reject every matrix.
func WithMaxOrder(n int) Option {
	if n <= 0 {
		panic("hungarian: WithMaxOrder(n<=0)")
	}
	return func(o *Options) {
		o.MaxOrder = n
	}
}

// DefaultOptions returns the defaults used when no functional options
// are supplied: no finite forbidden threshold, order bound MaxOrder.
func DefaultOptions() Options {
	return Options{
		ForbiddenAt: math.Inf(1),
		MaxOrder:    MaxOrder,
	}
}
