// Package match - unified dispatcher for the pairing pipeline.
//
// This file provides the canonical entry point: validate options, build
// the cost matrix, run the exact solver with the scoring sentinel wired
// in as the forbidden threshold, then route to the requested pairing
// policy.
//
// Design principles:
//   - Deterministic: every stage is a pure function of its inputs.
//   - Strict sentinels: errors from score/hungarian pass through
//     unchanged; only ErrUnknownMode and ErrOddRoster originate here.
//   - No hidden allocations beyond the matrices the stages own.
package match

import (
	"github.com/katalvlaran/pairwise/hungarian"
	"github.com/katalvlaran/pairwise/score"
)

// Solve runs the full pipeline: score.Build → hungarian.Solve → pair
// extraction according to the selected Mode.
//
// Contracts:
//   - attendees and cfg follow score.Build's contracts; their validation
//     errors are forwarded as-is.
//   - cfg.Sentinel is wired into the solver as the forbidden threshold,
//     so suppressed pairs are hard-forbidden: if someone's every option
//     is below the quality floor, Solve fails with
//     hungarian.ErrInfeasible instead of pairing through the sentinel.
//
// Complexity: O(N²) build + O(N³) solve; BipartiteSplit adds one O(N²)
// submatrix copy and solves at half order.
func Solve(attendees []score.Attendee, cfg score.Config, opts ...Option) (Result, error) {
	// Stage 1 - resolve and validate options.
	pol := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&pol)
	}
	switch pol.Mode {
	case Directed, MutualOnly, BipartiteSplit:
		// ok
	default:
		return Result{}, ErrUnknownMode
	}

	// Stage 2 - cost matrix (validates config and roster).
	cost, err := score.Build(attendees, cfg)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 - route by mode. BipartiteSplit solves a different matrix
	// shape, so it branches before the full-matrix solve.
	if pol.Mode == BipartiteSplit {
		return solveBipartite(cost, cfg)
	}

	assign, err := hungarian.Solve(cost, hungarian.WithForbiddenAt(cfg.Sentinel))
	if err != nil {
		return Result{}, err
	}

	// Stage 4 - pair extraction.
	switch pol.Mode {
	case MutualOnly:
		return extractMutual(cost, assign), nil
	default:
		return extractDirected(cost, assign), nil
	}
}
