// Package hungarian solves the linear assignment problem exactly: given
// an N×N cost matrix, it returns the permutation of rows onto columns
// that minimizes the total assigned cost.
//
// The implementation is the Kuhn–Munkres algorithm in its potential-based
// (Jonker–Volgenant) formulation:
//
//  1. Maintain a dual potential per row (u) and per column (v); an edge
//     (i, j) is "tight" when cost[i][j] == u[i] + v[j].
//  2. For each row in turn, grow an alternating tree of tight edges from
//     that unmatched row, tracking the minimum slack to every column
//     outside the tree and the column each slack came through.
//  3. When no tight edge extends the tree, tighten the potentials by the
//     minimum frontier slack — this exposes at least one new tight edge
//     without breaking dual feasibility.
//  4. When the tree reaches an unmatched column, augment the matching
//     along the alternating path and move to the next row.
//
// After N augmentation phases the matching is perfect and the potentials
// certify optimality. Ties are broken by ascending column index, so the
// result is deterministic for identical inputs.
//
// Complexity:
//
//   - Time:  O(N³) — N phases, each rescanning up to N columns N times.
//   - Space: O(N²) for a scratch copy of the matrix (the input is never
//     mutated) plus O(N) auxiliary arrays: potentials, slack values,
//     alternating-tree back pointers and visited marks, all owned by a
//     single Solve invocation.
//
// Costs may be any finite reals, negative values included; the solver
// assumes nothing about sign or symmetry. Entries at or above the
// configured forbidden threshold (WithForbiddenAt; +Inf entries always)
// are treated as forbidden: if no perfect matching avoids them, Solve
// reports ErrInfeasible instead of silently returning a matching that
// uses one.
//
// Errors (sentinel):
//
//	– ErrEmptyMatrix  if N == 0.
//	– ErrNonSquare    if a row's length differs from the row count.
//	– ErrRaggedMatrix if rows disagree with each other in length.
//	– ErrNaNCost      if any entry is NaN or −Inf.
//	– ErrTooLarge     if N exceeds the configured maximum order.
//	– ErrInfeasible   if no forbidden-free perfect matching exists.
//
// Example usage:
//
//	assign, err := hungarian.Solve(cost, hungarian.WithForbiddenAt(1e6))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// assign[i] is the column matched to row i.
package hungarian
