// Package hungarian - exact minimum-cost assignment (Kuhn–Munkres).
//
// Rationale (succinct):
//  1. Strict input shape and value invariants are enforced up front;
//     the hot loop then runs over a dense scratch buffer with no checks.
//  2. The scratch copy both guarantees the caller's matrix is never
//     mutated and lets forbidden entries be replaced by one huge finite
//     stand-in, keeping every subtraction well-defined.
//  3. Internally the arrays are 1-indexed with column 0 acting as the
//     virtual root of the alternating tree; this keeps the augmentation
//     bookkeeping branch-free.
package hungarian

import (
	"fmt"
	"math"
)

// forbiddenCost is the finite stand-in substituted for forbidden entries
// in the scratch matrix. It dominates any legitimate cost range by many
// orders of magnitude while keeping N×forbiddenCost finite, so a single
// forbidden edge always outweighs every achievable saving elsewhere.
const forbiddenCost = 1e18

// Solve returns the minimum-cost perfect matching of rows onto columns.
//
// Guarantees:
//   - Exactness: the returned permutation minimizes Σ cost[i][assign[i]]
//     over all permutations of {0..N-1}; the dual potentials certify it.
//   - Determinism: identical input yields an identical assignment; ties
//     are resolved by ascending column index during slack scans.
//   - The input matrix is not mutated.
//
// Preconditions and validation (in order):
//  1. N > 0                      (ErrEmptyMatrix).
//  2. N ≤ opts.MaxOrder          (ErrTooLarge).
//  3. Rows mutually equal length (ErrRaggedMatrix) and equal N
//     (ErrNonSquare).
//  4. No NaN or −Inf entries     (ErrNaNCost).
//
// After solving, if any assigned edge is forbidden (cost ≥ ForbiddenAt,
// or +Inf), Solve returns ErrInfeasible: no perfect matching avoiding
// forbidden edges exists.
//
// Complexity: O(N³) time, O(N²) space (scratch copy) + O(N) auxiliary.
func Solve(cost [][]float64, opts ...Option) (Assignment, error) {
	// Stage 1 - resolve options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Stage 2 - shape validation.
	n := len(cost)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if n > cfg.MaxOrder {
		return nil, fmt.Errorf("%w: n=%d, max=%d", ErrTooLarge, n, cfg.MaxOrder)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(cost[i]) != len(cost[0]) {
			return nil, fmt.Errorf("%w: row %d has %d entries, row 0 has %d", ErrRaggedMatrix, i, len(cost[i]), len(cost[0]))
		}
		if len(cost[i]) != n {
			return nil, fmt.Errorf("%w: %d rows × %d columns", ErrNonSquare, n, len(cost[i]))
		}
	}

	// Stage 3 - value validation + scratch copy with forbidden stand-ins.
	// The scratch buffer w is what the dual arithmetic runs on; the
	// original matrix is consulted again only for the feasibility check.
	w := make([][]float64, n)
	var c float64
	for i = 0; i < n; i++ {
		w[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			c = cost[i][j]
			if math.IsNaN(c) || math.IsInf(c, -1) {
				return nil, fmt.Errorf("%w: cost[%d][%d]=%v", ErrNaNCost, i, j, c)
			}
			if c >= cfg.ForbiddenAt || math.IsInf(c, 1) {
				c = forbiddenCost
			}
			w[i][j] = c
		}
	}

	// Stage 4 - Kuhn–Munkres phases (Jonker–Volgenant potentials).
	// One-based arrays; index 0 is the virtual root column.
	var (
		u    = make([]float64, n+1) // row potentials
		v    = make([]float64, n+1) // column potentials
		p    = make([]int, n+1)     // p[j] = row currently matched to column j (0 = free)
		way  = make([]int, n+1)     // way[j] = previous column on the alternating path to j
		minv = make([]float64, n+1) // minimum slack seen for each column this phase
		used = make([]bool, n+1)    // columns already inside the alternating tree
	)

	const inf = math.MaxFloat64 / 2

	var (
		row        int     // the row being inserted this phase
		j0, j1, i0 int     // current / next tree column, row matched at j0
		delta, cur float64 // minimum frontier slack, candidate slack
	)
	for row = 1; row <= n; row++ {
		// Root the alternating tree at the virtual column holding 'row'.
		p[0] = row
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		// Grow the tree until an unmatched column is reached.
		for {
			used[j0] = true
			i0 = p[j0]
			delta = inf
			j1 = 0

			// Scan columns outside the tree; ascending j is the
			// deterministic tie-break.
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = w[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			// Tighten potentials by the minimum frontier slack: tree
			// edges stay tight, at least one new edge becomes tight.
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				// Unmatched column found: the tree yields an augmenting path.
				break
			}
		}

		// Augment: walk the back pointers, shifting matches along the path.
		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	// Stage 5 - extract the row→column permutation.
	assign := make(Assignment, n)
	for j = 1; j <= n; j++ {
		assign[p[j]-1] = j - 1
	}

	// Stage 6 - feasibility: the matching is cost-optimal, but an edge
	// drawn from a forbidden entry means no forbidden-free perfect
	// matching exists at all (forbiddenCost dominates every alternative).
	for i = 0; i < n; i++ {
		c = cost[i][assign[i]]
		if c >= cfg.ForbiddenAt || math.IsInf(c, 1) {
			return nil, fmt.Errorf("%w: row %d forced onto forbidden column %d", ErrInfeasible, i, assign[i])
		}
	}

	return assign, nil
}

// TotalCost sums cost[i][assign[i]] for a given assignment. It performs
// no validation beyond index bounds implied by the inputs; use it with
// an Assignment produced by Solve over the same matrix.
//
// Complexity: O(N).
func TotalCost(cost [][]float64, assign Assignment) float64 {
	var total float64
	for i, j := range assign {
		total += cost[i][j]
	}

	return total
}
