// Package match - pair extraction policies over a solved assignment.
package match

import (
	"github.com/katalvlaran/pairwise/hungarian"
	"github.com/katalvlaran/pairwise/score"
)

// pairScoreOf returns the compatibility score reported for pair (i, j):
// the mean of the two directed scores −cost[i][j] and −cost[j][i]. The
// matrix is not assumed symmetric; under symmetric rules the mean equals
// either direction.
func pairScoreOf(cost [][]float64, i, j int) float64 {
	return (-cost[i][j] - cost[j][i]) / 2
}

// extractDirected reports every row as a directed pair (i → assign[i]).
// The pair score is the directed score of that single edge, so Total is
// exactly the negated optimal assignment cost.
//
// Complexity: O(N).
func extractDirected(cost [][]float64, assign hungarian.Assignment) Result {
	res := Result{
		Assignment: assign,
		Pairs:      make([]Pair, len(assign)),
	}
	var i, j int
	for i, j = range assign {
		res.Pairs[i] = Pair{A: i, B: j, Score: -cost[i][j]}
		res.Total += res.Pairs[i].Score
	}

	return res
}

// extractMutual keeps only reciprocal assignments: i and j form a pair
// when assign[i] == j and assign[j] == i. Each 2-cycle is reported once
// with A < B; every index outside a 2-cycle lands in Unpaired. Both
// slices come out in ascending index order, so the result is
// deterministic without sorting.
//
// Complexity: O(N).
func extractMutual(cost [][]float64, assign hungarian.Assignment) Result {
	res := Result{Assignment: assign}

	var i, j int
	for i = range assign {
		j = assign[i]
		if assign[j] != i {
			// Part of a longer cycle: no mutual partner.
			res.Unpaired = append(res.Unpaired, i)
			continue
		}
		if i > j {
			// The 2-cycle was already reported when we visited j.
			continue
		}
		if i == j {
			// Self-assignment cannot happen with a forbidden diagonal,
			// but a degenerate 1×1 solve would produce it; treat the
			// index as unpaired rather than report a self-pair.
			res.Unpaired = append(res.Unpaired, i)
			continue
		}
		p := Pair{A: i, B: j, Score: pairScoreOf(cost, i, j)}
		res.Pairs = append(res.Pairs, p)
		res.Total += p.Score
	}

	return res
}

// solveBipartite matches the first half of the roster against the
// second half: rows [0, h) versus columns [h, N) of the full matrix,
// h = N/2. The submatrix is square, so the exact solver applies
// directly, and the resulting matching is mutual by construction.
//
// The full-length Assignment is reconstructed as an involution:
// assign[i] = h+k and assign[h+k] = i for every matched (i, k).
//
// Complexity: O(N²) copy + O((N/2)³) solve.
func solveBipartite(cost [][]float64, cfg score.Config) (Result, error) {
	n := len(cost)
	if n%2 != 0 {
		return Result{}, ErrOddRoster
	}
	h := n / 2

	// Carve out the half-versus-half block; rows keep their indices,
	// columns are shifted down by h.
	sub := make([][]float64, h)
	var i, k int
	for i = 0; i < h; i++ {
		sub[i] = make([]float64, h)
		for k = 0; k < h; k++ {
			sub[i][k] = cost[i][h+k]
		}
	}

	subAssign, err := hungarian.Solve(sub, hungarian.WithForbiddenAt(cfg.Sentinel))
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Assignment: make(hungarian.Assignment, n),
		Pairs:      make([]Pair, h),
	}
	for i = 0; i < h; i++ {
		k = subAssign[i]
		res.Assignment[i] = h + k
		res.Assignment[h+k] = i
		res.Pairs[i] = Pair{A: i, B: h + k, Score: pairScoreOf(cost, i, h+k)}
		res.Total += res.Pairs[i].Score
	}

	return res, nil
}
