package hungarian_test

import (
	"fmt"

	"github.com/katalvlaran/pairwise/hungarian"
)

// ExampleSolve demonstrates the canonical 2×2 case: two entities that
// score 32 points with each other under a forbidden diagonal. The
// solver must pair them across the diagonal.
func ExampleSolve() {
	const sentinel = 1e6
	cost := [][]float64{
		{sentinel, -32},
		{-32, sentinel},
	}

	assign, err := hungarian.Solve(cost)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("assignment:", assign)
	fmt.Println("total cost:", hungarian.TotalCost(cost, assign))
	// Output:
	// assignment: [1 0]
	// total cost: -64
}

// ExampleSolve_forbidden shows the feasibility guard: wiring a finite
// sentinel into WithForbiddenAt turns an all-sentinel matrix into an
// explicit infeasibility error instead of a silent sentinel matching.
func ExampleSolve_forbidden() {
	const sentinel = 1e6
	cost := [][]float64{
		{sentinel, sentinel},
		{sentinel, sentinel},
	}

	_, err := hungarian.Solve(cost, hungarian.WithForbiddenAt(sentinel))
	fmt.Println(err != nil)
	// Output:
	// true
}
