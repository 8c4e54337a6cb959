package score_test

import (
	"fmt"

	"github.com/katalvlaran/pairwise/score"
)

// ExampleBuild builds a 2×2 cost matrix for two perfectly compatible
// attendees: the off-diagonal cost is the negated maximum score 32, the
// diagonal carries the forbidding sentinel.
func ExampleBuild() {
	attendees := []score.Attendee{
		{ID: 0, Interest: "AI", Role: "Engineer", Country: "DE", Industry: "Software", CompanySize: "startup"},
		{ID: 1, Interest: "AI", Role: "Engineer", Country: "DE", Industry: "Software", CompanySize: "startup"},
	}

	cost, err := score.Build(attendees, score.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("cost[0][1]:", cost[0][1])
	fmt.Println("diagonal:", cost[0][0])
	// Output:
	// cost[0][1]: -32
	// diagonal: 1e+06
}
