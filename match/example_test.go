package match_test

import (
	"fmt"

	"github.com/katalvlaran/pairwise/match"
	"github.com/katalvlaran/pairwise/score"
)

// ExampleSolve runs the full pipeline on two compatible couples and
// renders the mutual-pair report.
func ExampleSolve() {
	attendees := []score.Attendee{
		{ID: 0, Interest: "AI", Role: "Engineer", Country: "DE", Industry: "Software", CompanySize: "startup"},
		{ID: 1, Interest: "AI", Role: "Engineer", Country: "DE", Industry: "Software", CompanySize: "startup"},
		{ID: 2, Interest: "Cloud", Role: "Founder", Country: "US", Industry: "Healthcare", CompanySize: "enterprise"},
		{ID: 3, Interest: "Cloud", Role: "Founder", Country: "US", Industry: "Healthcare", CompanySize: "enterprise"},
	}

	res, err := match.Solve(attendees, score.DefaultConfig(), match.WithMode(match.MutualOnly))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(match.Format(res, attendees))
	// Output:
	// pairs=2 unpaired=0 total=64.0
	//   [0] AI/Engineer/DE <-> [1] AI/Engineer/DE  score=32.0
	//   [2] Cloud/Founder/US <-> [3] Cloud/Founder/US  score=32.0
}
