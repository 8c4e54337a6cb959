// Package match - plain-text rendering of a pairing result.
package match

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pairwise/score"
)

// Format renders res as a human-readable report. attendees must be the
// roster the result was solved from (indices are looked up in it); pass
// nil to render indices only.
//
// The output is line-oriented and deterministic, so it is safe to pin in
// golden tests and runnable Examples:
//
//	pairs=3 unpaired=0 total=87.0
//	  [0] AI/Engineer/DE <-> [3] AI/Engineer/DE  score=32.0
//	  ...
//
// Complexity: O(P) over the number of pairs.
func Format(res Result, attendees []score.Attendee) string {
	var b strings.Builder

	fmt.Fprintf(&b, "pairs=%d unpaired=%d total=%.1f\n", len(res.Pairs), len(res.Unpaired), res.Total)

	var p Pair
	for _, p = range res.Pairs {
		fmt.Fprintf(&b, "  [%d]%s <-> [%d]%s  score=%.1f\n",
			p.A, label(attendees, p.A), p.B, label(attendees, p.B), p.Score)
	}
	for _, i := range res.Unpaired {
		fmt.Fprintf(&b, "  [%d]%s unpaired\n", i, label(attendees, i))
	}

	return b.String()
}

// label renders the attribute summary for roster index i, or nothing
// when no roster (or an out-of-range index) is available.
func label(attendees []score.Attendee, i int) string {
	if i < 0 || i >= len(attendees) {
		return ""
	}
	a := attendees[i]

	return fmt.Sprintf(" %s/%s/%s", a.Interest, a.Role, a.Country)
}
