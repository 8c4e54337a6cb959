// Package score converts attendee attribute similarity into a dense cost
// matrix suitable for an exact assignment solver.
//
// The scoring rule is data-driven: every weight, every similarity set and
// the company-size tier ordering live in a single Config value. For each
// ordered pair (i, j), i ≠ j, Build sums independent contributions:
//
//   - exact match on an attribute adds that attribute's weight
//     (defaults: Interest 10, Role 8, Country 2, Industry 5, Size 7);
//   - membership of j's value in the configured similarity set for i's
//     value adds the smaller "similar" weight (Interest and Industry by
//     default); exact and similar checks are independent of each other;
//   - company-size tiers are compared by their declared order in
//     Config.SizeTiers: an equal tier adds SizeWeight, a gap of more than
//     one tier subtracts SizeGapPenalty, a one-step gap is neutral.
//
// A pair scoring below Config.MinScore is suppressed: its cost becomes
// Config.Sentinel instead of the negated score. The diagonal is always
// the sentinel, so a solver minimizing total cost never self-pairs.
//
// Determinism:
//   - similarity membership is a pure set lookup (true/false), never an
//     ordered scan;
//   - tier comparison uses the declared slice order, never map iteration;
//   - Build is a pure function: same roster + same Config ⇒ same matrix.
//
// Complexity: O(N²) time, O(N²) space for the matrix.
//
// Errors (sentinel):
//
//	– ErrNoAttendees if the roster is empty.
//	– ErrDuplicateID if two attendees share an ID.
//	– ErrUnknownTier if an attendee's CompanySize has no declared tier.
//	– ErrBadConfig  if the Config is internally inconsistent.
//
// Example usage:
//
//	cost, err := score.Build(attendees, score.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	assign, err := hungarian.Solve(cost)
package score
