// Package score - validation helpers shared by the builder.
//
// Design principles (mirrored across the library):
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from
//     types.go, wrapped with positional context where it helps.
package score

import "fmt"

// validateConfig checks the internal consistency of cfg before any
// attendee is inspected.
//
// Rules:
//   - Sentinel must be positive and strictly above MinScore, otherwise a
//     suppressed pair could outrank a legitimate one.
//   - SizeTiers must not contain duplicates (a duplicated label would
//     make the bucket index ambiguous).
//
// Complexity: O(T) time, O(T) space for the duplicate check.
func validateConfig(cfg Config) error {
	if cfg.Sentinel <= 0 {
		return fmt.Errorf("%w: sentinel %v must be positive", ErrBadConfig, cfg.Sentinel)
	}
	if cfg.MinScore >= cfg.Sentinel {
		return fmt.Errorf("%w: MinScore %v must be below sentinel %v", ErrBadConfig, cfg.MinScore, cfg.Sentinel)
	}

	seen := make(map[string]struct{}, len(cfg.SizeTiers))
	var (
		tier string // tier label under inspection
		ok   bool   // presence flag in the 'seen' set
	)
	for _, tier = range cfg.SizeTiers {
		if _, ok = seen[tier]; ok {
			return fmt.Errorf("%w: tier %q declared twice", ErrBadConfig, tier)
		}
		seen[tier] = struct{}{}
	}

	return nil
}

// validateRoster checks the attendee list: non-empty, unique IDs, and —
// when size scoring is enabled — every CompanySize declared in the tier
// order.
//
// Complexity: O(N) time, O(N) space.
func validateRoster(attendees []Attendee, rs ruleSet) error {
	if len(attendees) == 0 {
		return ErrNoAttendees
	}

	seen := make(map[int]struct{}, len(attendees))
	var (
		i  int  // roster position
		ok bool // scratch presence flag
	)
	for i = range attendees {
		if _, ok = seen[attendees[i].ID]; ok {
			return fmt.Errorf("%w: id %d", ErrDuplicateID, attendees[i].ID)
		}
		seen[attendees[i].ID] = struct{}{}

		// Tier membership is only meaningful when tiers are declared and
		// size scoring can fire; an undeclared tier would silently skip
		// the ordinal comparison, so reject it instead.
		if rs.cfg.SizeWeight != 0 || rs.cfg.SizeGapPenalty != 0 {
			if _, ok = rs.tierIndex[attendees[i].CompanySize]; !ok {
				return fmt.Errorf("%w: %q (attendee id %d)", ErrUnknownTier, attendees[i].CompanySize, attendees[i].ID)
			}
		}
	}

	return nil
}
