// Package score - the cost-matrix builder.
package score

// Build converts a roster into a dense N×N cost matrix for a minimizing
// assignment solver: cost[i][j] = −pairScore(i, j) for acceptable pairs,
// Config.Sentinel for suppressed pairs and the whole diagonal.
//
// Contracts:
//   - attendees is an ordered roster; position defines matrix indices.
//   - cfg is read by value; Build never mutates its maps or slices.
//   - The matrix is freshly allocated; callers own it.
//   - cost[i][j] need not equal cost[j][i]: the default rules happen to
//     be symmetric, but custom similarity sets may not be, and no
//     consumer may assume symmetry.
//
// Preconditions and validation (in order):
//  1. cfg must be internally consistent (ErrBadConfig).
//  2. attendees must be non-empty (ErrNoAttendees).
//  3. IDs must be unique (ErrDuplicateID).
//  4. Every CompanySize must have a declared tier when size scoring is
//     enabled (ErrUnknownTier).
//
// Complexity: O(N²) time, O(N²) space.
func Build(attendees []Attendee, cfg Config) ([][]float64, error) {
	// Stage 1 - config consistency (sentinels from types.go).
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	// Stage 2 - compile rules once; the pair loop does lookups only.
	rs := compileRules(cfg)
	if err := validateRoster(attendees, rs); err != nil {
		return nil, err
	}

	// Stage 3 - fill the matrix.
	n := len(attendees)
	cost := make([][]float64, n)

	var (
		i, j int     // pair indices
		s    float64 // raw compatibility score for (i, j)
	)
	for i = 0; i < n; i++ {
		cost[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				// Self-pairing is forbidden outright.
				cost[i][j] = cfg.Sentinel
				continue
			}
			s = pairScore(&attendees[i], &attendees[j], rs)
			if s < cfg.MinScore {
				// Quality floor: discourage, with the same large finite
				// value used for the diagonal.
				cost[i][j] = cfg.Sentinel
				continue
			}
			// The solver minimizes; the domain maximizes.
			cost[i][j] = -s
		}
	}

	return cost, nil
}

// pairScore sums the independent weighted contributions for the ordered
// pair (a, b). Each attribute's exact and similar checks run on their
// own; no contribution depends on another attribute's outcome.
//
// Complexity: O(1) per pair (constant number of set lookups).
func pairScore(a, b *Attendee, rs ruleSet) float64 {
	var s float64

	// Interest: exact, then similarity-set membership.
	if a.Interest == b.Interest {
		s += rs.cfg.InterestWeight
	}
	if similar(rs.similarInterest, a.Interest, b.Interest) {
		s += rs.cfg.SimilarInterestWeight
	}

	// Role and country: exact equality only.
	if a.Role == b.Role {
		s += rs.cfg.RoleWeight
	}
	if a.Country == b.Country {
		s += rs.cfg.CountryWeight
	}

	// Industry: exact, then similarity-set membership.
	if a.Industry == b.Industry {
		s += rs.cfg.IndustryWeight
	}
	if similar(rs.similarIndustry, a.Industry, b.Industry) {
		s += rs.cfg.SimilarIndustryWeight
	}

	// Company size: ordinal buckets by declared order. validateRoster
	// has already guaranteed both tiers are declared when scoring is on.
	if rs.cfg.SizeWeight != 0 || rs.cfg.SizeGapPenalty != 0 {
		ta := rs.tierIndex[a.CompanySize]
		tb := rs.tierIndex[b.CompanySize]
		gap := ta - tb
		if gap < 0 {
			gap = -gap
		}
		switch {
		case gap == 0:
			s += rs.cfg.SizeWeight
		case gap > 1:
			// More than one bucket apart: actively penalized. A one-step
			// gap is neutral on purpose.
			s -= rs.cfg.SizeGapPenalty
		}
	}

	return s
}
