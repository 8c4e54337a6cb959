// SPDX-License-Identifier: MIT
// Package: pairwise/score
//
// compile.go — one-shot compilation of Config into indexed lookups.
//
// Design:
//   • ruleSet is the single source of truth inside the O(N²) pair loop.
//   • Similarity lists become membership sets: a lookup is true/false,
//     never an ordered scan, so matrix values cannot depend on list or
//     map iteration order.
//   • Tier order is frozen into an index map built from the declared
//     slice; the slice position IS the bucket index.

package score

// ruleSet is the compiled, lookup-ready form of a Config. It is built
// once per Build call and discarded with it; no package-level state.
type ruleSet struct {
	cfg Config // weights and thresholds, copied by value

	// similarInterest[v] is the set of interests adjacent to v.
	similarInterest map[string]map[string]struct{}
	// similarIndustry[v] is the set of industries adjacent to v.
	similarIndustry map[string]map[string]struct{}

	// tierIndex maps a declared tier label to its position in
	// Config.SizeTiers. Absence means the tier was never declared.
	tierIndex map[string]int
}

// compileRules freezes cfg into a ruleSet.
// Complexity: O(S + T) time where S = total similarity entries and
// T = len(SizeTiers); O(S + T) space.
func compileRules(cfg Config) ruleSet {
	rs := ruleSet{
		cfg:             cfg,
		similarInterest: compileSets(cfg.SimilarInterests),
		similarIndustry: compileSets(cfg.SimilarIndustries),
		tierIndex:       make(map[string]int, len(cfg.SizeTiers)),
	}

	// Declaration order defines the bucket index; later duplicates are
	// rejected earlier by validateConfig, so plain assignment is safe.
	var (
		i    int    // declaration position
		tier string // tier label at position i
	)
	for i, tier = range cfg.SizeTiers {
		rs.tierIndex[tier] = i
	}

	return rs
}

// compileSets converts value→list adjacency into value→set membership.
func compileSets(lists map[string][]string) map[string]map[string]struct{} {
	sets := make(map[string]map[string]struct{}, len(lists))
	for key, vals := range lists {
		member := make(map[string]struct{}, len(vals))
		for _, v := range vals {
			member[v] = struct{}{}
		}
		sets[key] = member
	}

	return sets
}

// similar reports whether candidate belongs to the similarity set of
// value within the given compiled mapping. Pure membership test.
func similar(sets map[string]map[string]struct{}, value, candidate string) bool {
	member, ok := sets[value]
	if !ok {
		return false
	}
	_, ok = member[candidate]

	return ok
}
