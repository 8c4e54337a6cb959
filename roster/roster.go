// SPDX-License-Identifier: MIT
// Package: pairwise/roster
//
// roster.go — the generator itself.

package roster

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/pairwise/score"
)

// ErrBadCount indicates a non-positive roster size.
var ErrBadCount = errors.New("roster: attendee count must be positive")

// Generate returns n synthetic attendees with IDs 0..n-1 and attributes
// drawn uniformly from the configured pools.
//
// Contracts:
//   - n must be positive (ErrBadCount otherwise).
//   - Same options (notably the seed) ⇒ identical roster.
//   - The returned slice is freshly allocated; callers own it.
//
// Complexity: O(n) time, O(n) space.
func Generate(n int, opts ...Option) ([]score.Attendee, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadCount, n)
	}

	cfg := newConfig(opts...)

	attendees := make([]score.Attendee, n)
	var i int
	for i = 0; i < n; i++ {
		// Draw order is fixed; adding a pool later must append draws,
		// not reorder them, or seeded rosters change shape.
		attendees[i] = score.Attendee{
			ID:          i,
			Interest:    pick(cfg.rng, cfg.interests),
			Role:        pick(cfg.rng, cfg.roles),
			Country:     pick(cfg.rng, cfg.countries),
			Industry:    pick(cfg.rng, cfg.industries),
			CompanySize: pick(cfg.rng, cfg.sizes),
		}
	}

	return attendees, nil
}

// pick draws one element uniformly. Pools are guaranteed non-empty by
// the option constructors and newConfig defaults.
func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}
