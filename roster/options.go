// SPDX-License-Identifier: MIT
// Package: pairwise/roster
//
// options.go — functional options for the roster generator.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Generate itself never panics on user input.
//   • Determinism is explicit: seeding via WithSeed or WithRand only.
//   • No hidden globals; everything flows through config.

package roster

import (
	"math/rand" // RNG source for attribute draws

	"github.com/katalvlaran/pairwise/score"
)

// defaultSeed is the fixed "zero" seed used when callers do not seed
// explicitly. The value is arbitrary but stable so default rosters are
// reproducible across runs and platforms.
const defaultSeed int64 = 1

// config aggregates all generator knobs. It is passed by value to the
// draw loop (immutable to callers).
type config struct {
	rng        *rand.Rand // seeded source; never nil after newConfig
	interests  []string
	roles      []string
	countries  []string
	industries []string
	sizes      []string
}

// Option customizes roster generation by mutating a config before any
// attendee is drawn.
type Option func(*config)

// newConfig builds the default config and applies options in order
// (later overrides earlier).
// Complexity: O(len(opts)) time.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:        rand.New(rand.NewSource(defaultSeed)),
		interests:  []string{"AI", "Cloud", "Security", "Data", "DevOps", "Mobile"},
		roles:      []string{"Engineer", "Founder", "Designer", "Product", "Sales", "Researcher"},
		countries:  []string{"DE", "US", "UA", "PL", "JP", "BR"},
		industries: []string{"Software", "Finance", "Healthcare", "Retail", "Education", "Manufacturing"},
		sizes:      score.DefaultConfig().SizeTiers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a fresh deterministic RNG with the given seed.
// Seed 0 means "use the default seed" (reproducible defaults policy).
func WithSeed(seed int64) Option {
	return func(c *config) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand provides an explicit RNG. Panics on nil to avoid silent
// non-determinism later; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("roster: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithInterests overrides the interest pool. Panics on an empty pool.
func WithInterests(pool ...string) Option {
	if len(pool) == 0 {
		panic("roster: WithInterests(empty)")
	}
	return func(c *config) {
		c.interests = pool
	}
}

// WithRoles overrides the role pool. Panics on an empty pool.
func WithRoles(pool ...string) Option {
	if len(pool) == 0 {
		panic("roster: WithRoles(empty)")
	}
	return func(c *config) {
		c.roles = pool
	}
}

// WithCountries overrides the country pool. Panics on an empty pool.
func WithCountries(pool ...string) Option {
	if len(pool) == 0 {
		panic("roster: WithCountries(empty)")
	}
	return func(c *config) {
		c.countries = pool
	}
}

// WithIndustries overrides the industry pool. Panics on an empty pool.
func WithIndustries(pool ...string) Option {
	if len(pool) == 0 {
		panic("roster: WithIndustries(empty)")
	}
	return func(c *config) {
		c.industries = pool
	}
}

// WithSizes overrides the company-size pool. Panics on an empty pool.
// Keep the values aligned with the Config.SizeTiers the roster will be
// scored against, or score.Build will reject the roster.
func WithSizes(pool ...string) Option {
	if len(pool) == 0 {
		panic("roster: WithSizes(empty)")
	}
	return func(c *config) {
		c.sizes = pool
	}
}
