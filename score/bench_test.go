package score_test

import (
	"testing"

	"github.com/katalvlaran/pairwise/roster"
	"github.com/katalvlaran/pairwise/score"
)

// benchmarkBuild measures matrix construction for a seeded roster of n
// attendees; generation happens outside the timed loop.
func benchmarkBuild(b *testing.B, n int) {
	attendees, err := roster.Generate(n, roster.WithSeed(int64(n)))
	if err != nil {
		b.Fatalf("roster.Generate failed: %v", err)
	}
	cfg := score.DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = score.Build(attendees, cfg); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_Small benchmarks a 100-attendee matrix (100×100).
func BenchmarkBuild_Small(b *testing.B) { benchmarkBuild(b, 100) }

// BenchmarkBuild_Medium benchmarks a 400-attendee matrix (400×400).
func BenchmarkBuild_Medium(b *testing.B) { benchmarkBuild(b, 400) }
