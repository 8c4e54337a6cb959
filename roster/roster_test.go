// Package roster_test contains unit tests for the synthetic roster
// generator: sizing, determinism, pool overrides and compatibility with
// the score builder.
package roster_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/pairwise/roster"
	"github.com/katalvlaran/pairwise/score"
)

func TestGenerate_BadCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := roster.Generate(n); !errors.Is(err, roster.ErrBadCount) {
			t.Fatalf("Generate(%d): expected ErrBadCount, got %v", n, err)
		}
	}
}

func TestGenerate_SizeAndIDs(t *testing.T) {
	attendees, err := roster.Generate(16)
	if err != nil {
		t.Fatal(err)
	}
	if len(attendees) != 16 {
		t.Fatalf("len = %d; want 16", len(attendees))
	}
	for i, a := range attendees {
		if a.ID != i {
			t.Errorf("attendees[%d].ID = %d; want %d", i, a.ID, i)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first, err := roster.Generate(32, roster.WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}
	second, err := roster.Generate(32, roster.WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed produced different rosters")
	}

	// Seed 0 follows the default-seed policy, so it matches no options.
	zero, err := roster.Generate(32, roster.WithSeed(0))
	if err != nil {
		t.Fatal(err)
	}
	plain, err := roster.Generate(32)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(zero, plain) {
		t.Fatal("WithSeed(0) should equal the unseeded default")
	}

	other, err := roster.Generate(32, roster.WithSeed(10))
	if err != nil {
		t.Fatal(err)
	}
	if reflect.DeepEqual(first, other) {
		t.Fatal("different seeds produced identical rosters")
	}
}

func TestGenerate_PoolOverrides(t *testing.T) {
	attendees, err := roster.Generate(20,
		roster.WithSeed(4),
		roster.WithInterests("AI"),
		roster.WithCountries("DE", "PL"),
	)
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range attendees {
		if a.Interest != "AI" {
			t.Errorf("attendees[%d].Interest = %q; want AI", i, a.Interest)
		}
		if a.Country != "DE" && a.Country != "PL" {
			t.Errorf("attendees[%d].Country = %q; want DE or PL", i, a.Country)
		}
	}
}

func TestGenerate_OptionPanics(t *testing.T) {
	assertPanics(t, "WithRand(nil)", func() { roster.WithRand(nil) })
	assertPanics(t, "WithInterests()", func() { roster.WithInterests() })
	assertPanics(t, "WithRoles()", func() { roster.WithRoles() })
	assertPanics(t, "WithCountries()", func() { roster.WithCountries() })
	assertPanics(t, "WithIndustries()", func() { roster.WithIndustries() })
	assertPanics(t, "WithSizes()", func() { roster.WithSizes() })
}

func TestGenerate_WithRand(t *testing.T) {
	a, err := roster.Generate(8, roster.WithRand(rand.New(rand.NewSource(77))))
	if err != nil {
		t.Fatal(err)
	}
	b, err := roster.Generate(8, roster.WithRand(rand.New(rand.NewSource(77))))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical Rand sources produced different rosters")
	}
}

// TestGenerate_ValidRoster: defaults must always pass score.Build, since
// pools align with score.DefaultConfig's vocabulary.
func TestGenerate_ValidRoster(t *testing.T) {
	attendees, err := roster.Generate(40, roster.WithSeed(13))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = score.Build(attendees, score.DefaultConfig()); err != nil {
		t.Fatalf("generated roster failed score.Build: %v", err)
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
