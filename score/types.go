// Package score defines the attendee record, the scoring configuration
// and the sentinel errors shared by the cost-matrix builder.
package score

import "errors"

// Sentinel errors returned by Build. Tests and callers match them with
// errors.Is; Build may wrap them with positional context via fmt.Errorf.
var (
	// ErrNoAttendees indicates that an empty roster was passed to Build.
	ErrNoAttendees = errors.New("score: attendee roster is empty")

	// ErrDuplicateID indicates that two attendees carry the same ID.
	// IDs must be unique because matrix indices are derived from roster
	// order and reported back in terms of those indices.
	ErrDuplicateID = errors.New("score: duplicate attendee ID")

	// ErrUnknownTier indicates that an attendee's CompanySize does not
	// appear in Config.SizeTiers, so no ordinal comparison is possible.
	ErrUnknownTier = errors.New("score: company size has no declared tier")

	// ErrBadConfig indicates an internally inconsistent Config, e.g. a
	// non-positive sentinel, MinScore not below the sentinel, or an empty
	// tier order while size scoring is enabled.
	ErrBadConfig = errors.New("score: inconsistent scoring config")
)

// Attendee is one conference participant. The struct is read-only once
// constructed; roster order (not ID) defines matrix row/column indices.
//
// ID          – stable integer identity, unique within one roster.
// Interest    – primary topic of interest ("AI", "Cloud", …).
// Role        – job role ("Engineer", "Founder", …).
// Country     – ISO-ish country label; compared for exact equality only.
// Industry    – industry sector ("Software", "Finance", …).
// CompanySize – ordinal tier; must be declared in Config.SizeTiers.
type Attendee struct {
	ID          int
	Interest    string
	Role        string
	Country     string
	Industry    string
	CompanySize string
}

// Config enumerates the full scoring rule set. It is passed by value to
// Build (immutable to the builder) and compiled once into indexed lookup
// structures before the O(N²) pair loop.
//
// Weights are float64 for API uniformity, but the defaults are integral
// so score sums — and the solver's potential arithmetic downstream —
// stay exact.
type Config struct {
	// Exact-match weights per attribute.
	InterestWeight float64
	RoleWeight     float64
	CountryWeight  float64
	IndustryWeight float64
	SizeWeight     float64

	// Similar-value weights; applied when the counterpart's value is a
	// member of the similarity set for this attendee's value. Checked
	// independently of the exact-match test for the same attribute.
	SimilarInterestWeight float64
	SimilarIndustryWeight float64

	// SimilarInterests maps an interest to the interests considered
	// adjacent to it. Membership is a pure set test; listing order is
	// irrelevant. The identity value should not be listed (it is already
	// rewarded by InterestWeight).
	SimilarInterests map[string][]string

	// SimilarIndustries is the industry counterpart of SimilarInterests.
	SimilarIndustries map[string][]string

	// SizeTiers declares the ordinal tier order, smallest first. Tier
	// comparison uses the index in this slice — declaration order is the
	// bucket order, never incidental map iteration.
	SizeTiers []string

	// SizeGapPenalty is subtracted when two attendees' tiers are more
	// than one step apart in SizeTiers.
	SizeGapPenalty float64

	// MinScore is the quality floor: a pair scoring strictly below it
	// receives cost Sentinel instead of the negated score.
	MinScore float64

	// Sentinel is the large finite cost used for the diagonal and for
	// suppressed pairs. It must exceed any legitimate cost magnitude yet
	// stay far from float64 overflow so solver arithmetic is exact.
	Sentinel float64
}

// Default weight constants. Named so tests and docs reference one source
// of truth; the attainable per-pair maximum under the defaults is
// 10+8+2+5+7 = 32.
const (
	DefaultInterestWeight        = 10.0
	DefaultRoleWeight            = 8.0
	DefaultCountryWeight         = 2.0
	DefaultIndustryWeight        = 5.0
	DefaultSizeWeight            = 7.0
	DefaultSimilarInterestWeight = 5.0
	DefaultSimilarIndustryWeight = 2.0
	DefaultSizeGapPenalty        = 4.0
	DefaultMinScore              = 5.0

	// DefaultSentinel dominates every legitimate score (tens) by several
	// orders of magnitude while keeping N×sentinel well inside exact
	// float64 integer range for the solver's supported matrix orders.
	DefaultSentinel = 1e6
)

// DefaultConfig returns the scoring rules of the reference matchmaking
// setup: the five attribute weights above, interest/industry similarity
// sets, five company-size tiers and the standard quality floor.
//
// The maps are freshly allocated on every call, so callers may mutate
// the result without affecting other solves.
func DefaultConfig() Config {
	return Config{
		InterestWeight: DefaultInterestWeight,
		RoleWeight:     DefaultRoleWeight,
		CountryWeight:  DefaultCountryWeight,
		IndustryWeight: DefaultIndustryWeight,
		SizeWeight:     DefaultSizeWeight,

		SimilarInterestWeight: DefaultSimilarInterestWeight,
		SimilarIndustryWeight: DefaultSimilarIndustryWeight,

		SimilarInterests: map[string][]string{
			"AI":       {"Data"},
			"Data":     {"AI"},
			"Cloud":    {"DevOps"},
			"DevOps":   {"Cloud", "Security"},
			"Security": {"DevOps"},
			"Mobile":   {"Cloud"},
		},
		SimilarIndustries: map[string][]string{
			"Software":      {"Finance"},
			"Finance":       {"Software"},
			"Healthcare":    {"Education"},
			"Education":     {"Healthcare"},
			"Retail":        {"Manufacturing"},
			"Manufacturing": {"Retail"},
		},

		SizeTiers:      []string{"solo", "startup", "smb", "mid", "enterprise"},
		SizeGapPenalty: DefaultSizeGapPenalty,

		MinScore: DefaultMinScore,
		Sentinel: DefaultSentinel,
	}
}
