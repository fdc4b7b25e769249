package problemgen

import (
	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/settings"
)

// Kind records which generation path produced a problem.
type Kind string

const (
	// KindChallenging means both factors were drawn from at least 5.
	KindChallenging Kind = "challenging"

	// KindGap means the unknown was steered away from the product.
	KindGap Kind = "gap"

	// KindRandom is the unbiased fallback path.
	KindRandom Kind = "random"
)

// Problem is a generated question together with the path that produced it.
type Problem struct {
	equation.Question
	Kind Kind
}

// GenerateInput holds the configuration a single generation needs.
type GenerateInput struct {
	// Ranges constrain both factors and the product.
	Ranges equation.Ranges

	// UnknownRoles is the set of roles eligible to be hidden. Must be
	// non-empty.
	UnknownRoles []equation.Role

	// FosterChallengingPct is the probability (0-100) of attempting the
	// challenging path first.
	FosterChallengingPct int

	// FosterGapsPct is the probability (0-100) of the gap path when the
	// challenging path was not taken.
	FosterGapsPct int
}

// InputFromSettings extracts the generator input from game settings.
func InputFromSettings(s settings.GameSettings) GenerateInput {
	return GenerateInput{
		Ranges:               s.Ranges,
		UnknownRoles:         s.UnknownRoles,
		FosterChallengingPct: s.FosterChallengingPct,
		FosterGapsPct:        s.FosterGapsPct,
	}
}
