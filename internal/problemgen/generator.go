package problemgen

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/multiz/internal/equation"
)

// Generator produces multiplication questions.
type Generator interface {
	// Generate produces a single question for the given input.
	// Returns a *ConfigError when no question can satisfy the input.
	Generate(ctx context.Context, input GenerateInput) (*Problem, error)
}

// WeightedGenerator implements Generator with the challenging and gap biases.
// Paths are tried in fixed order: challenging, then gap, then random.
type WeightedGenerator struct {
	rng    *rand.Rand
	config Config
}

// Compile-time interface check.
var _ Generator = (*WeightedGenerator)(nil)

// New creates a WeightedGenerator drawing from rng.
func New(rng *rand.Rand, cfg Config) *WeightedGenerator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.ChallengingFloor <= 0 {
		cfg.ChallengingFloor = DefaultConfig().ChallengingFloor
	}
	return &WeightedGenerator{rng: rng, config: cfg}
}

// Generate produces a single question.
func (g *WeightedGenerator) Generate(ctx context.Context, input GenerateInput) (*Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(input.UnknownRoles) == 0 {
		return nil, &ConfigError{Reason: "select at least one unknown position", Err: ErrNoUnknownRoles}
	}

	if g.rng.Float64() < probability(input.FosterChallengingPct) {
		ranges := g.challengingRanges(input.Ranges)
		eq, err := g.sample(ranges)
		if err != nil {
			return nil, &ConfigError{
				Kind:   KindChallenging,
				Reason: fmt.Sprintf("no factors from %d upwards give a product in %s", g.config.ChallengingFloor, input.Ranges.Product),
				Err:    err,
			}
		}
		return &Problem{Question: equation.Question{Equation: eq, Unknown: g.pickRole(input.UnknownRoles)}, Kind: KindChallenging}, nil
	}

	eq, err := g.sample(input.Ranges)
	if err != nil {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("no factors in %s and %s give a product in %s",
				input.Ranges.FirstFactor, input.Ranges.SecondFactor, input.Ranges.Product),
			Err: err,
		}
	}

	if g.rng.Float64() < probability(input.FosterGapsPct) {
		role := gapRole(g.pickRole(input.UnknownRoles), input.UnknownRoles)
		return &Problem{Question: equation.Question{Equation: eq, Unknown: role}, Kind: KindGap}, nil
	}

	return &Problem{Question: equation.Question{Equation: eq, Unknown: g.pickRole(input.UnknownRoles)}, Kind: KindRandom}, nil
}

// challengingRanges raises both factor minimums to the challenging floor.
func (g *WeightedGenerator) challengingRanges(r equation.Ranges) equation.Ranges {
	r.FirstFactor.Min = max(r.FirstFactor.Min, g.config.ChallengingFloor)
	r.SecondFactor.Min = max(r.SecondFactor.Min, g.config.ChallengingFloor)
	return r
}

// sample draws a factor pair uniformly from ranges, rejecting pairs whose
// product falls outside the product range.
func (g *WeightedGenerator) sample(ranges equation.Ranges) (equation.Equation, error) {
	if ranges.FirstFactor.Empty() || ranges.SecondFactor.Empty() || equation.Count(ranges) == 0 {
		return equation.Equation{}, ErrNoEquation
	}

	for range g.config.MaxAttempts {
		a := g.intIn(ranges.FirstFactor)
		b := g.intIn(ranges.SecondFactor)
		if ranges.Product.Contains(a * b) {
			return equation.New(a, b), nil
		}
	}

	// Sparse subspace: pick uniformly among the valid pairs, which is the
	// distribution rejection sampling converges to.
	all := equation.Enumerate(ranges)
	return all[g.rng.IntN(len(all))], nil
}

func (g *WeightedGenerator) intIn(r equation.NumberRange) int {
	return r.Min + g.rng.IntN(r.Size())
}

func (g *WeightedGenerator) pickRole(roles []equation.Role) equation.Role {
	return roles[g.rng.IntN(len(roles))]
}

// gapRole replaces a product choice with a factor role when one is allowed.
func gapRole(picked equation.Role, allowed []equation.Role) equation.Role {
	if picked != equation.Product {
		return picked
	}
	for _, r := range []equation.Role{equation.FirstFactor, equation.SecondFactor} {
		for _, a := range allowed {
			if a == r {
				return r
			}
		}
	}
	return equation.Product
}

func probability(pct int) float64 {
	return float64(pct) / 100
}
