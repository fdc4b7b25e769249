package session

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/problemgen"
	"github.com/abhisek/multiz/internal/settings"
)

// Builder draws the question sequence for one session.
type Builder struct {
	rng         *rand.Rand
	gen         problemgen.Generator
	maxAttempts int
}

// NewBuilder creates a Builder. gen may be nil, in which case only the
// enumerated policies are available.
func NewBuilder(rng *rand.Rand, gen problemgen.Generator) *Builder {
	return &Builder{
		rng:         rng,
		gen:         gen,
		maxAttempts: problemgen.DefaultConfig().MaxAttempts,
	}
}

// Questions picks the build strategy for s: the weighted generator when any
// fostering bias is on, otherwise the enumerated pool.
func (b *Builder) Questions(ctx context.Context, s settings.GameSettings) ([]equation.Question, error) {
	if b.gen != nil && (s.FosterChallengingPct > 0 || s.FosterGapsPct > 0) {
		return b.BuildGenerated(ctx, s)
	}
	return b.Build(s)
}

// Build draws questions from the enumerated equations of s.Ranges according
// to s.SelectionPolicy. Zero available equations yield zero questions.
func (b *Builder) Build(s settings.GameSettings) ([]equation.Question, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	pool := equation.Enumerate(s.Ranges)
	return b.draw(pool, s.QuestionsCount, s.UnknownRoles, s.SelectionPolicy), nil
}

func (b *Builder) draw(pool []equation.Equation, count int, roles []equation.Role, policy settings.SelectionPolicy) []equation.Question {
	if len(pool) == 0 {
		return nil
	}

	var questions []equation.Question
	switch policy {
	case settings.WithReplacement:
		for range count {
			eq := pool[b.rng.IntN(len(pool))]
			if q, ok := b.attachRole(eq, roles); ok {
				questions = append(questions, q)
			}
		}
	default:
		remaining := append([]equation.Equation(nil), pool...)
		n := min(count, len(remaining))
		for range n {
			i := b.rng.IntN(len(remaining))
			eq := remaining[i]
			remaining[i] = remaining[len(remaining)-1]
			remaining = remaining[:len(remaining)-1]
			if q, ok := b.attachRole(eq, roles); ok {
				questions = append(questions, q)
			}
		}
	}
	return questions
}

// attachRole picks a uniformly random unknown. It reports false when no role
// is available.
func (b *Builder) attachRole(eq equation.Equation, roles []equation.Role) (equation.Question, bool) {
	if len(roles) == 0 {
		return equation.Question{}, false
	}
	return equation.Question{Equation: eq, Unknown: roles[b.rng.IntN(len(roles))]}, true
}

// BuildGenerated draws s.QuestionsCount questions through the weighted
// generator. Under WithoutReplacement no equation repeats and the session is
// capped at the number of available equations; once the generator keeps
// returning repeats, the rest is drawn from the unused equations. Zero
// available equations yield zero questions.
func (b *Builder) BuildGenerated(ctx context.Context, s settings.GameSettings) ([]equation.Question, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if b.gen == nil {
		return nil, fmt.Errorf("build generated session: no generator configured")
	}

	available := equation.Count(s.Ranges)
	if available == 0 {
		return nil, nil
	}

	input := problemgen.InputFromSettings(s)
	target := s.QuestionsCount
	unique := s.SelectionPolicy == settings.WithoutReplacement
	if unique {
		target = min(target, available)
	}

	dedup := problemgen.NewDedup()
	questions := make([]equation.Question, 0, target)
	misses := 0
	for len(questions) < target {
		p, err := b.gen.Generate(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("generate question %d: %w", len(questions)+1, err)
		}
		if unique && !dedup.Add(p.Question.Equation) {
			misses++
			if misses >= b.maxAttempts {
				break
			}
			continue
		}
		misses = 0
		questions = append(questions, p.Question)
	}

	if missing := target - len(questions); missing > 0 {
		var unused []equation.Equation
		for _, eq := range equation.Enumerate(s.Ranges) {
			if !dedup.Seen(eq) {
				unused = append(unused, eq)
			}
		}
		questions = append(questions, b.draw(unused, missing, s.UnknownRoles, settings.WithoutReplacement)...)
	}
	return questions, nil
}
