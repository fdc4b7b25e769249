package problemgen

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/multiz/internal/equation"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func classicInput() GenerateInput {
	return GenerateInput{
		Ranges: equation.Ranges{
			FirstFactor:  equation.NumberRange{Min: 1, Max: 10},
			SecondFactor: equation.NumberRange{Min: 1, Max: 10},
			Product:      equation.NumberRange{Min: 1, Max: 100},
		},
		UnknownRoles: []equation.Role{equation.FirstFactor, equation.SecondFactor, equation.Product},
	}
}

func TestGenerate_RespectsRanges(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	input := classicInput()
	input.Ranges.Product = equation.NumberRange{Min: 20, Max: 40}
	input.FosterChallengingPct = 50
	input.FosterGapsPct = 50

	for i := 0; i < 500; i++ {
		p, err := g.Generate(context.Background(), input)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		e := p.Equation
		if e.Product != e.FirstFactor*e.SecondFactor {
			t.Fatalf("%v: product invariant broken", e)
		}
		if !input.Ranges.Product.Contains(e.Product) {
			t.Fatalf("%v: product outside %s", e, input.Ranges.Product)
		}
		if !input.Ranges.FirstFactor.Contains(e.FirstFactor) || !input.Ranges.SecondFactor.Contains(e.SecondFactor) {
			t.Fatalf("%v: factor outside ranges", e)
		}
	}
}

func TestGenerate_GapBiasAvoidsProduct(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	input := classicInput()
	input.FosterGapsPct = 100

	for i := 0; i < 100; i++ {
		p, err := g.Generate(context.Background(), input)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if p.Unknown == equation.Product {
			t.Fatalf("question %d has product unknown: %s", i, p.DisplayText())
		}
		if p.Kind != KindGap {
			t.Errorf("Kind = %q, want %q", p.Kind, KindGap)
		}
	}
}

func TestGenerate_GapWithOnlyProductAllowed(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	input := classicInput()
	input.UnknownRoles = []equation.Role{equation.Product}
	input.FosterGapsPct = 100

	p, err := g.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Unknown != equation.Product {
		t.Errorf("Unknown = %q, want product", p.Unknown)
	}
}

func TestGapRole(t *testing.T) {
	tests := []struct {
		picked  equation.Role
		allowed []equation.Role
		want    equation.Role
	}{
		{equation.Product, []equation.Role{equation.SecondFactor, equation.Product}, equation.SecondFactor},
		{equation.Product, []equation.Role{equation.FirstFactor, equation.SecondFactor, equation.Product}, equation.FirstFactor},
		{equation.Product, []equation.Role{equation.Product}, equation.Product},
		{equation.SecondFactor, []equation.Role{equation.SecondFactor, equation.Product}, equation.SecondFactor},
	}
	for _, tt := range tests {
		if got := gapRole(tt.picked, tt.allowed); got != tt.want {
			t.Errorf("gapRole(%s, %v) = %s, want %s", tt.picked, tt.allowed, got, tt.want)
		}
	}
}

func TestGenerate_ChallengingFactorsAtLeastFive(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	input := classicInput()
	input.FosterChallengingPct = 100
	input.FosterGapsPct = 100

	for i := 0; i < 200; i++ {
		p, err := g.Generate(context.Background(), input)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if p.Kind != KindChallenging {
			t.Fatalf("Kind = %q, want challenging", p.Kind)
		}
		if p.FirstFactor < 5 || p.SecondFactor < 5 {
			t.Fatalf("challenging question has small factor: %v", p.Equation)
		}
	}
}

func TestGenerate_ChallengingEmptySubspace(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	input := classicInput()
	input.Ranges.FirstFactor = equation.NumberRange{Min: 1, Max: 4}
	input.FosterChallengingPct = 100

	_, err := g.Generate(context.Background(), input)
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *ConfigError", err)
	}
	if ce.Kind != KindChallenging {
		t.Errorf("Kind = %q, want challenging", ce.Kind)
	}
	if !errors.Is(err, ErrNoEquation) {
		t.Errorf("err does not wrap ErrNoEquation: %v", err)
	}
}

func TestGenerate_NoEquation(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	input := classicInput()
	input.Ranges.Product = equation.NumberRange{Min: 101, Max: 200}

	_, err := g.Generate(context.Background(), input)
	if !errors.Is(err, ErrNoEquation) {
		t.Fatalf("err = %v, want ErrNoEquation", err)
	}
}

func TestGenerate_NoRoles(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	input := classicInput()
	input.UnknownRoles = nil

	_, err := g.Generate(context.Background(), input)
	if !errors.Is(err, ErrNoUnknownRoles) {
		t.Fatalf("err = %v, want ErrNoUnknownRoles", err)
	}
}

func TestGenerate_SparseSubspaceFallsBack(t *testing.T) {
	g := New(testRNG(), Config{MaxAttempts: 1})
	input := GenerateInput{
		Ranges: equation.Ranges{
			FirstFactor:  equation.NumberRange{Min: 1, Max: 100},
			SecondFactor: equation.NumberRange{Min: 1, Max: 100},
			Product:      equation.NumberRange{Min: 100, Max: 100},
		},
		UnknownRoles: []equation.Role{equation.Product},
	}
	for i := 0; i < 50; i++ {
		p, err := g.Generate(context.Background(), input)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if p.Product != 100 {
			t.Fatalf("Product = %d, want 100", p.Product)
		}
	}
}

func TestGenerate_CanceledContext(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Generate(ctx, classicInput()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGenerate_RolesDrawnUniformly(t *testing.T) {
	g := New(testRNG(), DefaultConfig())
	input := classicInput()
	counts := map[equation.Role]int{}
	const n = 3000
	for i := 0; i < n; i++ {
		p, err := g.Generate(context.Background(), input)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		counts[p.Unknown]++
	}
	for _, r := range input.UnknownRoles {
		if counts[r] < n/3-200 || counts[r] > n/3+200 {
			t.Errorf("role %s drawn %d times out of %d", r, counts[r], n)
		}
	}
}
