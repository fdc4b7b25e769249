package equation

import "testing"

func classicRanges() Ranges {
	return Ranges{
		FirstFactor:  NumberRange{Min: 1, Max: 10},
		SecondFactor: NumberRange{Min: 1, Max: 10},
		Product:      NumberRange{Min: 1, Max: 100},
	}
}

func TestEnumerate_ClassicTable(t *testing.T) {
	got := Enumerate(classicRanges())
	if len(got) != 100 {
		t.Fatalf("len = %d, want 100", len(got))
	}
	i := 0
	for a := 1; a <= 10; a++ {
		for b := 1; b <= 10; b++ {
			want := New(a, b)
			if got[i] != want {
				t.Errorf("got[%d] = %v, want %v", i, got[i], want)
			}
			i++
		}
	}
}

func TestEnumerate_MatchesBruteForce(t *testing.T) {
	tests := []Ranges{
		{NumberRange{1, 10}, NumberRange{1, 10}, NumberRange{20, 40}},
		{NumberRange{3, 3}, NumberRange{1, 12}, NumberRange{1, 100}},
		{NumberRange{5, 9}, NumberRange{2, 7}, NumberRange{30, 30}},
		{NumberRange{1, 4}, NumberRange{1, 4}, NumberRange{50, 100}},
		{NumberRange{2, 8}, NumberRange{6, 9}, NumberRange{1, 5}},
	}
	for _, rs := range tests {
		got := Enumerate(rs)
		seen := map[Equation]bool{}
		for _, e := range got {
			if e.Product != e.FirstFactor*e.SecondFactor {
				t.Errorf("%v: product invariant broken", e)
			}
			if !rs.FirstFactor.Contains(e.FirstFactor) || !rs.SecondFactor.Contains(e.SecondFactor) || !rs.Product.Contains(e.Product) {
				t.Errorf("%v outside ranges %+v", e, rs)
			}
			seen[e] = true
		}
		want := 0
		for a := 1; a <= 20; a++ {
			for b := 1; b <= 20; b++ {
				if rs.FirstFactor.Contains(a) && rs.SecondFactor.Contains(b) && rs.Product.Contains(a*b) {
					want++
					if !seen[New(a, b)] {
						t.Errorf("%+v: missing %d × %d", rs, a, b)
					}
				}
			}
		}
		if len(got) != want {
			t.Errorf("%+v: len = %d, want %d", rs, len(got), want)
		}
		if Count(rs) != want {
			t.Errorf("%+v: Count = %d, want %d", rs, Count(rs), want)
		}
	}
}

func TestEnumerate_Empty(t *testing.T) {
	rs := Ranges{NumberRange{1, 2}, NumberRange{1, 2}, NumberRange{50, 60}}
	if got := Enumerate(rs); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	inverted := Ranges{NumberRange{5, 1}, NumberRange{1, 10}, NumberRange{1, 100}}
	if got := Enumerate(inverted); len(got) != 0 {
		t.Errorf("inverted range: len = %d, want 0", len(got))
	}
}

func TestQuestion_DisplayText(t *testing.T) {
	e := New(6, 7)
	tests := []struct {
		unknown Role
		want    string
	}{
		{FirstFactor, "? × 7 = 42"},
		{SecondFactor, "6 × ? = 42"},
		{Product, "6 × 7 = ?"},
	}
	for _, tt := range tests {
		q := Question{Equation: e, Unknown: tt.unknown}
		if got := q.DisplayText(); got != tt.want {
			t.Errorf("DisplayText(%s) = %q, want %q", tt.unknown, got, tt.want)
		}
	}
}

func TestQuestion_Answer(t *testing.T) {
	e := New(4, 9)
	for role, want := range map[Role]int{FirstFactor: 4, SecondFactor: 9, Product: 36} {
		q := Question{Equation: e, Unknown: role}
		if got := q.Answer(); got != want {
			t.Errorf("Answer(%s) = %d, want %d", role, got, want)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		got, err := ParseRole(string(r))
		if err != nil || got != r {
			t.Errorf("ParseRole(%q) = %q, %v", r, got, err)
		}
	}
	if _, err := ParseRole("quotient"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestNumberRange(t *testing.T) {
	r := NumberRange{Min: 3, Max: 3}
	if !r.Contains(3) || r.Contains(4) {
		t.Error("single-value range Contains wrong")
	}
	if r.Size() != 1 {
		t.Errorf("Size = %d, want 1", r.Size())
	}
	if (NumberRange{Min: 4, Max: 2}).Size() != 0 {
		t.Error("inverted range should have size 0")
	}
}
