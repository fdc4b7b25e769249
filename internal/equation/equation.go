// Package equation defines multiplication equations, the roles a question can
// hide, and enumeration of every equation that fits a set of ranges.
package equation

import (
	"fmt"
	"strconv"
)

// Role identifies one of the three numbers in a multiplication equation.
type Role string

const (
	FirstFactor  Role = "first_factor"
	SecondFactor Role = "second_factor"
	Product      Role = "product"
)

// AllRoles lists every role in display order.
var AllRoles = []Role{FirstFactor, SecondFactor, Product}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case FirstFactor, SecondFactor, Product:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the role.
func (r Role) DisplayName() string {
	switch r {
	case FirstFactor:
		return "First factor"
	case SecondFactor:
		return "Second factor"
	case Product:
		return "Product"
	default:
		return string(r)
	}
}

// ParseRole converts a string to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// NumberRange is an inclusive integer interval.
type NumberRange struct {
	Min int `json:"min" toml:"min"`
	Max int `json:"max" toml:"max"`
}

// Contains reports whether v lies within the range.
func (r NumberRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Empty reports whether the range holds no values.
func (r NumberRange) Empty() bool {
	return r.Min > r.Max
}

// Size returns the number of integers in the range.
func (r NumberRange) Size() int {
	if r.Empty() {
		return 0
	}
	return r.Max - r.Min + 1
}

func (r NumberRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Ranges holds one range per role.
type Ranges struct {
	FirstFactor  NumberRange `json:"firstFactor"`
	SecondFactor NumberRange `json:"secondFactor"`
	Product      NumberRange `json:"product"`
}

// For returns the range configured for role.
func (rs Ranges) For(role Role) NumberRange {
	switch role {
	case FirstFactor:
		return rs.FirstFactor
	case SecondFactor:
		return rs.SecondFactor
	default:
		return rs.Product
	}
}

// Equation is a multiplication fact. Product always equals
// FirstFactor * SecondFactor.
type Equation struct {
	FirstFactor  int `json:"firstFactor"`
	SecondFactor int `json:"secondFactor"`
	Product      int `json:"product"`
}

// New builds the equation a × b.
func New(a, b int) Equation {
	return Equation{FirstFactor: a, SecondFactor: b, Product: a * b}
}

// Value returns the number that plays role in the equation.
func (e Equation) Value(role Role) int {
	switch role {
	case FirstFactor:
		return e.FirstFactor
	case SecondFactor:
		return e.SecondFactor
	default:
		return e.Product
	}
}

func (e Equation) String() string {
	return fmt.Sprintf("%d × %d = %d", e.FirstFactor, e.SecondFactor, e.Product)
}

// Placeholder is shown in place of the hidden value.
const Placeholder = "?"

// Question is an equation with one hidden role.
type Question struct {
	Equation
	Unknown Role `json:"unknown"`
}

// Answer returns the value the player must supply.
func (q Question) Answer() int {
	return q.Value(q.Unknown)
}

// DisplayText renders the question with the unknown replaced by Placeholder,
// e.g. "? × 7 = 42".
func (q Question) DisplayText() string {
	part := func(role Role) string {
		if role == q.Unknown {
			return Placeholder
		}
		return strconv.Itoa(q.Value(role))
	}
	return part(FirstFactor) + " × " + part(SecondFactor) + " = " + part(Product)
}

// Enumerate returns every equation whose factors lie in the factor ranges and
// whose product lies in the product range, ordered by first factor then
// second factor. An empty result is valid.
func Enumerate(ranges Ranges) []Equation {
	var out []Equation
	for a := ranges.FirstFactor.Min; a <= ranges.FirstFactor.Max; a++ {
		for b := ranges.SecondFactor.Min; b <= ranges.SecondFactor.Max; b++ {
			if ranges.Product.Contains(a * b) {
				out = append(out, New(a, b))
			}
		}
	}
	return out
}

// Count returns len(Enumerate(ranges)) without allocating.
func Count(ranges Ranges) int {
	n := 0
	for a := ranges.FirstFactor.Min; a <= ranges.FirstFactor.Max; a++ {
		for b := ranges.SecondFactor.Min; b <= ranges.SecondFactor.Max; b++ {
			if ranges.Product.Contains(a * b) {
				n++
			}
		}
	}
	return n
}
