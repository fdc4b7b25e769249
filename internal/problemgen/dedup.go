package problemgen

import "github.com/abhisek/multiz/internal/equation"

// Dedup tracks the equations already asked in a session. The unknown role
// is not part of the key: the same equation with another unknown is a
// repeat.
type Dedup struct {
	seen map[equation.Equation]struct{}
}

// NewDedup creates an empty Dedup.
func NewDedup() *Dedup {
	return &Dedup{seen: make(map[equation.Equation]struct{})}
}

// Add records eq and reports whether it was new.
func (d *Dedup) Add(eq equation.Equation) bool {
	if _, ok := d.seen[eq]; ok {
		return false
	}
	d.seen[eq] = struct{}{}
	return true
}

// Seen reports whether eq was recorded.
func (d *Dedup) Seen(eq equation.Equation) bool {
	_, ok := d.seen[eq]
	return ok
}

// Len returns the number of distinct equations recorded.
func (d *Dedup) Len() int {
	return len(d.seen)
}
