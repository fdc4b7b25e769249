package progress

// Shade is a colour bucket for a heatmap cell, from best to worst.
type Shade int

const (
	ShadeNone Shade = iota // no data, or no spread to compare against
	ShadeBest
	ShadeGreat
	ShadeGood
	ShadeFair
	ShadePoor
	ShadeWorst
)

// AccuracyShade buckets an accuracy cell.
func AccuracyShade(c Cell) Shade {
	switch {
	case c.Total == 0:
		return ShadeNone
	case c.Percentage >= 100:
		return ShadeBest
	case c.Percentage >= 80:
		return ShadeGreat
	case c.Percentage >= 60:
		return ShadeGood
	case c.Percentage >= 40:
		return ShadeFair
	case c.Percentage >= 20:
		return ShadePoor
	default:
		return ShadeWorst
	}
}

// TimingShade buckets a timing cell relative to the report's fastest (lo)
// and slowest (hi) samples.
func TimingShade(c TimingCell, lo, hi float64) Shade {
	if !c.HasData || lo == hi {
		return ShadeNone
	}
	pct := (c.AverageSeconds - lo) / (hi - lo) * 100
	switch {
	case pct <= 20:
		return ShadeBest
	case pct <= 40:
		return ShadeGreat
	case pct <= 60:
		return ShadeGood
	case pct <= 80:
		return ShadeFair
	case pct <= 90:
		return ShadePoor
	default:
		return ShadeWorst
	}
}
