package problemgen

// Config controls the behavior of the WeightedGenerator.
type Config struct {
	// MaxAttempts bounds rejection sampling of a factor pair whose product
	// lands in the product range. Once exhausted, the generator picks
	// uniformly from the enumerated subspace instead.
	MaxAttempts int

	// ChallengingFloor is the lowest factor used on the challenging path.
	ChallengingFloor int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:      1000,
		ChallengingFloor: 5,
	}
}
