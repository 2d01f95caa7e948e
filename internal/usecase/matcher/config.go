package matcher

// Config holds ranking and sectioning knobs.
type Config struct {
	// BestThreshold is the minimum score for the best section.
	BestThreshold float64
	// BestCap is the maximum size of the best section.
	BestCap int
	// ExploreCap is the maximum size of the explore section.
	ExploreCap int
	// SourceCap limits results per source feed (0 = disabled).
	SourceCap int
	// TopReasons caps the per-dog reason list.
	TopReasons int
	// MinResults below which the low_results prompt trigger fires.
	MinResults int
	// NeutralScore is used when no preference applies to a dog.
	NeutralScore float64
}

// DefaultConfig returns the baseline ranking configuration.
func DefaultConfig() Config {
	return Config{
		BestThreshold: 0.6,
		BestCap:       10,
		ExploreCap:    6,
		SourceCap:     0,
		TopReasons:    7,
		MinResults:    5,
		NeutralScore:  0.5,
	}
}

// applyDefaults fills zero fields with defaults.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.BestThreshold <= 0 {
		c.BestThreshold = d.BestThreshold
	}
	if c.BestCap <= 0 {
		c.BestCap = d.BestCap
	}
	if c.ExploreCap <= 0 {
		c.ExploreCap = d.ExploreCap
	}
	if c.TopReasons <= 0 {
		c.TopReasons = d.TopReasons
	}
	if c.MinResults <= 0 {
		c.MinResults = d.MinResults
	}
	if c.NeutralScore <= 0 {
		c.NeutralScore = d.NeutralScore
	}
}
