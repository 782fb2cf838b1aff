package bptree

import "fmt"

// Numeric is the set of key kinds admitted by the tree: any Go integer or
// floating point kind. Keys must be totally ordered (via <) and castable
// to float64 for the leaf's linear predictor.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Config holds the parameters recognized at tree construction. Zero
// values for the tuning knobs are replaced with their defaults before
// validation.
type Config struct {
	// Order is the maximum number of children per internal node. Must be >= 3.
	Order int

	// InitialLeafCapacity is the starting slot count for every new leaf.
	// Must be >= 4.
	InitialLeafCapacity int

	// TrainingInterval is the number of insertions between predictor
	// retrains. Default 10.
	TrainingInterval int

	// ProbeRadius is the width of the predictor's local probe window on
	// each side of its hint. Default 3.
	ProbeRadius int

	// GrowthTrigger is the compaction-rate threshold above which a leaf's
	// capacity is grown. Default 0.30.
	GrowthTrigger float64

	// GrowthFactor is the capacity multiplier applied on growth. Default 1.5.
	GrowthFactor float64
}

// ConfigurationError reports a bad constructor argument. It prevents tree
// creation; New returns it as its error value, never panics on bad input.
type ConfigurationError struct {
	Field     string
	Value     any
	Violation string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("bptree: invalid config field %s=%v: %s", e.Field, e.Value, e.Violation)
}

// withDefaults returns a copy of cfg with zero-valued tuning knobs
// replaced by their defaults.
func (cfg Config) withDefaults() Config {
	if cfg.TrainingInterval == 0 {
		cfg.TrainingInterval = 10
	}
	if cfg.ProbeRadius == 0 {
		cfg.ProbeRadius = 3
	}
	if cfg.GrowthTrigger == 0 {
		cfg.GrowthTrigger = 0.30
	}
	if cfg.GrowthFactor == 0 {
		cfg.GrowthFactor = 1.5
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Order < 3 {
		return &ConfigurationError{Field: "Order", Value: cfg.Order, Violation: "must be >= 3"}
	}
	if cfg.InitialLeafCapacity < 4 {
		return &ConfigurationError{Field: "InitialLeafCapacity", Value: cfg.InitialLeafCapacity, Violation: "must be >= 4"}
	}
	if cfg.TrainingInterval < 1 {
		return &ConfigurationError{Field: "TrainingInterval", Value: cfg.TrainingInterval, Violation: "must be >= 1"}
	}
	if cfg.ProbeRadius < 0 {
		return &ConfigurationError{Field: "ProbeRadius", Value: cfg.ProbeRadius, Violation: "must be >= 0"}
	}
	if cfg.GrowthTrigger <= 0 || cfg.GrowthTrigger > 1 {
		return &ConfigurationError{Field: "GrowthTrigger", Value: cfg.GrowthTrigger, Violation: "must be in (0, 1]"}
	}
	if cfg.GrowthFactor <= 1 {
		return &ConfigurationError{Field: "GrowthFactor", Value: cfg.GrowthFactor, Violation: "must be > 1"}
	}
	return nil
}
