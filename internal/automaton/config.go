package automaton

import "fmt"

// Default generation limits.
const (
	DefaultMaxLength  = 20
	DefaultMaxCount   = 10000
	DefaultSampleSize = 10
)

// GenerateConfig bounds sample generation.
type GenerateConfig struct {
	// MaxLength is the longest string, in runes, that may be generated.
	// Longer candidates are pruned, never truncated.
	// Default: 20.
	MaxLength int

	// MaxCount caps how many distinct strings are collected before sampling.
	// Default: 10000.
	MaxCount int

	// SampleSize is how many of the collected strings are returned after
	// shuffling.
	// Default: 10.
	SampleSize int
}

// DefaultGenerateConfig returns the default limits.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		MaxLength:  DefaultMaxLength,
		MaxCount:   DefaultMaxCount,
		SampleSize: DefaultSampleSize,
	}
}

// Validate rejects negative limits. Zero values are replaced by
// ApplyDefaults.
func (c GenerateConfig) Validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("max length cannot be negative: %d", c.MaxLength)
	}
	if c.MaxCount < 0 {
		return fmt.Errorf("max count cannot be negative: %d", c.MaxCount)
	}
	if c.SampleSize < 0 {
		return fmt.Errorf("sample size cannot be negative: %d", c.SampleSize)
	}
	return nil
}

// ApplyDefaults returns a copy of c with zero values replaced by defaults.
func (c GenerateConfig) ApplyDefaults() GenerateConfig {
	result := c
	if result.MaxLength == 0 {
		result.MaxLength = DefaultMaxLength
	}
	if result.MaxCount == 0 {
		result.MaxCount = DefaultMaxCount
	}
	if result.SampleSize == 0 {
		result.SampleSize = DefaultSampleSize
	}
	return result
}
