// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"math"
	"runtime"

	"github.com/spf13/viper"
)

// Default cost parameters, from the viral construction experiments the
// planner was calibrated against.
const (
	DefaultWindow        = 500
	DefaultReuseCost     = 5.0
	DefaultJoinCost      = 1.5
	DefaultSynthCost     = 0.2
	DefaultSynthCostQuad = 0.0
)

// Config holds the cost model parameters and run settings shared by the
// planning commands. Values come from defaults, an optional settings file,
// and command line flags, in increasing priority.
type Config struct {
	// the maximum block length, in bp; reflects experimental limits on
	// how long a reused or synthesized piece can be
	Window int `mapstructure:"window"`

	// the fixed cost of reusing a block from the source, regardless of length
	ReuseCost float64 `mapstructure:"reuse-cost"`

	// the fixed cost per junction between adjacent blocks
	JoinCost float64 `mapstructure:"join-cost"`

	// the per-base cost of synthesized DNA (linear term)
	SynthCost float64 `mapstructure:"synth-cost"`

	// the quadratic synthesis cost coefficient; zero for purely linear cost
	SynthCostQuad float64 `mapstructure:"synth-cost-quad"`

	// the number of records to plan in parallel
	Workers int `mapstructure:"workers"`
}

// New returns a new Config struct populated by Viper settings (either
// from a local settings file) and/or command line arguments.
func New() (*Config, error) {
	viper.SetDefault("window", DefaultWindow)
	viper.SetDefault("reuse-cost", DefaultReuseCost)
	viper.SetDefault("join-cost", DefaultJoinCost)
	viper.SetDefault("synth-cost", DefaultSynthCost)
	viper.SetDefault("synth-cost-quad", DefaultSynthCostQuad)
	viper.SetDefault("workers", runtime.NumCPU())

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	return &c, nil
}

// Validate fails fast on parameters no planning run should start with.
func (c *Config) Validate() error {
	if c.Window < 1 {
		return fmt.Errorf("window must be a positive integer, got %d", c.Window)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be a positive integer, got %d", c.Workers)
	}
	costs := []struct {
		name  string
		value float64
	}{
		{"reuse-cost", c.ReuseCost},
		{"join-cost", c.JoinCost},
		{"synth-cost", c.SynthCost},
		{"synth-cost-quad", c.SynthCostQuad},
	}
	for _, p := range costs {
		if p.value < 0 || math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s must be a non-negative finite number, got %v", p.name, p.value)
		}
	}
	return nil
}
