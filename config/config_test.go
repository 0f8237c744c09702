package config

import (
	"math"
	"testing"

	"github.com/spf13/viper"
)

func TestNew_defaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if c.Window != DefaultWindow {
		t.Errorf("Window = %d, want %d", c.Window, DefaultWindow)
	}
	if c.ReuseCost != DefaultReuseCost {
		t.Errorf("ReuseCost = %v, want %v", c.ReuseCost, DefaultReuseCost)
	}
	if c.JoinCost != DefaultJoinCost {
		t.Errorf("JoinCost = %v, want %v", c.JoinCost, DefaultJoinCost)
	}
	if c.SynthCost != DefaultSynthCost {
		t.Errorf("SynthCost = %v, want %v", c.SynthCost, DefaultSynthCost)
	}
	if c.SynthCostQuad != DefaultSynthCostQuad {
		t.Errorf("SynthCostQuad = %v, want %v", c.SynthCostQuad, DefaultSynthCostQuad)
	}
	if c.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", c.Workers)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Window:    500,
		ReuseCost: 5,
		JoinCost:  1.5,
		SynthCost: 0.2,
		Workers:   4,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero costs are allowed", func(c *Config) { c.ReuseCost, c.JoinCost, c.SynthCost = 0, 0, 0 }, false},
		{"window of one", func(c *Config) { c.Window = 1 }, false},
		{"zero window", func(c *Config) { c.Window = 0 }, true},
		{"negative window", func(c *Config) { c.Window = -10 }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative reuse cost", func(c *Config) { c.ReuseCost = -1 }, true},
		{"negative join cost", func(c *Config) { c.JoinCost = -0.5 }, true},
		{"negative synth cost", func(c *Config) { c.SynthCost = -0.1 }, true},
		{"negative quad cost", func(c *Config) { c.SynthCostQuad = -1e-4 }, true},
		{"NaN cost", func(c *Config) { c.SynthCost = math.NaN() }, true},
		{"infinite cost", func(c *Config) { c.ReuseCost = math.Inf(1) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
