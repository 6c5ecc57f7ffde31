package hypergrasp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfigIsInvalidWithoutInputFile(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.ErrorIs(t, cfg.Validate(), ErrUserInput)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) { c.InputFile = "x.in" }, false},
		{"alpha_too_high", func(c *Config) { c.InputFile = "x.in"; c.Alpha = 1.5 }, true},
		{"alpha_negative", func(c *Config) { c.InputFile = "x.in"; c.Alpha = -0.1 }, true},
		{"bad_criteria", func(c *Config) { c.InputFile = "x.in"; c.Criteria = "bogus" }, true},
		{"zero_criteria_limit", func(c *Config) { c.InputFile = "x.in"; c.CriteriaLimit = 0 }, true},
		{"bad_problem", func(c *Config) { c.InputFile = "x.in"; c.MOCOProblem = "tsp" }, true},
		{"missing_input_file", func(c *Config) {}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
