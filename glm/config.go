package glm

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prfkit/prfkit/pkg/errors"
)

// Config mirrors the solver options in a YAML-loadable form, so the fitting
// stage can be tuned from the same configuration file that drives the rest
// of the pipeline.
//
// Example:
//
//	strict_degeneracy_check: true
//	parallel_threshold: 2048
//	worker_cap: 8
type Config struct {
	StrictDegeneracyCheck bool `yaml:"strict_degeneracy_check"`
	ParallelThreshold     int  `yaml:"parallel_threshold"`
	WorkerCap             int  `yaml:"worker_cap"`
}

// LoadConfig reads and validates a YAML solver configuration.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return ParseConfig(b)
}

// ParseConfig parses and validates YAML configuration bytes.
func ParseConfig(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if c.ParallelThreshold < 0 {
		return nil, errors.NewValidationError("parallel_threshold", "must not be negative", c.ParallelThreshold)
	}
	if c.WorkerCap < 0 {
		return nil, errors.NewValidationError("worker_cap", "must not be negative", c.WorkerCap)
	}

	return &c, nil
}

// Options converts the config into solver options. Zero-valued numeric
// fields are omitted so the solver defaults apply; set them explicitly in
// the YAML to override.
func (c *Config) Options() []Option {
	opts := []Option{
		WithStrictDegeneracyCheck(c.StrictDegeneracyCheck),
	}
	if c.ParallelThreshold > 0 {
		opts = append(opts, WithParallelThreshold(c.ParallelThreshold))
	}
	if c.WorkerCap > 0 {
		opts = append(opts, WithWorkerCap(c.WorkerCap))
	}
	return opts
}
