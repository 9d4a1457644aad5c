package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rickhull/pid-controller-ng/pid"
)

const (
	DefaultPlant    = "room"
	DefaultSetpoint = 20.0
	DefaultDt       = 1.0
	DefaultDuration = 3600.0
	DefaultKp       = 0.5
	DefaultKi       = 0.005
	DefaultKd       = 0.0
	DefaultWatts    = 2000.0
)

type Config struct {
	Plant    string       `yaml:"plant"`
	Setpoint float64      `yaml:"setpoint"`
	Dt       float64      `yaml:"dt"`
	Duration float64      `yaml:"duration"`
	Gains    GainsConfig  `yaml:"gains"`
	Limits   LimitsConfig `yaml:"limits"`
	Watts    float64      `yaml:"watts"`
}

type GainsConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
	Kd float64 `yaml:"kd"`
}

// LimitsConfig holds optional [lo, hi] clamp intervals. A missing key
// leaves the corresponding value unclamped.
type LimitsConfig struct {
	P      []float64 `yaml:"p,omitempty"`
	I      []float64 `yaml:"i,omitempty"`
	D      []float64 `yaml:"d,omitempty"`
	Output []float64 `yaml:"output,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Plant:    DefaultPlant,
		Setpoint: DefaultSetpoint,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Gains: GainsConfig{
			Kp: DefaultKp,
			Ki: DefaultKi,
			Kd: DefaultKd,
		},
		Limits: LimitsConfig{Output: []float64{0, 1}},
		Watts:  DefaultWatts,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildPID constructs a controller from the config, surfacing dt and
// range misconfiguration at build time.
func (c *Config) BuildPID() (*pid.PIDController, error) {
	ctl, err := pid.NewPID(c.Setpoint, c.Dt)
	if err != nil {
		return nil, err
	}
	ctl.Kp = c.Gains.Kp
	ctl.Ki = c.Gains.Ki
	ctl.Kd = c.Gains.Kd

	if ctl.PRange, err = buildRange("p", c.Limits.P); err != nil {
		return nil, err
	}
	if ctl.IRange, err = buildRange("i", c.Limits.I); err != nil {
		return nil, err
	}
	if ctl.DRange, err = buildRange("d", c.Limits.D); err != nil {
		return nil, err
	}
	if ctl.ORange, err = buildRange("output", c.Limits.Output); err != nil {
		return nil, err
	}
	return ctl, nil
}

func buildRange(name string, limits []float64) (*pid.Range, error) {
	if len(limits) == 0 {
		return nil, nil
	}
	if len(limits) != 2 {
		return nil, fmt.Errorf("%s limit must be [lo, hi], got %v", name, limits)
	}
	r, err := pid.NewRange(limits[0], limits[1])
	if err != nil {
		return nil, fmt.Errorf("%s limit: %w", name, err)
	}
	return r, nil
}
