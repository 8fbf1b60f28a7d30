package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	NumFloors         = 10
	NumElevators      = 3
	TickPeriod        = 50 * time.Millisecond
	TravelPerFloor    = 2 * time.Second
	DoorOpenDuration  = 2500 * time.Millisecond
	DoorCloseDuration = 2500 * time.Millisecond
	SettleMargin      = 5 * time.Second
)

// Config holds the building shape and the timing model of a simulation.
type Config struct {
	Floors            int           `yaml:"floors"`
	Elevators         int           `yaml:"elevators"`
	TickPeriod        time.Duration `yaml:"tick_period"`
	TravelPerFloor    time.Duration `yaml:"travel_per_floor"`
	DoorOpenDuration  time.Duration `yaml:"door_open"`
	DoorCloseDuration time.Duration `yaml:"door_close"`
	SettleMargin      time.Duration `yaml:"settle_margin"`
}

func Default() Config {
	return Config{
		Floors:            NumFloors,
		Elevators:         NumElevators,
		TickPeriod:        TickPeriod,
		TravelPerFloor:    TravelPerFloor,
		DoorOpenDuration:  DoorOpenDuration,
		DoorCloseDuration: DoorCloseDuration,
		SettleMargin:      SettleMargin,
	}
}

// WithCounts returns a copy of c with the building shape replaced.
func (c Config) WithCounts(floors, elevators int) Config {
	c.Floors = floors
	c.Elevators = elevators
	return c
}

// Validate reports the first field that cannot be simulated.
func (c Config) Validate() error {
	switch {
	case c.Floors <= 0:
		return &ConfigurationError{Field: "floors", Value: fmt.Sprint(c.Floors), Reason: "must be positive"}
	case c.Elevators <= 0:
		return &ConfigurationError{Field: "elevators", Value: fmt.Sprint(c.Elevators), Reason: "must be positive"}
	case c.TickPeriod <= 0:
		return &ConfigurationError{Field: "tick_period", Value: c.TickPeriod.String(), Reason: "must be positive"}
	case c.TravelPerFloor < 0:
		return &ConfigurationError{Field: "travel_per_floor", Value: c.TravelPerFloor.String(), Reason: "must not be negative"}
	case c.DoorOpenDuration < 0:
		return &ConfigurationError{Field: "door_open", Value: c.DoorOpenDuration.String(), Reason: "must not be negative"}
	case c.DoorCloseDuration < 0:
		return &ConfigurationError{Field: "door_close", Value: c.DoorCloseDuration.String(), Reason: "must not be negative"}
	case c.SettleMargin < 0:
		return &ConfigurationError{Field: "settle_margin", Value: c.SettleMargin.String(), Reason: "must not be negative"}
	}
	return nil
}

// Load reads a YAML config file. Fields missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
