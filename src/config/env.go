package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvFloors         = "LIFTSIM_FLOORS"
	EnvElevators      = "LIFTSIM_ELEVATORS"
	EnvTick           = "LIFTSIM_TICK"
	EnvTravelPerFloor = "LIFTSIM_TRAVEL_PER_FLOOR"
	EnvDoorOpen       = "LIFTSIM_DOOR_OPEN"
	EnvDoorClose      = "LIFTSIM_DOOR_CLOSE"
	EnvSettle         = "LIFTSIM_SETTLE"
)

// ApplyEnvFile overrides fields of cfg with the LIFTSIM_* keys found in a .env file.
func ApplyEnvFile(cfg Config, path string) (Config, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return cfg, fmt.Errorf("read env file: %w", err)
	}
	return ApplyEnv(cfg, env)
}

func ApplyEnv(cfg Config, env map[string]string) (Config, error) {
	ints := map[string]*int{
		EnvFloors:    &cfg.Floors,
		EnvElevators: &cfg.Elevators,
	}
	for key, field := range ints {
		raw, ok := env[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, &ConfigurationError{Field: key, Value: raw, Reason: "is not a number"}
		}
		*field = n
	}

	durations := map[string]*time.Duration{
		EnvTick:           &cfg.TickPeriod,
		EnvTravelPerFloor: &cfg.TravelPerFloor,
		EnvDoorOpen:       &cfg.DoorOpenDuration,
		EnvDoorClose:      &cfg.DoorCloseDuration,
		EnvSettle:         &cfg.SettleMargin,
	}
	for key, field := range durations {
		raw, ok := env[key]
		if !ok {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, &ConfigurationError{Field: key, Value: raw, Reason: "is not a duration"}
		}
		*field = d
	}
	return cfg, cfg.Validate()
}
