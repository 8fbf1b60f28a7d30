package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigurationError rejects a (re)configuration. The running fleet is left as it was.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s %q %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfig
}

// ParseCounts turns raw operator input into floor and elevator counts.
func ParseCounts(floors, elevators string) (int, int, error) {
	f, err := parseCount("floors", floors)
	if err != nil {
		return 0, 0, err
	}
	e, err := parseCount("elevators", elevators)
	if err != nil {
		return 0, 0, err
	}
	return f, e, nil
}

func parseCount(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &ConfigurationError{Field: field, Value: raw, Reason: "is required"}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConfigurationError{Field: field, Value: raw, Reason: "is not a number"}
	}
	if n <= 0 {
		return 0, &ConfigurationError{Field: field, Value: raw, Reason: "must be positive"}
	}
	return n, nil
}
