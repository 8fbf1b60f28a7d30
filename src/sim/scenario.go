package sim

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"liftsim/src/config"
	"liftsim/src/display"
	"liftsim/src/timer"
	"liftsim/src/types"
)

// scenarioKey places scripted presses ahead of elevator callbacks due at the same instant.
const scenarioKey = 0

// Scenario is a scripted run on the virtual clock.
type Scenario struct {
	Config config.Config   `yaml:"config"`
	Calls  []ScheduledCall `yaml:"calls"`
	Until  time.Duration   `yaml:"until"`
}

type ScheduledCall struct {
	At    time.Duration `yaml:"at"`
	Floor int           `yaml:"floor"`
	Dir   string        `yaml:"dir"`
}

func LoadScenario(path string) (Scenario, error) {
	scenario := Scenario{Config: config.Default()}
	file, err := os.Open(path)
	if err != nil {
		return scenario, fmt.Errorf("open scenario: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&scenario); err != nil {
		return scenario, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if err := scenario.Config.Validate(); err != nil {
		return scenario, err
	}
	for i, call := range scenario.Calls {
		if _, err := types.ParseDirection(call.Dir); err != nil {
			return scenario, fmt.Errorf("scenario call %d: %w", i, err)
		}
	}
	return scenario, nil
}

// RunScenario plays the scenario to its end and returns every event emitted.
// Events also go to sink when it is not nil.
func RunScenario(scenario Scenario, sink types.EventSink) ([]display.Stamped, error) {
	clock := timer.NewVirtual()
	recorder := display.NewRecorder(clock)
	var out types.EventSink = recorder
	if sink != nil {
		out = display.Tee(recorder, sink)
	}

	system, err := StartVirtual(scenario.Config, clock, out)
	if err != nil {
		return nil, err
	}

	until := scenario.Until
	for _, scheduled := range scenario.Calls {
		dir, err := types.ParseDirection(scheduled.Dir)
		if err != nil {
			return nil, err
		}
		floor := scheduled.Floor
		clock.AfterFunc(scheduled.At, scenarioKey, func() {
			if _, err := system.RequestCall(floor, dir); err != nil {
				slog.Warn("Scenario call rejected", "floor", floor, "dir", dir, "err", err)
			}
		})
		until = max(until, scheduled.At)
	}

	clock.Advance(until)
	return recorder.Events, nil
}
