package sim

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"liftsim/src/config"
	"liftsim/src/display"
	"liftsim/src/types"
)

const scenarioYAML = `
config:
  floors: 10
  elevators: 2
calls:
  - {at: 0s, floor: 6, dir: up}
  - {at: 100ms, floor: 6, dir: up}
  - {at: 1s, floor: 3, dir: down}
until: 1m
`

func writeScenario(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func count[T types.Event](events []display.Stamped) int {
	n := 0
	for _, stamped := range events {
		if _, ok := stamped.Event.(T); ok {
			n++
		}
	}
	return n
}

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if scenario.Config.Floors != 10 || scenario.Config.Elevators != 2 {
		t.Errorf("Expected 10 floors and 2 elevators, got %+v", scenario.Config)
	}
	if scenario.Config.TickPeriod != config.TickPeriod {
		t.Errorf("Expected default tick, got %v", scenario.Config.TickPeriod)
	}
	if len(scenario.Calls) != 3 || scenario.Calls[1].At != 100*time.Millisecond {
		t.Errorf("Expected 3 calls with the second at 100ms, got %+v", scenario.Calls)
	}
	if scenario.Until != time.Minute {
		t.Errorf("Expected until 1m, got %v", scenario.Until)
	}
}

func TestLoadScenarioRejectsBadDirection(t *testing.T) {
	path := writeScenario(t, "calls:\n  - {at: 0s, floor: 2, dir: sideways}\n")
	if _, err := LoadScenario(path); err == nil {
		t.Errorf("Expected an error for an unknown direction")
	}
	path = writeScenario(t, "config:\n  elevators: 0\n")
	if _, err := LoadScenario(path); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestRunScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}

	events, err := RunScenario(scenario, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if n := count[types.CallIndicatorSet](events); n != 2 {
		t.Errorf("Expected 2 accepted calls (one duplicate), got %d", n)
	}
	if n := count[types.CallIndicatorClear](events); n != 2 {
		t.Errorf("Expected 2 served calls, got %d", n)
	}
	if n := count[types.DoorOpened](events); n != 2 {
		t.Errorf("Expected 2 door openings, got %d", n)
	}

	var moves []types.ElevatorMoveStarted
	for _, stamped := range events {
		if move, ok := stamped.Event.(types.ElevatorMoveStarted); ok {
			moves = append(moves, move)
		}
	}
	expected := []types.ElevatorMoveStarted{
		{ElevatorID: 1, FromFloor: 1, ToFloor: 6, DurationMs: 10000},
		{ElevatorID: 2, FromFloor: 1, ToFloor: 3, DurationMs: 4000},
	}
	if len(moves) != len(expected) {
		t.Fatalf("Expected moves %+v, got %+v", expected, moves)
	}
	for i := range expected {
		if moves[i] != expected[i] {
			t.Errorf("Expected move %+v, got %+v", expected[i], moves[i])
		}
	}

	again, _ := RunScenario(scenario, nil)
	if len(again) != len(events) {
		t.Fatalf("Expected a deterministic replay, got %d and %d events", len(events), len(again))
	}
	for i := range events {
		if again[i].At != events[i].At || again[i].Event != events[i].Event {
			t.Errorf("Expected replay event %d to be %v, got %v", i, events[i], again[i])
		}
	}
}

func fastConfig() config.Config {
	cfg := config.Default().WithCounts(5, 2)
	cfg.TickPeriod = time.Millisecond
	cfg.TravelPerFloor = time.Millisecond
	cfg.DoorOpenDuration = time.Millisecond
	cfg.DoorCloseDuration = time.Millisecond
	cfg.SettleMargin = time.Millisecond
	return cfg
}

func TestRunnerServesCallInRealTime(t *testing.T) {
	panel := display.NewPanel()
	runner, err := NewRunner(fastConfig(), panel)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runner.Run(ctx)

	accepted, err := runner.RequestCall(4, types.Down)
	if !accepted || err != nil {
		t.Fatalf("Expected call accepted, got %v %v", accepted, err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snapshot, err := runner.Snapshot()
		if err != nil {
			t.Fatal(err)
		}
		if len(snapshot.Pending) == 0 && len(snapshot.Active) == 0 && snapshot.Elevators[0].Floor == 4 {
			if panel.CallLamp(4, types.Down) {
				t.Errorf("Expected the call lamp to be cleared")
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Errorf("Expected elevator 1 to serve floor 4 within 2s")
}

func TestRunnerConfigureAndStop(t *testing.T) {
	runner, err := NewRunner(fastConfig(), display.NewPanel())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		runner.Run(ctx)
		close(stopped)
	}()

	if err := runner.Configure(0, 1); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if err := runner.Configure(8, 3); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	snapshot, _ := runner.Snapshot()
	if len(snapshot.Elevators) != 3 {
		t.Errorf("Expected 3 elevators, got %d", len(snapshot.Elevators))
	}

	cancel()
	<-stopped
	if _, err := runner.RequestCall(2, types.Up); !errors.Is(err, ErrStopped) {
		t.Errorf("Expected ErrStopped, got %v", err)
	}
}

func TestRunnerConfigureTurnsOffOldLamps(t *testing.T) {
	panel := display.NewPanel()
	runner, err := NewRunner(fastConfig(), panel)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runner.Run(ctx)

	runner.RequestCall(4, types.Down)
	runner.RequestCall(3, types.Down)
	if err := runner.Configure(8, 2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	snapshot, err := runner.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(snapshot.Pending) != 0 || len(snapshot.Active) != 0 {
		t.Errorf("Expected an empty registry, got %+v", snapshot)
	}
	if panel.CallLamp(4, types.Down) || panel.CallLamp(3, types.Down) {
		t.Errorf("Expected lamps of discarded calls off")
	}
}
