package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"liftsim/src/config"
	"liftsim/src/console"
	"liftsim/src/display"
	"liftsim/src/sim"
	"liftsim/src/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	envPath := flag.String("env", "", ".env file with LIFTSIM_* overrides")
	floors := flag.String("floors", "", "number of floors")
	elevators := flag.String("elevators", "", "number of elevators")
	scenarioPath := flag.String("scenario", "", "YAML scenario to play on a virtual clock")
	logPath := flag.String("log", "", "also write the log to this file")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logFile, err := utils.InitLogger(level, *logPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	if *scenarioPath != "" {
		if *configPath != "" {
			slog.Warn("Ignoring -config, the scenario carries its own config block", "config", *configPath)
		}
		if err := playScenario(*scenarioPath, *envPath, *floors, *elevators); err != nil {
			slog.Error("Scenario failed", "err", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := loadConfig(*configPath, *envPath, *floors, *elevators)
	if err != nil {
		slog.Error("Configuration failed", "err", err)
		os.Exit(1)
	}
	if err := runInteractive(cfg); err != nil {
		slog.Error("Simulation failed", "err", err)
		os.Exit(1)
	}
}

func loadConfig(configPath, envPath, floors, elevators string) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}
	return overrideConfig(cfg, envPath, floors, elevators)
}

// overrideConfig applies the .env file and then the count flags on top of cfg.
func overrideConfig(cfg config.Config, envPath, floors, elevators string) (config.Config, error) {
	var err error
	if envPath != "" {
		if cfg, err = config.ApplyEnvFile(cfg, envPath); err != nil {
			return cfg, err
		}
	}
	if floors != "" || elevators != "" {
		rawFloors, rawElevators := fmt.Sprint(cfg.Floors), fmt.Sprint(cfg.Elevators)
		if floors != "" {
			rawFloors = floors
		}
		if elevators != "" {
			rawElevators = elevators
		}
		f, e, err := config.ParseCounts(rawFloors, rawElevators)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.WithCounts(f, e)
	}
	return cfg, cfg.Validate()
}

func runInteractive(cfg config.Config) error {
	runner, err := sim.NewRunner(cfg, display.NewPanel())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go runner.Run(ctx)

	slog.Info("Simulation running", "floors", cfg.Floors, "elevators", cfg.Elevators)
	slog.Info("Keys: <floor>u / <floor>d to call, c<floors>,<elevators> Enter to rebuild, s for snapshot, q to quit")
	return console.Run(ctx, runner)
}

func playScenario(path, envPath, floors, elevators string) error {
	scenario, err := sim.LoadScenario(path)
	if err != nil {
		return err
	}
	if scenario.Config, err = overrideConfig(scenario.Config, envPath, floors, elevators); err != nil {
		return err
	}
	events, err := sim.RunScenario(scenario, nil)
	if err != nil {
		return err
	}
	for _, ev := range events {
		fmt.Println(ev)
	}
	return nil
}
