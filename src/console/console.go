// Package console turns key presses into hall calls.
//
//	digits      build a floor number
//	u / d       call up / down at that floor
//	backspace   drop the last digit
//	s           log a snapshot of the building
//	c F,E Enter rebuild the building with F floors and E elevators
//	q, Esc, ^C  quit (Esc only cancels while typing counts)
package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/eiannone/keyboard"

	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/types"
	"liftsim/src/utils"
)

// Building is what the console drives.
type Building interface {
	RequestCall(floor int, dir types.Direction) (bool, error)
	Snapshot() (dispatcher.Snapshot, error)
	ConfigureInput(floors, elevators string) error
}

type Action int

const (
	None Action = iota
	Submit
	ShowSnapshot
	Reconfigure
	Quit
)

type Command struct {
	Action    Action
	Call      types.Call
	Floors    string
	Elevators string
}

// Input accumulates digits between call keys. After 'c' it collects the
// floor and elevator counts instead.
type Input struct {
	digits      string
	configuring bool
	comma       bool
	floors      string
}

// Handle maps one key press to a command.
func (in *Input) Handle(char rune, key keyboard.Key) (Command, error) {
	if key == keyboard.KeyCtrlC {
		return Command{Action: Quit}, nil
	}
	if in.configuring {
		return in.handleCounts(char, key), nil
	}
	switch key {
	case keyboard.KeyEsc:
		return Command{Action: Quit}, nil
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		in.backspace()
		return Command{}, nil
	}

	switch {
	case char >= '0' && char <= '9':
		in.digits += string(char)
		return Command{}, nil
	case char == 'u' || char == 'd':
		floor, err := in.floor()
		if err != nil {
			return Command{}, err
		}
		dir := types.Up
		if char == 'd' {
			dir = types.Down
		}
		return Command{Action: Submit, Call: types.Call{Floor: floor, Dir: dir}}, nil
	case char == 's':
		return Command{Action: ShowSnapshot}, nil
	case char == 'c':
		in.digits = ""
		in.configuring = true
		return Command{}, nil
	case char == 'q':
		return Command{Action: Quit}, nil
	}
	return Command{}, nil
}

func (in *Input) handleCounts(char rune, key keyboard.Key) Command {
	switch key {
	case keyboard.KeyEsc:
		in.resetCounts()
		return Command{}
	case keyboard.KeyEnter:
		cmd := Command{Action: Reconfigure, Floors: in.digits}
		if in.comma {
			cmd.Floors, cmd.Elevators = in.floors, in.digits
		}
		in.resetCounts()
		return cmd
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		if in.digits == "" && in.comma {
			in.digits, in.floors, in.comma = in.floors, "", false
			return Command{}
		}
		in.backspace()
		return Command{}
	}
	switch {
	case char >= '0' && char <= '9':
		in.digits += string(char)
	case char == ',' && !in.comma:
		in.floors, in.digits, in.comma = in.digits, "", true
	}
	return Command{}
}

func (in *Input) resetCounts() {
	in.configuring, in.comma = false, false
	in.digits, in.floors = "", ""
}

func (in *Input) backspace() {
	if len(in.digits) > 0 {
		in.digits = in.digits[:len(in.digits)-1]
	}
}

func (in *Input) floor() (int, error) {
	defer func() { in.digits = "" }()
	if in.digits == "" {
		return 0, errors.New("type a floor number before the direction")
	}
	floor, err := strconv.Atoi(in.digits)
	if err != nil {
		return 0, fmt.Errorf("floor %q: %w", in.digits, err)
	}
	return floor, nil
}

// Run reads the keyboard until quit or ctx is done.
func Run(ctx context.Context, building Building) error {
	keys, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	var input Input
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-keys:
			if ev.Err != nil {
				return fmt.Errorf("read key: %w", ev.Err)
			}
			cmd, err := input.Handle(ev.Rune, ev.Key)
			if err != nil {
				slog.Warn("Ignored key", "err", err)
				continue
			}
			if quit := execute(building, cmd); quit {
				return nil
			}
		}
	}
}

func execute(building Building, cmd Command) (quit bool) {
	switch cmd.Action {
	case Submit:
		accepted, err := building.RequestCall(cmd.Call.Floor, cmd.Call.Dir)
		if err != nil {
			slog.Warn("Call rejected", "call", cmd.Call, "err", err)
			return false
		}
		slog.Info("Call requested", "call", cmd.Call, "accepted", accepted)
	case ShowSnapshot:
		snapshot, err := building.Snapshot()
		if err != nil {
			slog.Warn("Snapshot failed", "err", err)
			return false
		}
		utils.LogSnapshot(snapshot.Elevators, snapshot.Pending)
	case Reconfigure:
		if err := building.ConfigureInput(cmd.Floors, cmd.Elevators); err != nil {
			var cfgErr *config.ConfigurationError
			if errors.As(err, &cfgErr) {
				slog.Warn("Configuration rejected", "field", cfgErr.Field, "value", cfgErr.Value, "reason", cfgErr.Reason)
			} else {
				slog.Warn("Configuration failed", "err", err)
			}
			return false
		}
		slog.Info("Building rebuilt", "floors", cmd.Floors, "elevators", cmd.Elevators)
	case Quit:
		return true
	}
	return false
}
