package console

import (
	"errors"
	"testing"

	"github.com/eiannone/keyboard"

	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/types"
)

func press(in *Input, keys string) (Command, error) {
	var cmd Command
	var err error
	for _, r := range keys {
		cmd, err = in.Handle(r, 0)
	}
	return cmd, err
}

func TestDigitsThenDirection(t *testing.T) {
	var in Input
	cmd, err := press(&in, "12u")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expected := Command{Action: Submit, Call: types.Call{Floor: 12, Dir: types.Up}}
	if cmd != expected {
		t.Errorf("Expected %+v, got %+v", expected, cmd)
	}

	cmd, _ = press(&in, "3d")
	if cmd.Call != (types.Call{Floor: 3, Dir: types.Down}) {
		t.Errorf("Expected digits to reset between calls, got %+v", cmd.Call)
	}
}

func TestDirectionWithoutFloor(t *testing.T) {
	var in Input
	if _, err := press(&in, "u"); err == nil {
		t.Errorf("Expected an error for a direction without a floor")
	}
}

func TestBackspaceAndQuit(t *testing.T) {
	var in Input
	press(&in, "45")
	in.Handle(0, keyboard.KeyBackspace2)
	cmd, _ := press(&in, "u")
	if cmd.Call.Floor != 4 {
		t.Errorf("Expected floor 4 after backspace, got %d", cmd.Call.Floor)
	}

	if cmd, _ := in.Handle(0, keyboard.KeyCtrlC); cmd.Action != Quit {
		t.Errorf("Expected Ctrl-C to quit")
	}
	if cmd, _ := press(&in, "q"); cmd.Action != Quit {
		t.Errorf("Expected q to quit")
	}
	if cmd, _ := press(&in, "s"); cmd.Action != ShowSnapshot {
		t.Errorf("Expected s to show a snapshot")
	}
}

func TestConfigureKeys(t *testing.T) {
	var in Input
	press(&in, "c12,4")
	cmd, _ := in.Handle(0, keyboard.KeyEnter)
	expected := Command{Action: Reconfigure, Floors: "12", Elevators: "4"}
	if cmd != expected {
		t.Errorf("Expected %+v, got %+v", expected, cmd)
	}

	cmd, _ = press(&in, "3u")
	if cmd.Action != Submit || cmd.Call.Floor != 3 {
		t.Errorf("Expected normal call keys after Enter, got %+v", cmd)
	}

	press(&in, "c9,")
	in.Handle(0, keyboard.KeyBackspace2)
	in.Handle(0, keyboard.KeyBackspace2)
	press(&in, "8,2")
	if cmd, _ = in.Handle(0, keyboard.KeyEnter); cmd.Floors != "8" || cmd.Elevators != "2" {
		t.Errorf("Expected backspace across the comma, got %+v", cmd)
	}

	press(&in, "c7")
	if cmd, _ = in.Handle(0, keyboard.KeyEsc); cmd.Action != None {
		t.Errorf("Expected Esc to cancel count entry, got %+v", cmd)
	}
	if cmd, _ = press(&in, "5d"); cmd.Call != (types.Call{Floor: 5, Dir: types.Down}) {
		t.Errorf("Expected counts discarded after Esc, got %+v", cmd)
	}
}

type fakeBuilding struct {
	calls      []types.Call
	err        error
	configured [][2]string
}

func (b *fakeBuilding) ConfigureInput(floors, elevators string) error {
	if _, _, err := config.ParseCounts(floors, elevators); err != nil {
		return err
	}
	b.configured = append(b.configured, [2]string{floors, elevators})
	return nil
}

func (b *fakeBuilding) RequestCall(floor int, dir types.Direction) (bool, error) {
	if b.err != nil {
		return false, b.err
	}
	b.calls = append(b.calls, types.Call{Floor: floor, Dir: dir})
	return true, nil
}

func (b *fakeBuilding) Snapshot() (dispatcher.Snapshot, error) {
	return dispatcher.Snapshot{}, nil
}

func TestExecute(t *testing.T) {
	building := &fakeBuilding{}
	call := types.Call{Floor: 2, Dir: types.Up}
	if quit := execute(building, Command{Action: Submit, Call: call}); quit {
		t.Errorf("Expected submit not to quit")
	}
	if len(building.calls) != 1 || building.calls[0] != call {
		t.Errorf("Expected %v requested, got %v", call, building.calls)
	}

	building.err = errors.New("rejected")
	if quit := execute(building, Command{Action: Submit, Call: call}); quit {
		t.Errorf("Expected a rejected call not to quit")
	}
	if quit := execute(building, Command{Action: ShowSnapshot}); quit {
		t.Errorf("Expected snapshot not to quit")
	}
	if quit := execute(building, Command{Action: Reconfigure, Floors: "6", Elevators: ""}); quit {
		t.Errorf("Expected a rejected configuration not to quit")
	}
	execute(building, Command{Action: Reconfigure, Floors: "6", Elevators: "2"})
	if len(building.configured) != 1 || building.configured[0] != [2]string{"6", "2"} {
		t.Errorf("Expected one accepted configuration, got %v", building.configured)
	}
	if quit := execute(building, Command{Action: Quit}); !quit {
		t.Errorf("Expected quit")
	}
}
