package types

import "fmt"

// Direction is the travel direction a hall call asks for.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "up"/"u" and "down"/"d".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up", "u", "Up", "UP":
		return Up, nil
	case "down", "d", "Down", "DOWN":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Call is a hall button press. Floor and direction together identify it.
type Call struct {
	Floor int
	Dir   Direction
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%d)", c.Dir, c.Floor)
}

// Status is the coarse idle/busy state the dispatcher reasons about.
type Status int

const (
	Idle Status = iota
	Busy
)

func (s Status) String() string {
	if s == Busy {
		return "busy"
	}
	return "idle"
}

// Phase is the step of the current leg an elevator is in.
type Phase int

const (
	Parked Phase = iota
	Moving
	DoorOpen
	DoorClosing
	Settling
)

func (p Phase) String() string {
	switch p {
	case Parked:
		return "parked"
	case Moving:
		return "moving"
	case DoorOpen:
		return "door-open"
	case DoorClosing:
		return "door-closing"
	case Settling:
		return "settling"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}
