package utils

import (
	"testing"

	"liftsim/src/types"
)

func TestFormatStops(t *testing.T) {
	stops := []types.Call{{Floor: 4, Dir: types.Up}, {Floor: 8, Dir: types.Up}}
	if got := FormatStops(stops); got != "up(4) up(8)" {
		t.Errorf("Expected \"up(4) up(8)\", got %q", got)
	}
	if got := FormatStops(nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
