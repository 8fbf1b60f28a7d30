package utils

import (
	"log/slog"

	"liftsim/src/elev"
	"liftsim/src/types"
)

// FormatStops renders a stop queue as "up(4) up(8)".
func FormatStops(stops []types.Call) string {
	out := ""
	for i, stop := range stops {
		if i > 0 {
			out += " "
		}
		out += stop.String()
	}
	return out
}

// LogSnapshot writes one line per elevator and one for the pending queue.
func LogSnapshot(elevators []elev.Elevator, pending []types.Call) {
	for _, e := range elevators {
		target := "-"
		if e.Target != nil {
			target = e.Target.String()
		}
		slog.Info("Elevator",
			"id", e.ID,
			"status", e.Status,
			"phase", e.Phase,
			"floor", e.Floor,
			"target", target,
			"stops", FormatStops(e.Stops))
	}
	slog.Info("Pending calls", "calls", FormatStops(pending))
}
