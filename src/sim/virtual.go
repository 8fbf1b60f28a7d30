package sim

import (
	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/timer"
	"liftsim/src/types"
)

// StartVirtual builds a System on a virtual clock and registers the scheduler
// tick on it. Nothing happens until the clock is advanced.
func StartVirtual(cfg config.Config, clock *timer.Virtual, sink types.EventSink) (*dispatcher.System, error) {
	system, err := dispatcher.NewSystem(cfg, clock, sink)
	if err != nil {
		return nil, err
	}
	clock.Every(cfg.TickPeriod, timer.TickKey, func() { system.Tick() })
	return system, nil
}
