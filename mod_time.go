package lumen

import (
	"time"
)

// Time tracks the per-frame delta. Dt is computed once per frame and is
// never negative: a clock going backwards yields a zero-length frame
// rather than reversing the simulation.
type Time struct {
	Time time.Time
	Dt   time.Duration
}

// Seconds returns Dt in seconds for frame-rate-independent movement.
func (t *Time) Seconds() float32 {
	if t.Dt <= 0 {
		return 0
	}
	return float32(t.Dt.Seconds())
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	app.UseSystem(
		System(timeSystem).InStage(PreUpdate),
	)
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	dt := now.Sub(timeResource.Time)
	if dt < 0 {
		dt = 0
	}
	timeResource.Dt = dt
	timeResource.Time = now
}
