package timer

import "time"

// Scheduler schedules callbacks against a clock.
type Scheduler interface {
	// Now returns the scheduler's current time.
	Now() time.Time

	// AfterFunc calls fn once after d.
	AfterFunc(d time.Duration, fn func()) Timer

	// Every calls fn every period, first after one period.
	Every(period time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call stopped it; false
	// means it had already fired (one-shot) or been stopped. A stopped
	// timer never runs its callback again.
	Stop() bool
}
