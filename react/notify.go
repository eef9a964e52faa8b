package react

import "time"

// Notifier decides when subscribers hear about a change that was already
// stored. fire pushes the change downstream; running it later, once, or
// never is the strategy's business. This models reaction time: the value is
// fresh immediately, the graph reacts when the strategy says so.
type Notifier func(fire func())

// Immediate fans out synchronously, same as having no notifier at all.
func Immediate() Notifier {
	return func(fire func()) {
		fire()
	}
}

// Debounced coalesces bursts through a scheduler: every change reschedules
// key, so only the last fire inside a quiet window of delay runs, delay
// after the last change.
func Debounced(s Scheduler, key string, delay time.Duration) Notifier {
	return func(fire func()) {
		s.Schedule(key, delay, fire)
	}
}
