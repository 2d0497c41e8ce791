package resist

import "time"

// Task is a pending one-shot callback.
type Task interface {
	// Stop cancels the task. It reports false when the task already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler runs a function once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// RealScheduler schedules with time.AfterFunc. Callbacks run on their own
// goroutine.
type RealScheduler struct{}

// AfterFunc implements Scheduler.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
