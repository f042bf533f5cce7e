package services

import "time"

// Scheduler defers a task. The store never touches wall-clock timers
// directly, so tests can drive status progression deterministically.
// Scheduled tasks cannot be cancelled; they self-guard when they fire.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// TimerScheduler runs tasks on real timers.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
