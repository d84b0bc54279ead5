package usecase

import "time"

// Watchdog decides when the opponent has been idle too long. It fires at most once.
// It is owned by a single battle runner and is not safe for concurrent use.
type Watchdog struct {
	limit   time.Duration
	armed   bool
	stopped bool
}

func NewWatchdog(limit time.Duration) *Watchdog {
	return &Watchdog{limit: limit}
}

// Arm starts watching. Arming a stopped watchdog has no effect.
func (that *Watchdog) Arm() {
	if !that.stopped {
		that.armed = true
	}
}

func (that *Watchdog) Active() bool {
	return that.armed && !that.stopped
}

// Expired reports true once, the first time more than the limit has passed since lastMoveTime.
// The watchdog stops itself when it fires.
func (that *Watchdog) Expired(now, lastMoveTime time.Time) bool {
	if !that.Active() {
		return false
	}

	if now.Sub(lastMoveTime) <= that.limit {
		return false
	}

	that.stopped = true

	return true
}

// Stop disarms the watchdog. It reports whether the watchdog was still active.
func (that *Watchdog) Stop() bool {
	wasActive := that.Active()
	that.stopped = true

	return wasActive
}
