// scheduler.go - Deterministic reference Scheduler implementation

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package gpu

// ManualScheduler is a deterministic, wall-clock-free Scheduler used by
// tests and by hosts that drive the core from their own tick loop rather
// than a goroutine-based timing wheel. AdvanceTo/InvokeEarly call back
// into the timer block via the registered callback.
//
// Thread Safety: none; callers serialise their own access, matching the
// core's single-threaded-logical concurrency model (§5).
type ManualScheduler struct {
	pending  bool
	wakeAt   int64
	now      int64
	onWake   func(ticksSinceLast int64)
	lastWake int64
}

// NewManualScheduler builds a scheduler that calls onWake with the
// number of host ticks elapsed since the previous wake (or since
// construction) whenever AdvanceTo crosses the scheduled wake tick, and
// once more at the new host tick so every elapsed tick is delivered;
// InvokeEarly fires only a wake that is already due.
func NewManualScheduler(onWake func(ticksSinceLast int64)) *ManualScheduler {
	return &ManualScheduler{onWake: onWake}
}

// Schedule asks to be woken after ticks more host ticks, replacing any
// prior pending wake.
func (s *ManualScheduler) Schedule(ticks int64) {
	if ticks < 1 {
		ticks = 1
	}
	s.wakeAt = s.now + ticks
	s.pending = true
}

// AdvanceTo moves the host clock forward to tick `now`, firing onWake
// (possibly more than once, if the consumer reschedules a wake that is
// already due) until no wake is due at or before `now`, then once more
// for any remaining ticks up to `now`. That last call clears the pending
// wake; a wake is pending afterwards only if the callback scheduled one.
func (s *ManualScheduler) AdvanceTo(now int64) {
	for s.pending && s.wakeAt <= now {
		s.fire(s.wakeAt)
	}
	if now > s.now {
		s.fire(now)
	}
}

func (s *ManualScheduler) fire(at int64) {
	delta := at - s.lastWake
	s.lastWake = at
	s.now = at
	s.pending = false
	if s.onWake != nil && delta > 0 {
		s.onWake(delta)
	}
}

// InvokeEarly runs any ticks already due right now (i.e. up to the
// current host clock) without waiting for a fresh external tick.
func (s *ManualScheduler) InvokeEarly() {
	if s.pending && s.wakeAt <= s.now {
		s.fire(s.wakeAt)
	}
}
