// timer_block.go - Three-counter Timer Block

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

import (
	"log"
	"sync"
)

// CounterState is the per-timer register + derived-flag set (§3).
type CounterState struct {
	Mode   uint16
	Counter uint16
	Target  uint16

	Gate bool

	UseExternalClock        bool
	ExternalCountingEnabled bool
	CountingEnabled         bool
	IRQDone                 bool
}

func (c *CounterState) syncEnable() bool    { return c.Mode&ModeSyncEnable != 0 }
func (c *CounterState) syncMode() SyncMode  { return SyncMode((c.Mode & ModeSyncModeMask) >> ModeSyncModeShift) }
func (c *CounterState) resetAtTarget() bool { return c.Mode&ModeResetAtTarget != 0 }
func (c *CounterState) irqAtTarget() bool   { return c.Mode&ModeIRQAtTarget != 0 }
func (c *CounterState) irqOnOverflow() bool { return c.Mode&ModeIRQOnOverflow != 0 }
func (c *CounterState) irqRepeat() bool     { return c.Mode&ModeIRQRepeat != 0 }
func (c *CounterState) irqPulseN() bool     { return c.Mode&ModeIRQPulseN != 0 }

func (c *CounterState) interruptRequestN() bool { return c.Mode&ModeInterruptReqN != 0 }
func (c *CounterState) setInterruptRequestN(v bool) {
	if v {
		c.Mode |= ModeInterruptReqN
	} else {
		c.Mode &^= ModeInterruptReqN
	}
}

// TimerBlock is the three-counter timer/IRQ subsystem (§4.8). CPU
// overclock tick rescaling and its carries (§3 "Overclock accounting")
// live here too, since the original always rescales at the point ticks
// are injected into the timers.
//
// Thread Safety: mu guards the counter state, matching the
// mutex-guarded MMIO idiom used throughout the teacher's chip types.
// Methods that must flush the scheduler first (InvokeEarly, register
// access, SetGate) do so before taking mu, since the scheduler's wake
// callback re-enters the timer block.
type TimerBlock struct {
	mu sync.Mutex

	counters [TimerCount]CounterState

	sysclkTicksCarry int64
	sysclkDiv8Carry  int64

	overclockActive bool
	overclockNum    int64
	overclockDenom  int64

	maxSliceTicks int64

	irq       InterruptController
	crtc      CRTC
	scheduler Scheduler
	logger    *log.Logger
}

// NewTimerBlock constructs a timer block wired to its host collaborators.
func NewTimerBlock(irq InterruptController, crtc CRTC, scheduler Scheduler) *TimerBlock {
	t := &TimerBlock{
		irq: irq, crtc: crtc, scheduler: scheduler,
		maxSliceTicks: 100000,
	}
	t.Reset()
	return t
}

// SetLogger installs a logger on the timer block; nil disables logging.
// No timer block code path writes to it.
func (t *TimerBlock) SetLogger(l *log.Logger) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.logger = l
}

// Reset restores every counter to its deterministic default: mode bits
// zero except interrupt_request_n, counter=0, target=0, gate=false,
// counting_enabled=true, irq_done=false.
func (t *TimerBlock) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.counters {
		t.counters[i] = CounterState{
			Mode:            ModeInterruptReqN,
			CountingEnabled: true,
		}
	}
	t.sysclkTicksCarry = 0
	t.sysclkDiv8Carry = 0
	t.updateSysClkEventLocked()
}

// SetOverclock configures the CPU overclock numerator/denominator used to
// rescale injected ticks, and zeroes the sysclk carry (the sysclk/8
// carry is kept).
func (t *TimerBlock) SetOverclock(active bool, numerator, denominator int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.overclockActive = active
	t.overclockNum = numerator
	t.overclockDenom = denominator
	t.sysclkTicksCarry = 0
}

// SetMaxSliceTicks bounds how far ahead ticksUntilNextInterruptLocked will
// schedule, matching the dma_max_slice_ticks setting the original reads
// from g_settings.
func (t *TimerBlock) SetMaxSliceTicks(ticks int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.maxSliceTicks = ticks
}

// clockSourceBit returns which bit of clock_source selects the external
// clock for this timer (§4.8's table: timer 0/1 use bit 0, timer 2 uses
// bit 1).
func clockSourceBit(timer int) uint16 {
	if timer == 2 {
		return 2
	}
	return 1
}

func externalClockMeans(timer int) string {
	switch timer {
	case 0:
		return "GPU dotclock"
	case 1:
		return "GPU hblank"
	default:
		return "sysclk/8"
	}
}

// SetGate applies a CRTC-driven gate transition. Mirrors the original's
// SetGate: flush any currently pending ticks before the edge is applied
// so a sync-mode reset/pause takes effect against an up-to-date counter.
//
// The flush happens before mu is taken: the scheduler's wake callback
// re-enters the timer block (typically via AddSysClkTicks), and mu is
// not reentrant.
func (t *TimerBlock) SetGate(timer int, state bool) {
	t.InvokeEarly()

	t.mu.Lock()
	defer t.mu.Unlock()
	c := &t.counters[timer]
	if c.Gate == state {
		return
	}

	rising := state && !c.Gate
	c.Gate = state

	if rising {
		switch c.syncMode() {
		case SyncResetOnGate, SyncResetAndRunOnGate:
			c.Counter = 0
		case SyncFreeRunOnGate:
			c.Mode &^= ModeSyncEnable
		}
	}

	t.updateCountingEnabledLocked(timer)
	t.updateSysClkEventLocked()
}

func (t *TimerBlock) updateCountingEnabledLocked(timer int) {
	c := &t.counters[timer]
	if c.syncEnable() {
		switch c.syncMode() {
		case SyncPauseOnGate:
			c.CountingEnabled = !c.Gate
		case SyncResetOnGate:
			c.CountingEnabled = true
		case SyncResetAndRunOnGate, SyncFreeRunOnGate:
			c.CountingEnabled = c.Gate
		}
	} else {
		c.CountingEnabled = true
	}
	c.ExternalCountingEnabled = c.UseExternalClock && c.CountingEnabled
}

// GetTicksUntilIRQ returns the number of raw counter ticks until this
// timer would next raise an IRQ, or 1<<62-1 if it can't.
func (t *TimerBlock) GetTicksUntilIRQ(timer int) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticksUntilIRQLocked(timer)
}

func (t *TimerBlock) ticksUntilIRQLocked(timer int) int64 {
	c := &t.counters[timer]
	if !c.CountingEnabled {
		return 1<<62 - 1
	}
	best := int64(1<<62 - 1)
	if c.irqAtTarget() && c.Counter < c.Target {
		d := int64(c.Target) - int64(c.Counter)
		if d < best {
			best = d
		}
	}
	if c.irqOnOverflow() {
		d := int64(CounterMax) - int64(c.Counter)
		if d < best {
			best = d
		}
	}
	return best
}

// addTicksLocked injects count raw ticks into one counter and evaluates
// IRQ conditions against the crossing. Callers must hold t.mu.
func (t *TimerBlock) addTicksLocked(timer int, count int64) {
	c := &t.counters[timer]
	old := c.Counter
	c.Counter = uint16((int64(c.Counter) + count) % 0x10000)
	t.checkForIRQLocked(timer, old)
}

func (t *TimerBlock) checkForIRQLocked(timer int, oldCounter uint16) {
	c := &t.counters[timer]
	requestIRQ := false

	if c.Counter >= c.Target && (oldCounter < c.Target || c.Target == 0) {
		c.Mode |= ModeReachedTarget
		if c.irqAtTarget() {
			requestIRQ = true
		}
		if c.resetAtTarget() && c.Target > 0 {
			c.Counter = c.Counter % c.Target
		}
	}
	if c.Counter >= CounterMax {
		c.Mode |= ModeReachedOverflow
		if c.irqOnOverflow() {
			requestIRQ = true
		}
		c.Counter = uint16(uint32(c.Counter) % 0x10000)
	}

	if !requestIRQ {
		return
	}

	if !c.irqPulseN() {
		// Pulse mode: edge-triggered. Drive the latch low briefly,
		// deliver, then restore it so the next hit can pulse again.
		c.setInterruptRequestN(false)
		t.updateIRQLocked(timer)
		c.setInterruptRequestN(true)
	} else {
		// Toggle mode: flip the latch on every hit; updateIRQLocked
		// delivers only when the flip leaves it low (a 1->0 transition).
		c.setInterruptRequestN(!c.interruptRequestN())
		t.updateIRQLocked(timer)
	}
}

func (t *TimerBlock) updateIRQLocked(timer int) {
	c := &t.counters[timer]
	if c.interruptRequestN() {
		return
	}
	if !c.irqRepeat() && c.IRQDone {
		return
	}
	c.IRQDone = true
	if t.irq != nil {
		t.irq.Raise(IRQLine(timer))
	}
}

// unscaleTicksToOverclock rescales host ticks into the timer's own tick
// domain: t = (ticks*denom + carry) / num, carry = remainder.
func unscaleTicksToOverclock(ticks int64, numerator, denominator int64, carry *int64) int64 {
	num := ticks*denominator + *carry
	t := num / numerator
	*carry = num % numerator
	return t
}

// scaleTicksToOverclock is the inverse rescale, used when computing the
// next wake in the overclocked domain.
func scaleTicksToOverclock(ticks int64, numerator, denominator int64) int64 {
	return (ticks*numerator + denominator - 1) / denominator
}

// AddSysClkTicks injects sysclk ticks from the host, rescaling for
// overclock if active, and routes them to each counter per §4.8's
// clock-source table.
func (t *TimerBlock) AddSysClkTicks(sysclkTicks int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.addSysClkTicksLocked(sysclkTicks)
}

func (t *TimerBlock) addSysClkTicksLocked(sysclkTicks int64) {
	if t.overclockActive {
		sysclkTicks = unscaleTicksToOverclock(sysclkTicks, t.overclockNum, t.overclockDenom, &t.sysclkTicksCarry)
	}

	for i := 0; i < 2; i++ {
		c := &t.counters[i]
		if !c.ExternalCountingEnabled {
			t.addTicksLocked(i, sysclkTicks)
		}
	}

	c2 := &t.counters[2]
	if c2.ExternalCountingEnabled {
		total := sysclkTicks + t.sysclkDiv8Carry
		div8 := total / 8
		t.sysclkDiv8Carry = total % 8
		t.addTicksLocked(2, div8)
	} else if c2.CountingEnabled {
		t.addTicksLocked(2, sysclkTicks)
	}

	t.updateSysClkEventLocked()
}

// ticksUntilNextInterruptLocked computes the scheduling value described
// in §4.8: min over timers of (target-counter) and (0xFFFF-counter),
// subject to enables, x8 for timer 2 on sysclk/8, clamped to
// [1, maxSliceTicks].
func (t *TimerBlock) ticksUntilNextInterruptLocked() int64 {
	best := t.maxSliceTicks

	for i := 0; i < TimerCount; i++ {
		c := &t.counters[i]
		if !c.CountingEnabled {
			continue
		}
		if i < 2 && c.ExternalCountingEnabled {
			continue
		}
		if !c.irqAtTarget() && !c.irqOnOverflow() {
			continue
		}
		if (c.irqRepeat() || !c.IRQDone) == false {
			continue
		}

		var toTarget int64 = 1<<62 - 1
		if c.irqAtTarget() {
			if c.Counter <= c.Target {
				toTarget = int64(c.Target) - int64(c.Counter)
			} else {
				toTarget = int64(CounterMax-c.Counter) + int64(c.Target)
			}
		}
		var toOverflow int64 = 1<<62 - 1
		if c.irqOnOverflow() {
			toOverflow = int64(CounterMax) - int64(c.Counter)
		}

		ticks := toTarget
		if toOverflow < ticks {
			ticks = toOverflow
		}
		if i == 2 && c.ExternalCountingEnabled {
			ticks *= 8
		}
		if ticks < best {
			best = ticks
		}
	}

	if best < 1 {
		best = 1
	}
	if t.overclockActive {
		return scaleTicksToOverclock(best, t.overclockNum, t.overclockDenom)
	}
	return best
}

func (t *TimerBlock) updateSysClkEventLocked() {
	if t.scheduler == nil {
		return
	}
	t.scheduler.Schedule(t.ticksUntilNextInterruptLocked())
}

// InvokeEarly flushes any ticks the scheduler already owes the timer
// block. It must be called without holding mu: the scheduler's wake
// callback re-enters the timer block (typically via AddSysClkTicks),
// and mu is not reentrant.
func (t *TimerBlock) InvokeEarly() {
	if t.scheduler != nil {
		t.scheduler.InvokeEarly()
	}
}

// syncCRTCForRegisterAccess forces the CRTC to catch up before a timer
// 0/1 register access, so an external-clock timer's counter reflects
// pending dot/hblank advance. Must be called without holding mu, for
// the same reentrancy reason as InvokeEarly.
func (t *TimerBlock) syncCRTCForRegisterAccess(timer int) {
	if t.crtc == nil {
		return
	}
	if timer == 0 {
		t.crtc.Synchronise()
	} else if timer == 1 && t.crtc.IsScanlinePending() {
		t.crtc.Synchronise()
	}
}

// ReadRegister implements the MMIO read contract of §6. offset is
// relative to the timer block's base; index >= TimerCount or an offset
// not named in the register table returns 0xFFFFFFFF.
func (t *TimerBlock) ReadRegister(offset uint32) uint32 {
	timer := int(offset >> 4)
	port := offset & 0xF
	if timer >= TimerCount {
		return 0xFFFFFFFF
	}

	if port == TimerRegCounter || port == TimerRegMode {
		t.syncCRTCForRegisterAccess(timer)
	}
	t.InvokeEarly()

	t.mu.Lock()
	defer t.mu.Unlock()

	c := &t.counters[timer]
	switch port {
	case TimerRegCounter:
		return uint32(c.Counter)
	case TimerRegMode:
		v := uint32(c.Mode)
		c.Mode &^= ModeReachedTarget | ModeReachedOverflow
		return v
	case TimerRegTarget:
		return uint32(c.Target)
	default:
		return 0xFFFFFFFF
	}
}

// WriteRegister implements the MMIO write contract of §6.
func (t *TimerBlock) WriteRegister(offset uint32, value uint32) {
	timer := int(offset >> 4)
	port := offset & 0xF
	if timer >= TimerCount {
		return
	}

	t.syncCRTCForRegisterAccess(timer)
	t.InvokeEarly()

	t.mu.Lock()
	defer t.mu.Unlock()

	c := &t.counters[timer]
	switch port {
	case TimerRegCounter:
		old := c.Counter
		c.Counter = uint16(value & 0xFFFF)
		t.checkForIRQLocked(timer, old)
		t.updateSysClkEventLocked()
	case TimerRegMode:
		newMode := (uint16(value) & ModeWriteMask) | (c.Mode &^ ModeWriteMask)
		c.Mode = newMode
		c.UseExternalClock = (uint16(value)>>ModeClockSourceShift)&(ModeClockSourceMask>>ModeClockSourceShift)&clockSourceBit(timer) != 0
		oldCounter := c.Counter
		c.Counter = 0
		c.IRQDone = false
		t.updateCountingEnabledLocked(timer)
		t.checkForIRQLocked(timer, oldCounter)
		t.updateIRQLocked(timer)
		t.updateSysClkEventLocked()
	case TimerRegTarget:
		c.Target = uint16(value & 0xFFFF)
		t.checkForIRQLocked(timer, c.Counter)
		t.updateSysClkEventLocked()
	}
}

// Counter returns a copy of one timer's current state, for debugging and
// save-state export.
func (t *TimerBlock) Counter(timer int) CounterState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counters[timer]
}
