// timer_constants.go - Timer Block register and mode bit layout

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

// Per-timer register offsets, relative to the timer's 0x10-aligned base.
const (
	TimerRegCounter = 0x00
	TimerRegMode    = 0x04
	TimerRegTarget  = 0x08

	TimerBaseStride = 0x10
	TimerCount      = 3
)

// Mode register bit layout (16-bit).
const (
	ModeSyncEnable       = 1 << 0
	ModeSyncModeShift    = 1
	ModeSyncModeMask     = 0x3 << ModeSyncModeShift
	ModeResetAtTarget    = 1 << 3
	ModeIRQAtTarget      = 1 << 4
	ModeIRQOnOverflow    = 1 << 5
	ModeIRQRepeat        = 1 << 6
	ModeIRQPulseN        = 1 << 7
	ModeClockSourceShift = 8
	ModeClockSourceMask  = 0x3 << ModeClockSourceShift
	ModeInterruptReqN    = 1 << 10
	ModeReachedTarget    = 1 << 11
	ModeReachedOverflow  = 1 << 12

	// ModeWriteMask is applied to register writes: bits not set here are
	// preserved from the existing register value rather than overwritten.
	ModeWriteMask = 0b1110001111111111
)

// SyncMode is the 2-bit sync_mode field, meaningful only when
// ModeSyncEnable is set.
type SyncMode int

const (
	SyncPauseOnGate SyncMode = iota
	SyncResetOnGate
	SyncResetAndRunOnGate
	SyncFreeRunOnGate
)

const CounterMax = 0xFFFF
