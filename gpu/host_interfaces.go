// host_interfaces.go - Collaborator interfaces the core is driven through

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

// IRQLine identifies one of the interrupt controller's timer inputs.
type IRQLine int

const (
	IRQTimer0 IRQLine = iota
	IRQTimer1
	IRQTimer2
)

// InterruptController is the out-of-scope collaborator that actually
// latches and delivers CPU interrupts.
type InterruptController interface {
	Raise(line IRQLine)
}

// CRTC is the GPU's raster timing collaborator: it knows where the beam
// is and can be asked to catch up before a timer register access that
// depends on dotclock/hblank state.
type CRTC interface {
	Synchronise()
	IsScanlinePending() bool
}

// ShadowVRAMConsumer is implemented by whatever the host uses to display
// or export the native-resolution shadow plane. The core never calls
// this on its own; the host pulls frames via VRAM.ShadowSnapshot after it
// observes a vsync/Readback boundary.
type ShadowVRAMConsumer interface {
	UpdateShadowVRAM(pixels []Pixel, width, height int)
}

// Scheduler is the contract through which the timer block asks the host
// to be woken again after a number of host ticks. Schedule replaces any
// previously pending wake for this source.
type Scheduler interface {
	Schedule(ticks int64)
	// InvokeEarly runs whatever ticks are already due right now, without
	// waiting for the scheduled callback, and returns once the core's
	// state reflects the current host tick. Timer register accesses call
	// this so reads/writes see up-to-date counter values.
	InvokeEarly()
}
