// settings.go - Explicit configuration value passed into ApplySettings

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

// Settings is the explicit value the host passes into ApplySettings,
// replacing the original's process-wide g_settings singleton: the core
// only ever reads the fields named here, none of the original's wider
// configuration surface.
type Settings struct {
	// RendererEnabled is carried for the host; ApplySettings does not
	// read it, and the core runs regardless of its value.
	RendererEnabled bool

	// SoftScale is the requested upscale factor S (1, 2 or 4).
	SoftScale int

	// OverclockActive, OverclockNumerator, OverclockDenominator rescale
	// host ticks injected into the timer block; see
	// TimerBlock.SetOverclock.
	OverclockActive      bool
	OverclockNumerator   int64
	OverclockDenominator int64

	// MaxSliceTicks bounds how far ahead the timer scheduler will look;
	// see TimerBlock.SetMaxSliceTicks.
	MaxSliceTicks int64
}

// DefaultSettings returns the values a freshly constructed GPU/TimerBlock
// pair already assumes (no overclock, S=1, a generous max slice).
func DefaultSettings() Settings {
	return Settings{
		RendererEnabled:      true,
		SoftScale:            1,
		OverclockActive:      false,
		OverclockNumerator:   1,
		OverclockDenominator: 1,
		MaxSliceTicks:        100000,
	}
}

// ApplySettings pushes s into the GPU and timer block. Changing
// SoftScale synchronises the renderer before reallocating the upscale
// plane, per §5's ordering guarantee for settings changes.
func ApplySettings(g *GPU, t *TimerBlock, s Settings) {
	if g != nil && g.Scale() != s.SoftScale {
		g.SetScale(s.SoftScale)
	}
	if t != nil {
		t.SetOverclock(s.OverclockActive, s.OverclockNumerator, s.OverclockDenominator)
		t.SetMaxSliceTicks(s.MaxSliceTicks)
	}
}
