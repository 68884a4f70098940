// gpu_texture.go - Texture page / CLUT addressing and texture window wrap

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

// TextureMode selects how a texture page's bytes are interpreted.
type TextureMode int

const (
	TextureMode4Bit TextureMode = iota
	TextureMode8Bit
	TextureModeDirect
)

// TextureWindow implements t' = (t AND and) OR or, applied independently
// to U and V before the texture page fetch.
type TextureWindow struct {
	AndX, AndY uint8
	OrX, OrY   uint8
}

func (w TextureWindow) apply(u, v uint8) (uint8, uint8) {
	return (u & w.AndX) | w.OrX, (v & w.AndY) | w.OrY
}

// TexturePage names a 256x256 region of VRAM, its pixel format and,
// for indexed formats, the CLUT's base location.
type TexturePage struct {
	// BaseX/BaseY are in 64-pixel page units, matching the console's
	// register encoding; PixelBaseX/PixelBaseY are the expanded (x, y)
	// used for addressing.
	BaseX, BaseY           int
	PixelBaseX, PixelBaseY int
	Mode                   TextureMode
	CLUTX, CLUTY           int // in VRAM pixel coordinates
	Window                 TextureWindow
}

// NewTexturePage expands 64-pixel page units into native VRAM coordinates.
func NewTexturePage(baseX, baseY int, mode TextureMode, clutX, clutY int, win TextureWindow) TexturePage {
	return TexturePage{
		BaseX:      baseX,
		BaseY:      baseY,
		PixelBaseX: baseX * 64,
		PixelBaseY: baseY * 64,
		Mode:       mode,
		CLUTX:      clutX,
		CLUTY:      clutY,
		Window:     win,
	}
}

// Sample fetches the 16-bit texel for texture coordinate (u, v), after
// applying the texture window wrap. For indexed modes it performs the
// CLUT lookup; for direct mode the texel is read straight from the page.
func (tp TexturePage) Sample(vram *VRAM, u, v uint8) Pixel {
	u, v = tp.Window.apply(u, v)
	switch tp.Mode {
	case TextureModeDirect:
		x := tp.PixelBaseX + int(u)
		y := tp.PixelBaseY + int(v)
		return vram.Get(x, y)
	case TextureMode8Bit:
		x := tp.PixelBaseX + int(u)/2
		y := tp.PixelBaseY + int(v)
		packed := vram.Get(x, y)
		var index int
		if int(u)&1 == 0 {
			index = int(packed & 0xFF)
		} else {
			index = int((packed >> 8) & 0xFF)
		}
		return tp.clutLookup(vram, index)
	default: // TextureMode4Bit
		x := tp.PixelBaseX + int(u)/2
		y := tp.PixelBaseY + int(v)
		packed := vram.Get(x, y)
		var index int
		if int(u)&1 == 0 {
			index = int(packed & 0x0F)
		} else {
			index = int((packed >> 4) & 0x0F)
		}
		return tp.clutLookup(vram, index)
	}
}

func (tp TexturePage) clutLookup(vram *VRAM, index int) Pixel {
	return vram.Get(tp.CLUTX+index, tp.CLUTY)
}
