// gpu_rectangle.go - Axis-aligned rectangle rasterizer

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

// RectShaderFlags is the 5-bit feature set rectangles specialise on:
// texture, raw-texture, transparency, mask-AND, mask-OR. No shading
// gradient and no dithering; rectangles carry one fixed colour.
type RectShaderFlags uint8

const (
	RectTextureEnable RectShaderFlags = 1 << iota
	RectRawTextureEnable
	RectTransparencyEnable
	RectMaskAndEnable
	RectMaskOrEnable

	RectShaderFlagBits  = 5
	RectShaderTableSize = 1 << RectShaderFlagBits
)

// toShaderFlags maps the rectangle's 5-bit set onto the shared 7-bit
// polygon ShaderFlags space (rectangles never set ShadeEnable or
// DitherEnable), so both primitives share one shaderFunc dispatch table.
func (f RectShaderFlags) toShaderFlags() ShaderFlags {
	var out ShaderFlags
	if f&RectTextureEnable != 0 {
		out |= TextureEnable
	}
	if f&RectRawTextureEnable != 0 {
		out |= RawTextureEnable
	}
	if f&RectTransparencyEnable != 0 {
		out |= TransparencyEnable
	}
	if f&RectMaskAndEnable != 0 {
		out |= MaskAndEnable
	}
	if f&RectMaskOrEnable != 0 {
		out |= MaskOrEnable
	}
	return out
}

// DrawRectangle rasterizes an axis-aligned, fixed-colour rectangle.
// Texcoords advance by one per native pixel (the upscaled offset is
// integer-divided by scale). No dithering per spec.
func DrawRectangle(vram *VRAM, scale int, x, y, w, h int, colour Pixel,
	u0, v0 uint8, flags RectShaderFlags, blend BlendMode, tex *TexturePage,
	clip Rect, interlace bool, activeField uint8) {

	if w <= 0 || h <= 0 {
		return
	}
	shade := shaderTable[flags.toShaderFlags()]
	uclip := clip.scaled(scale)
	r, g, b := colour.ToRGB24()

	for ny := 0; ny < h; ny++ {
		for dy := 0; dy < scale; dy++ {
			yu := (y+ny)*scale + dy
			if yu < uclip.Top || yu > uclip.Bottom {
				continue
			}
			if interlace && (yu&1) == int(activeField) {
				continue
			}
			for nx := 0; nx < w; nx++ {
				for dx := 0; dx < scale; dx++ {
					xu := (x+nx)*scale + dx
					if xu < uclip.Left || xu > uclip.Right {
						continue
					}
					frag := Fragment{X: xu, Y: yu, VR: r, VG: g, VB: b}
					if tex != nil {
						frag.Texel = tex.Sample(vram, u0+uint8(nx), v0+uint8(ny))
						frag.HasTexel = true
					}
					shade(vram, frag, blend)
				}
			}
		}
	}
}
