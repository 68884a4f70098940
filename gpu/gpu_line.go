// gpu_line.go - k-stepped line rasterizer

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

const (
	LineXYFractBits  = 32
	LineRGBFractBits = 12
)

// LineShaderFlags is the 5-bit feature set lines specialise on: shading
// (gouraud), transparency, dither, mask-AND, mask-OR. No texture.
type LineShaderFlags uint8

const (
	LineShadeEnable LineShaderFlags = 1 << iota
	LineTransparencyEnable
	LineDitherEnable
	LineMaskAndEnable
	LineMaskOrEnable

	LineShaderFlagBits  = 5
	LineShaderTableSize = 1 << LineShaderFlagBits
)

func (f LineShaderFlags) toShaderFlags() ShaderFlags {
	var out ShaderFlags
	if f&LineShadeEnable != 0 {
		out |= ShadeEnable
	}
	if f&LineTransparencyEnable != 0 {
		out |= TransparencyEnable
	}
	if f&LineDitherEnable != 0 {
		out |= DitherEnable
	}
	if f&LineMaskAndEnable != 0 {
		out |= MaskAndEnable
	}
	if f&LineMaskOrEnable != 0 {
		out |= MaskOrEnable
	}
	return out
}

// DrawLineSegment rasterizes one k-stepped line between two vertices.
// The endpoint is written (i <= k); if p0.X > p1.X the endpoints are
// swapped first so the pixel pattern is invariant to direction.
func DrawLineSegment(vram *VRAM, scale int, p0, p1 Vertex, flags LineShaderFlags,
	blend BlendMode, clip Rect, interlace bool, activeField uint8) {

	dx := int64(p1.X - p0.X)
	dy := int64(p1.Y - p0.Y)
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	k := adx
	if ady > k {
		k = ady
	}

	if p0.X > p1.X && k > 0 {
		p0, p1 = p1, p0
		dx = int64(p1.X - p0.X)
		dy = int64(p1.Y - p0.Y)
	}

	shade := shaderTable[flags.toShaderFlags()]
	uclip := clip.scaled(scale)

	var stepX, stepY int64
	if k > 0 {
		stepX = (dx << LineXYFractBits) / k
		stepY = (dy << LineXYFractBits) / k
	}

	yBias := int64(1) << (LineXYFractBits - 1)
	if dy < 0 {
		yBias = -yBias
	}
	xFixed := int64(p0.X)<<LineXYFractBits + (int64(1) << (LineXYFractBits - 1))
	yFixed := int64(p0.Y)<<LineXYFractBits + yBias

	var stepR, stepG, stepB int64
	if k > 0 {
		stepR = (int64(p1.R) - int64(p0.R)) << LineRGBFractBits / k
		stepG = (int64(p1.G) - int64(p0.G)) << LineRGBFractBits / k
		stepB = (int64(p1.B) - int64(p0.B)) << LineRGBFractBits / k
	}
	rFixed := int64(p0.R) << LineRGBFractBits
	gFixed := int64(p0.G) << LineRGBFractBits
	bFixed := int64(p0.B) << LineRGBFractBits

	for i := int64(0); i <= k; i++ {
		nx := int(xFixed >> LineXYFractBits)
		ny := int(yFixed >> LineXYFractBits)
		r := clampByteLine(rFixed >> LineRGBFractBits)
		g := clampByteLine(gFixed >> LineRGBFractBits)
		b := clampByteLine(bFixed >> LineRGBFractBits)

		if nx >= clip.Left && nx <= clip.Right && ny >= clip.Top && ny <= clip.Bottom {
			for dyy := 0; dyy < scale; dyy++ {
				yu := ny*scale + dyy
				if yu < uclip.Top || yu > uclip.Bottom {
					continue
				}
				if interlace && (yu&1) == int(activeField) {
					continue
				}
				for dxx := 0; dxx < scale; dxx++ {
					xu := nx*scale + dxx
					if xu < uclip.Left || xu > uclip.Right {
						continue
					}
					shade(vram, Fragment{X: xu, Y: yu, VR: r, VG: g, VB: b}, blend)
				}
			}
		}

		xFixed += stepX
		yFixed += stepY
		rFixed += stepR
		gFixed += stepG
		bFixed += stepB
	}
}

func clampByteLine(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
