// gpu_dither.go - Compile-time dither/blend lookup tables

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

// ditherMatrix is the console's fixed 4x4 signed dither matrix, values in
// {-4,...,+3}, added to each 8-bit channel before the >>3 quantise step.
var ditherMatrix = [4][4]int16{
	{-4, 0, -3, 1},
	{2, -2, 3, -1},
	{-3, 1, -4, 0},
	{3, -1, 2, -2},
}

// ditherLUTInputs is the domain of the dither LUT: a modulated channel can
// run from 0 up to 2*255 before quantising, so the table covers [0, 511].
const ditherLUTInputs = 512

// ditherLUT[y&3][x&3][v] = clamp((v + ditherMatrix[y&3][x&3]) >> 3, 0, 31).
var ditherLUT [4][4][ditherLUTInputs]uint8

// noDitherLUT is the identity table (no dither matrix offset), used when
// dithering is disabled for a command but the same LUT-indexed code path
// is still convenient to call.
var noDitherLUT [ditherLUTInputs]uint8

func init() {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			offset := int(ditherMatrix[y][x])
			for v := 0; v < ditherLUTInputs; v++ {
				ditherLUT[y][x][v] = clamp5(v + offset)
			}
		}
	}
	for v := 0; v < ditherLUTInputs; v++ {
		noDitherLUT[v] = clamp5(v)
	}
}

func clamp5(v int) uint8 {
	q := v >> 3
	if q < 0 {
		return 0
	}
	if q > 31 {
		return 31
	}
	return uint8(q)
}

// ditherChannel runs one 8-bit-ish channel value through the LUT at
// position (x, y), applying the dither matrix offset only when dither is
// requested.
func ditherChannel(x, y int, v int, dither bool) uint8 {
	if v < 0 {
		v = 0
	} else if v >= ditherLUTInputs {
		v = ditherLUTInputs - 1
	}
	if !dither {
		return noDitherLUT[v]
	}
	return ditherLUT[y&3][x&3][v]
}

// blendChanMask is a single channel's bit width (5 bits).
const blendChanMask = 0x1F

// Semi-transparency blend equations. Each operates per 5-bit channel with
// saturation; the console implements this in parallel across the packed
// 16-bit word using the shared 0x8421 channel-boundary constant, but a
// per-channel Go loop produces the identical saturated result and keeps
// the arithmetic auditable.
func blendHalfAdd(bg, fg Pixel) Pixel {
	return blendChannels(bg, fg, func(b, f int32) int32 { return b/2 + f/2 })
}

func blendAdd(bg, fg Pixel) Pixel {
	return blendChannels(bg, fg, func(b, f int32) int32 { return b + f })
}

func blendSub(bg, fg Pixel) Pixel {
	return blendChannels(bg, fg, func(b, f int32) int32 { return b - f })
}

func blendAddQuarter(bg, fg Pixel) Pixel {
	return blendChannels(bg, fg, func(b, f int32) int32 { return b + f/4 })
}

func blendChannels(bg, fg Pixel, op func(b, f int32) int32) Pixel {
	r := clampChan(op(int32(bg.R()), int32(fg.R())))
	g := clampChan(op(int32(bg.G()), int32(fg.G())))
	b := clampChan(op(int32(bg.B()), int32(fg.B())))
	return MakePixel(uint8(r), uint8(g), uint8(b), bg.Mask())
}

func clampChan(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > blendChanMask {
		return blendChanMask
	}
	return v
}
