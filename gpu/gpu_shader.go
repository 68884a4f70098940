// gpu_shader.go - Pixel shader contract and its specialised dispatch table

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

// ShaderFlags is the 7-bit feature set a polygon/line shader specialises
// on: shading, texture, raw-texture, semi-transparency, dither, mask-AND,
// mask-OR. The command dispatcher (gpu_commands.go) indexes the table
// built in init() by this value alone; the upscale factor is passed to
// the rasterizers, not folded into the index.
type ShaderFlags uint8

const (
	ShadeEnable ShaderFlags = 1 << iota
	TextureEnable
	RawTextureEnable
	TransparencyEnable
	DitherEnable
	MaskAndEnable
	MaskOrEnable

	ShaderFlagBits  = 7
	ShaderTableSize = 1 << ShaderFlagBits
)

// BlendMode selects one of the four semi-transparency equations.
type BlendMode int

const (
	BlendHalfAdd BlendMode = iota
	BlendAdd
	BlendSub
	BlendAddQuarter
)

func (m BlendMode) fn() func(bg, fg Pixel) Pixel {
	switch m {
	case BlendAdd:
		return blendAdd
	case BlendSub:
		return blendSub
	case BlendAddQuarter:
		return blendAddQuarter
	default:
		return blendHalfAdd
	}
}

// Fragment is the per-pixel input to the shader: destination coordinates
// in upscaled space, the interpolated vertex colour, and (if textured)
// the already-fetched 16-bit texel.
type Fragment struct {
	X, Y    int // upscaled coordinates
	VR      uint8
	VG      uint8
	VB      uint8
	Texel   Pixel
	HasTexel bool
}

// shaderFunc is one specialisation: given a fragment, a destination VRAM,
// and a blend mode (used only when TransparencyEnable is set), shade and
// conditionally write the pixel. Returns whether a pixel was written.
type shaderFunc func(vram *VRAM, f Fragment, blend BlendMode) bool

var shaderTable [ShaderTableSize]shaderFunc

func init() {
	for flags := 0; flags < ShaderTableSize; flags++ {
		shaderTable[flags] = buildShader(ShaderFlags(flags))
	}
}

// buildShader captures the flag combination once and returns a closure
// whose internal branches are all on compile-time-known booleans; this is
// the Go rendering of the source's compile-time shader template.
func buildShader(flags ShaderFlags) shaderFunc {
	textured := flags&TextureEnable != 0
	raw := flags&RawTextureEnable != 0
	transparent := flags&TransparencyEnable != 0
	dither := flags&DitherEnable != 0
	maskAnd := flags&MaskAndEnable != 0
	maskOr := flags&MaskOrEnable != 0

	return func(vram *VRAM, f Fragment, blend BlendMode) bool {
		var srcR, srcG, srcB uint8
		semiTransparent := transparent
		if textured {
			if !f.HasTexel {
				return false
			}
			if f.Texel == 0x0000 {
				return false // transparent-texel rule
			}
			if raw {
				srcR, srcG, srcB = f.Texel.R(), f.Texel.G(), f.Texel.B()
			} else {
				tr, tg, tb := f.Texel.ToRGB24()
				srcR = ditherChannel(f.X, f.Y, int(tr)*int(f.VR)/16, dither)
				srcG = ditherChannel(f.X, f.Y, int(tg)*int(f.VG)/16, dither)
				srcB = ditherChannel(f.X, f.Y, int(tb)*int(f.VB)/16, dither)
			}
			// For textured primitives, semi-transparency only applies
			// when the fetched texel's mask bit is set.
			semiTransparent = transparent && f.Texel.Mask()
		} else {
			srcR = ditherChannel(f.X, f.Y, int(f.VR), dither)
			srcG = ditherChannel(f.X, f.Y, int(f.VG), dither)
			srcB = ditherChannel(f.X, f.Y, int(f.VB), dither)
		}

		if maskAnd {
			dst := vram.GetUpscaled(f.X, f.Y)
			if dst.Mask() {
				return false
			}
		}

		// srcR/srcG/srcB are 5-bit channels here: the dither LUT already
		// quantises, and the raw path takes the texel's own channels.
		result := MakePixel(srcR, srcG, srcB, false)
		if semiTransparent {
			dst := vram.GetUpscaled(f.X, f.Y)
			result = blend.fn()(dst, result)
		}
		if maskOr {
			result |= PixelMaskBit
		} else if textured {
			result = MakePixel(result.R(), result.G(), result.B(), f.Texel.Mask())
		}

		vram.SetUpscaled(f.X, f.Y, result)
		return true
	}
}

// ShadePixel looks up the specialised function for flags and shades one
// fragment. The dispatcher (gpu_commands.go) normally calls shaderTable
// entries directly once it has resolved flags per command; this helper
// exists for callers that want the contract without precomputing a
// table index themselves. The transfer engine does not use it.
func ShadePixel(vram *VRAM, flags ShaderFlags, blend BlendMode, f Fragment) bool {
	return shaderTable[flags](vram, f, blend)
}
