// gpu_triangle.go - Fixed-point triangle rasterizer with affine gradients

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
	CoordFBS         = 12 // fractional bits for gradient interpolation
	CoordPostPadding = 10 // guard shift to preserve precision during divide

	MaxPrimitiveWidth  = 1024
	MaxPrimitiveHeight = 512

	halfPixelBias = (int64(1) << 32) - (1 << 11)
)

// Vertex is one triangle/polygon corner: screen position and the
// attributes that gradients interpolate across the face.
type Vertex struct {
	X, Y int32
	R, G, B uint8
	U, V    uint8
}

// Rect is a native-resolution drawing-area clip rectangle, inclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) scaled(s int) Rect {
	return Rect{r.Left * s, r.Top * s, r.Right*s + s - 1, r.Bottom*s + s - 1}
}

// Gradients carries the affine interpolants (r,g,b,u,v) and their
// screen-space partial derivatives, evaluated with CoordFBS fractional
// bits of precision. Exposed so the gradient algebra can be tested
// independently of the scanline walker.
type Gradients struct {
	baseX, baseY int32
	r, g, b, u, v int32 // base values at (baseX, baseY), << CoordFBS
	drdx, dgdx, dbdx, dudx, dvdx int32
	drdy, dgdy, dbdy, dudy, dvdy int32
}

// CalcGradients derives the affine interpolants for a triangle. ok is
// false when the triangle is degenerate (zero area): the caller must
// drop the primitive (DegenerateGeometry).
func CalcGradients(v0, v1, v2 Vertex) (g Gradients, ok bool) {
	denom := int64(v1.X-v0.X)*int64(v2.Y-v0.Y) - int64(v2.X-v0.X)*int64(v1.Y-v0.Y)
	if denom == 0 {
		return Gradients{}, false
	}

	g.baseX, g.baseY = v0.X, v0.Y
	g.r = int32(v0.R) << CoordFBS
	g.g = int32(v0.G) << CoordFBS
	g.b = int32(v0.B) << CoordFBS
	g.u = int32(v0.U) << CoordFBS
	g.v = int32(v0.V) << CoordFBS

	dx1, dy1 := int64(v1.X-v0.X), int64(v1.Y-v0.Y)
	dx2, dy2 := int64(v2.X-v0.X), int64(v2.Y-v0.Y)

	interp := func(a1, a2 int32) (dx, dy int32) {
		numDx := int64(a1)*dy2 - int64(a2)*dy1
		numDy := int64(a2)*dx1 - int64(a1)*dx2
		dx = int32(((numDx << CoordFBS) << CoordPostPadding) / denom >> CoordPostPadding)
		dy = int32(((numDy << CoordFBS) << CoordPostPadding) / denom >> CoordPostPadding)
		return
	}

	g.drdx, g.drdy = interp(int32(v1.R)-int32(v0.R), int32(v2.R)-int32(v0.R))
	g.dgdx, g.dgdy = interp(int32(v1.G)-int32(v0.G), int32(v2.G)-int32(v0.G))
	g.dbdx, g.dbdy = interp(int32(v1.B)-int32(v0.B), int32(v2.B)-int32(v0.B))
	g.dudx, g.dudy = interp(int32(v1.U)-int32(v0.U), int32(v2.U)-int32(v0.U))
	g.dvdx, g.dvdy = interp(int32(v1.V)-int32(v0.V), int32(v2.V)-int32(v0.V))
	return g, true
}

// At evaluates the interpolants at native pixel (x, y), clamped to valid
// channel ranges.
func (g Gradients) At(x, y int32) (r, g2, b, u, v uint8) {
	dx := x - g.baseX
	dy := y - g.baseY
	ev := func(base, ddx, ddy int32) uint8 {
		val := (base + ddx*dx + ddy*dy) >> CoordFBS
		if val < 0 {
			return 0
		}
		if val > 255 {
			return 255
		}
		return uint8(val)
	}
	return ev(g.r, g.drdx, g.drdy), ev(g.g, g.dgdx, g.dgdy), ev(g.b, g.dbdx, g.dbdy),
		ev(g.u, g.dudx, g.dudy), ev(g.v, g.dvdx, g.dvdy)
}

type fixedEdge struct {
	x    int64 // 32.32
	step int64
}

// newEdge builds the fixed-point stepper for one triangle edge. x0/x1 are
// upscaled x coordinates; dy is the span in upscaled rows the stepper
// will be advanced over (one advance() call per upscaled scanline).
func newEdge(x0, x1 int32, dy int32) fixedEdge {
	if dy == 0 {
		dy = 1
	}
	numerator := int64(x1-x0) << 32
	if numerator >= 0 {
		numerator += int64(dy) - 1
	} else {
		numerator -= int64(dy) - 1
	}
	return fixedEdge{
		x:    int64(x0)<<32 + halfPixelBias,
		step: numerator / int64(dy),
	}
}

func (e *fixedEdge) ix() int32 { return int32(e.x >> 32) }
func (e *fixedEdge) advance()  { e.x += e.step }

func sortVertices(v [3]Vertex) [3]Vertex {
	out := v
	for i := 0; i < 2; i++ {
		for j := 0; j < 2-i; j++ {
			if out[j].Y > out[j+1].Y || (out[j].Y == out[j+1].Y && out[j].X > out[j+1].X) {
				out[j], out[j+1] = out[j+1], out[j]
			}
		}
	}
	return out
}

func edgeOutOfBudget(a, b Vertex) bool {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx >= MaxPrimitiveWidth || dy >= MaxPrimitiveHeight
}

// DrawTriangle rasterizes one polygon face. vram, scale (S), the
// resolved shader function for this command's flags, blend mode, an
// optional texture page (nil when untextured), native drawing-area clip,
// and interlace parameters are all supplied by the command dispatcher.
func DrawTriangle(vram *VRAM, scale int, verts [3]Vertex, shade shaderFunc, blend BlendMode,
	tex *TexturePage, clip Rect, interlace bool, activeField uint8) {

	v := sortVertices(verts)
	if v[0].Y == v[2].Y {
		return // degenerate in Y
	}
	if edgeOutOfBudget(v[0], v[1]) || edgeOutOfBudget(v[1], v[2]) || edgeOutOfBudget(v[0], v[2]) {
		return // OutOfBudget
	}
	grad, ok := CalcGradients(v[0], v[1], v[2])
	if !ok {
		return // DegenerateGeometry
	}

	uclip := clip.scaled(scale)

	longEdgeOnRight := int64(v[1].X-v[0].X)*int64(v[2].Y-v[0].Y) >= int64(v[2].X-v[0].X)*int64(v[1].Y-v[0].Y)

	top := newEdge(v[0].X*int32(scale), v[2].X*int32(scale), (v[2].Y-v[0].Y)*int32(scale))

	drawHalf := func(yStart, yEnd int32, other fixedEdge) {
		y0u := yStart * int32(scale)
		y1u := yEnd * int32(scale)
		for yu := y0u; yu < y1u; yu++ {
			if int(yu) < uclip.Top || int(yu) > uclip.Bottom {
				top.advance()
				other.advance()
				continue
			}
			if interlace && (int(yu)&1) == int(activeField) {
				top.advance()
				other.advance()
				continue
			}
			var leftX, rightX int32
			if longEdgeOnRight {
				leftX, rightX = other.ix(), top.ix()
			} else {
				leftX, rightX = top.ix(), other.ix()
			}
			if leftX > rightX {
				leftX, rightX = rightX, leftX
			}
			if int(leftX) < uclip.Left {
				leftX = int32(uclip.Left)
			}
			if int(rightX) > uclip.Right {
				rightX = int32(uclip.Right)
			}
			ny := yu / int32(scale)
			for xu := leftX; xu <= rightX; xu++ {
				if int(xu) < uclip.Left || int(xu) > uclip.Right {
					continue
				}
				nx := xu / int32(scale)
				r, g, b, u, vv := grad.At(nx, ny)
				frag := Fragment{X: int(xu), Y: int(yu), VR: r, VG: g, VB: b}
				if tex != nil {
					frag.Texel = tex.Sample(vram, u, vv)
					frag.HasTexel = true
				}
				shade(vram, frag, blend)
			}
			top.advance()
			other.advance()
		}
	}

	if v[0].Y != v[1].Y {
		mid := newEdge(v[0].X*int32(scale), v[1].X*int32(scale), (v[1].Y-v[0].Y)*int32(scale))
		drawHalf(v[0].Y, v[1].Y, mid)
	}
	if v[1].Y != v[2].Y {
		// resume the long edge from where the top half left it; restart
		// the short edge from the middle vertex.
		bot := newEdge(v[1].X*int32(scale), v[2].X*int32(scale), (v[2].Y-v[1].Y)*int32(scale))
		drawHalf(v[1].Y, v[2].Y, bot)
	}
}
