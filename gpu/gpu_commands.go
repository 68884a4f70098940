// gpu_commands.go - Draw command sum type and the feature-flag dispatcher

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
	"fmt"
	"log"
)

// DrawMode carries every per-primitive feature bit named in §3 of the
// draw command model.
type DrawMode struct {
	Shading       bool
	Texture       bool
	RawTexture    bool
	Transparency  bool
	Blend         BlendMode
	Dither        bool
	MaskAnd       bool
	MaskOr        bool
	Interlace     bool
	ActiveField   uint8
	TextureMode   TextureMode
}

func (m DrawMode) polygonFlags() ShaderFlags {
	var f ShaderFlags
	if m.Shading {
		f |= ShadeEnable
	}
	if m.Texture {
		f |= TextureEnable
	}
	if m.RawTexture {
		f |= RawTextureEnable
	}
	if m.Transparency {
		f |= TransparencyEnable
	}
	if m.Dither {
		f |= DitherEnable
	}
	if m.MaskAnd {
		f |= MaskAndEnable
	}
	if m.MaskOr {
		f |= MaskOrEnable
	}
	return f
}

func (m DrawMode) rectFlags() RectShaderFlags {
	var f RectShaderFlags
	if m.Texture {
		f |= RectTextureEnable
	}
	if m.RawTexture {
		f |= RectRawTextureEnable
	}
	if m.Transparency {
		f |= RectTransparencyEnable
	}
	if m.MaskAnd {
		f |= RectMaskAndEnable
	}
	if m.MaskOr {
		f |= RectMaskOrEnable
	}
	return f
}

func (m DrawMode) lineFlags() LineShaderFlags {
	var f LineShaderFlags
	if m.Shading {
		f |= LineShadeEnable
	}
	if m.Transparency {
		f |= LineTransparencyEnable
	}
	if m.Dither {
		f |= LineDitherEnable
	}
	if m.MaskAnd {
		f |= LineMaskAndEnable
	}
	if m.MaskOr {
		f |= LineMaskOrEnable
	}
	return f
}

// Command is the draw/transfer command sum type (§3). Exactly one of the
// typed payload fields is meaningful per Tag.
type Command struct {
	Tag CommandTag

	Polygon   PolygonCommand
	Rectangle RectangleCommand
	Line      LineCommand
	Fill      FillCommand
	Upload    UploadCommand
	Copy      CopyCommand
	Readback  ReadbackCommand
}

type CommandTag int

const (
	TagPolygon CommandTag = iota
	TagRectangle
	TagLine
	TagFill
	TagUpload
	TagCopy
	TagReadback
)

type PolygonCommand struct {
	Vertices [4]Vertex
	NumVerts int // 3 or 4 (a quad is two triangles sharing an edge)
	Mode     DrawMode
	Texture  *TexturePage
}

type RectangleCommand struct {
	X, Y, W, H int
	Colour     Pixel
	U, V       uint8
	Mode       DrawMode
	Texture    *TexturePage
}

type LineCommand struct {
	Vertices []Vertex // >= 2; consecutive pairs form segments (polyline)
	Mode     DrawMode
}

type FillCommand struct {
	X, Y, W, H int
	Colour     Pixel
}

type UploadCommand struct {
	X, Y, W, H int
	Pixels     []Pixel
	Mode       DrawMode
}

type CopyCommand struct {
	SX, SY, DX, DY, W, H int
	Mode                 DrawMode
}

type ReadbackCommand struct {
	X, Y, W, H int
}

// Dispatch executes one command against vram at the given scale and
// drawing-area clip, selecting the specialised function for the
// command's feature flags. Unknown tags are logged and dropped
// (InvalidCommand).
func Dispatch(vram *VRAM, scale int, clip Rect, logger *log.Logger, cmd Command) {
	switch cmd.Tag {
	case TagPolygon:
		dispatchPolygon(vram, scale, clip, cmd.Polygon)
	case TagRectangle:
		dispatchRectangle(vram, scale, clip, cmd.Rectangle)
	case TagLine:
		dispatchLine(vram, scale, clip, cmd.Line)
	case TagFill:
		f := cmd.Fill
		Fill(vram, f.X, f.Y, f.W, f.H, f.Colour, TransferParams{})
	case TagUpload:
		u := cmd.Upload
		Upload(vram, u.X, u.Y, u.W, u.H, u.Pixels, TransferParams{
			MaskAnd: u.Mode.MaskAnd, MaskOr: u.Mode.MaskOr,
			Interlace: u.Mode.Interlace, ActiveField: u.Mode.ActiveField,
		})
	case TagCopy:
		c := cmd.Copy
		Copy(vram, c.SX, c.SY, c.DX, c.DY, c.W, c.H, TransferParams{
			MaskAnd: c.Mode.MaskAnd, MaskOr: c.Mode.MaskOr,
		})
	case TagReadback:
		Readback(vram)
	default:
		if logger != nil {
			logger.Printf("gpu: dropping invalid command tag %d", cmd.Tag)
		}
	}
}

func dispatchPolygon(vram *VRAM, scale int, clip Rect, p PolygonCommand) {
	shade := shaderTable[p.Mode.polygonFlags()]
	draw := func(a, b, c Vertex) {
		DrawTriangle(vram, scale, [3]Vertex{a, b, c}, shade, p.Mode.Blend, p.Texture,
			clip, p.Mode.Interlace, p.Mode.ActiveField)
	}
	draw(p.Vertices[0], p.Vertices[1], p.Vertices[2])
	if p.NumVerts == 4 {
		draw(p.Vertices[1], p.Vertices[2], p.Vertices[3])
	}
}

func dispatchRectangle(vram *VRAM, scale int, clip Rect, r RectangleCommand) {
	DrawRectangle(vram, scale, r.X, r.Y, r.W, r.H, r.Colour, r.U, r.V,
		r.Mode.rectFlags(), r.Mode.Blend, r.Texture, clip, r.Mode.Interlace, r.Mode.ActiveField)
}

func dispatchLine(vram *VRAM, scale int, clip Rect, l LineCommand) {
	flags := l.Mode.lineFlags()
	for i := 0; i+1 < len(l.Vertices); i++ {
		DrawLineSegment(vram, scale, l.Vertices[i], l.Vertices[i+1], flags,
			l.Mode.Blend, clip, l.Mode.Interlace, l.Mode.ActiveField)
	}
}

func (t CommandTag) String() string {
	switch t {
	case TagPolygon:
		return "Polygon"
	case TagRectangle:
		return "Rectangle"
	case TagLine:
		return "Line"
	case TagFill:
		return "Fill"
	case TagUpload:
		return "Upload"
	case TagCopy:
		return "Copy"
	case TagReadback:
		return "Readback"
	default:
		return fmt.Sprintf("CommandTag(%d)", int(t))
	}
}
