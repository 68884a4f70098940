package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"golang.org/x/image/bmp"

	"github.com/zaynotley/psxgpu/gpu"
)

// viewer is the ebiten.Game implementation that blits the GPU's shadow
// VRAM plane into a resizable window, grounded on the host engine's own
// EbitenOutput.Draw/Layout pair.
type viewer struct {
	g      *gpu.GPU
	logger *log.Logger

	window *ebiten.Image

	clipboardOnce sync.Once
	clipboardOK   bool
}

func runDisplay(g *gpu.GPU, logger *log.Logger) error {
	v := &viewer{g: g, logger: logger}
	ebiten.SetWindowTitle("gpuview - VRAM shadow plane")
	ebiten.SetWindowSize(gpu.VRAMWidth, gpu.VRAMHeight)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(v)
}

func (v *viewer) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.copyRegionToClipboard(0, 0, gpu.VRAMWidth, gpu.VRAMHeight)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.window == nil {
		v.window = ebiten.NewImage(gpu.VRAMWidth, gpu.VRAMHeight)
	}
	pixels := v.g.Readback(0, 0, gpu.VRAMWidth, gpu.VRAMHeight)
	rgba := make([]byte, 0, len(pixels)*4)
	for _, p := range pixels {
		r, g, b := p.ToRGB24()
		rgba = append(rgba, r, g, b, 0xFF)
	}
	v.window.WritePixels(rgba)
	screen.DrawImage(v.window, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gpu.VRAMWidth, gpu.VRAMHeight
}

// copyRegionToClipboard exports a VRAM region as a PNG onto the system
// clipboard, mirroring the host engine's clipboard-paste feature in
// video_backend_ebiten.go but for image export rather than text input.
func (v *viewer) copyRegionToClipboard(x, y, w, h int) {
	v.clipboardOnce.Do(func() {
		v.clipboardOK = clipboard.Init() == nil
	})
	if !v.clipboardOK {
		v.logger.Printf("clipboard unavailable, region copy skipped")
		return
	}

	pixels := v.g.Readback(x, y, w, h)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range pixels {
		r, g, b := p.ToRGB24()
		px := i % w
		py := i / w
		img.Set(px, py, rgbaColor{r, g, b, 0xFF})
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		v.logger.Printf("png encode: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	v.logger.Printf("copied %dx%d region to clipboard as PNG", w, h)
}

// saveBMP writes a VRAM region to disk in BMP form, the secondary
// export format named in the expanded spec's domain-stack wiring for
// golang.org/x/image/bmp.
func saveBMP(g *gpu.GPU, path string, x, y, w, h int) error {
	pixels := g.Readback(x, y, w, h)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range pixels {
		r, gch, b := p.ToRGB24()
		px := i % w
		py := i / w
		img.Set(px, py, rgbaColor{r, gch, b, 0xFF})
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return fmt.Errorf("bmp encode: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

type rgbaColor struct {
	R, G, B, A uint8
}

func (c rgbaColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
