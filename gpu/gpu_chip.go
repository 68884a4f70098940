// gpu_chip.go - Top-level GPU: VRAM, dispatcher, drawing-area/texture-window state

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
	"log"
	"sync"
)

// GPU is the top-level rasterizer: it owns the VRAM store, the current
// drawing-area clip and texture window, and an optional render queue.
// Submitted commands either dispatch synchronously (queue disabled) or
// are handed to the queue's worker goroutine, matching the single
// logical renderer described in §5.
//
// Thread Safety: mu guards clip/window/queue/logger; the VRAM store and
// render queue have their own internal synchronisation, matching
// VideoChip's split between chip-level state and buffer-level locking.
type GPU struct {
	mu sync.Mutex

	vram   *VRAM
	clip   Rect
	window TextureWindow

	queue  *RenderQueue
	logger *log.Logger
}

// NewGPU constructs a GPU with the given initial upscale factor and no
// render queue (commands dispatch synchronously on the calling
// goroutine until EnableQueue is called).
func NewGPU(scale int) *GPU {
	g := &GPU{vram: NewVRAM(scale)}
	g.clip = Rect{Left: 0, Top: 0, Right: 1023, Bottom: 511}
	return g
}

// SetLogger installs the logger used for dropped/invalid-command
// diagnostics; nil disables logging.
func (g *GPU) SetLogger(l *log.Logger) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger = l
}

// VRAM exposes the underlying store, e.g. for a host display consumer
// reading the shadow plane.
func (g *GPU) VRAM() *VRAM { return g.vram }

// EnableQueue starts an SPSC render queue of the given backlog depth,
// decoupling command submission from rasterization. depth <= 0 disables
// the queue (reverting to synchronous dispatch).
func (g *GPU) EnableQueue(depth int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.queue != nil {
		g.queue.Close()
		g.queue = nil
	}
	if depth <= 0 {
		return
	}
	g.queue = NewRenderQueue(g.vram, depth, g.Scale, g.currentClip, g.logger)
}

// Scale returns the VRAM upscale factor currently in effect.
func (g *GPU) Scale() int { return g.vram.Scale() }

func (g *GPU) currentClip() Rect {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clip
}

// SetDrawingArea installs the clip rectangle (native coordinates) that
// bounds every subsequent primitive, mirroring the original's
// DrawingAreaChanged recompute-on-register-write hook.
func (g *GPU) SetDrawingArea(left, top, right, bottom int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clip = Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// SetTextureWindow installs the texture coordinate wrap applied by
// subsequent textured primitives that don't carry their own page.
func (g *GPU) SetTextureWindow(w TextureWindow) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.window = w
}

// TextureWindow returns the currently installed texture window.
func (g *GPU) TextureWindow() TextureWindow {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.window
}

// Submit enqueues or immediately dispatches cmd, depending on whether a
// render queue is active.
func (g *GPU) Submit(cmd Command) {
	g.mu.Lock()
	q := g.queue
	clip := g.clip
	logger := g.logger
	g.mu.Unlock()

	if q != nil {
		q.Submit(cmd)
		return
	}
	Dispatch(g.vram, g.vram.Scale(), clip, logger, cmd)
}

// Readback drains any pending queued commands, flushes the upscale
// mirror to the shadow plane, and returns the requested region read
// from the shadow plane (§5: "a Readback observes all prior commands
// and no later ones").
func (g *GPU) Readback(x, y, w, h int) []Pixel {
	g.mu.Lock()
	q := g.queue
	g.mu.Unlock()

	if q != nil {
		q.Drain()
	} else {
		g.vram.SyncToShadow()
	}

	out := make([]Pixel, 0, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			out = append(out, g.vram.ShadowGet(x+col, y+row))
		}
	}
	return out
}

// SetScale changes the upscale factor, synchronising the renderer first
// (per §5: "a setting change that alters S synchronises the renderer,
// then reallocates the upscaled plane and re-seeds it from the
// shadow").
func (g *GPU) SetScale(scale int) {
	g.mu.Lock()
	q := g.queue
	g.mu.Unlock()

	if q != nil {
		q.Drain()
	}
	g.vram.SetScale(scale)
}

// Close releases the render queue's worker goroutine, if one is active.
func (g *GPU) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.queue != nil {
		g.queue.Close()
		g.queue = nil
	}
}
