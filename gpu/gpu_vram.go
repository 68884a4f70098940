// gpu_vram.go - VRAM store and the upscale mirror / shadow plane

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

import "sync"

const (
	VRAMWidth  = 1024
	VRAMHeight = 512
)

// VRAM is the native-plus-upscaled pixel store. At S=1 the native plane is
// the console's authoritative VRAM; at S>1 a private super-sampled plane
// is rasterised into, and the native-size shadow plane is refreshed only
// by SyncToShadow so external readers always see native-size pixels.
//
// Thread Safety: Get/Set/Clear/SetScale/SyncToShadow and the shadow
// accessors take mu. GetUpscaled/SetUpscaled take no lock, and the
// rasterizer inner loops call them without holding mu; they rely on all
// draw commands being dispatched from one goroutine at a time.
type VRAM struct {
	mu sync.RWMutex

	scale int // S in {1, 2, 4}

	upscaled []Pixel // (VRAMWidth*S) x (VRAMHeight*S), row-major
	shadow   []Pixel // VRAMWidth x VRAMHeight, row-major, S=1 always
}

// NewVRAM allocates a VRAM store at the given upscale factor.
func NewVRAM(scale int) *VRAM {
	v := &VRAM{}
	v.reallocate(scale)
	return v
}

func (v *VRAM) reallocate(scale int) {
	if scale != 1 && scale != 2 && scale != 4 {
		scale = 1
	}
	v.scale = scale
	v.upscaled = make([]Pixel, VRAMWidth*scale*VRAMHeight*scale)
	if v.shadow == nil {
		v.shadow = make([]Pixel, VRAMWidth*VRAMHeight)
	}
}

// Scale returns the current upscale factor S.
func (v *VRAM) Scale() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.scale
}

// SetScale first flushes the current upscaled image into the shadow
// plane, then reallocates the upscaled plane and re-seeds it from the
// shadow. Per AllocationFailure error handling, a failed allocation falls
// back to S=1 and preserves the shadow plane's contents unchanged.
func (v *VRAM) SetScale(scale int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.scale == scale {
		return
	}
	v.syncToShadowLocked()
	v.growFrom(scale)
}

func (v *VRAM) growFrom(scale int) {
	defer func() {
		if recover() != nil {
			v.scale = 1
			v.upscaled = make([]Pixel, VRAMWidth*VRAMHeight)
			v.reseedLocked()
		}
	}()
	v.reallocate(scale)
	v.reseedLocked()
}

func (v *VRAM) reseedLocked() {
	s := v.scale
	stride := VRAMWidth * s
	for y := 0; y < VRAMHeight; y++ {
		for x := 0; x < VRAMWidth; x++ {
			p := v.shadow[y*VRAMWidth+x]
			base := (y*s)*stride + x*s
			for dy := 0; dy < s; dy++ {
				row := base + dy*stride
				for dx := 0; dx < s; dx++ {
					v.upscaled[row+dx] = p
				}
			}
		}
	}
}

func wrapVRAM(x, y int) (int, int) {
	x %= VRAMWidth
	if x < 0 {
		x += VRAMWidth
	}
	y %= VRAMHeight
	if y < 0 {
		y += VRAMHeight
	}
	return x, y
}

// Get samples the top-left texel of the S x S block at native (x, y).
func (v *VRAM) Get(x, y int) Pixel {
	v.mu.RLock()
	defer v.mu.RUnlock()
	x, y = wrapVRAM(x, y)
	return v.getUpscaledLocked(x*v.scale, y*v.scale)
}

// Set writes the full S x S block covering native (x, y).
func (v *VRAM) Set(x, y int, p Pixel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	x, y = wrapVRAM(x, y)
	v.setBlockLocked(x, y, p)
}

func (v *VRAM) setBlockLocked(nx, ny int, p Pixel) {
	s := v.scale
	stride := VRAMWidth * s
	base := (ny*s)*stride + nx*s
	for dy := 0; dy < s; dy++ {
		row := base + dy*stride
		for dx := 0; dx < s; dx++ {
			v.upscaled[row+dx] = p
		}
	}
}

// Clear sets every pixel in both the upscaled plane and the shadow plane
// to Pixel(0).
func (v *VRAM) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.upscaled {
		v.upscaled[i] = 0
	}
	for i := range v.shadow {
		v.shadow[i] = 0
	}
}

// GetUpscaled reads a single texel in upscaled coordinates without
// taking mu. Used by the rasterizer inner loops, which rely on the
// command dispatcher running one command at a time (see gpu_chip.go).
func (v *VRAM) GetUpscaled(xu, yu int) Pixel {
	return v.getUpscaledLocked(xu, yu)
}

func (v *VRAM) getUpscaledLocked(xu, yu int) Pixel {
	s := v.scale
	w := VRAMWidth * s
	h := VRAMHeight * s
	xu %= w
	if xu < 0 {
		xu += w
	}
	yu %= h
	if yu < 0 {
		yu += h
	}
	return v.upscaled[yu*w+xu]
}

// SetUpscaled writes a single texel in upscaled coordinates, replicating
// it across the rest of its native S x S block so Get/shadow reads always
// observe a block written by a single native-resolution decision.
func (v *VRAM) SetUpscaled(xu, yu int, p Pixel) {
	s := v.scale
	nx := (xu / s) * s
	ny := (yu / s) * s
	v.setBlockLocked(nx/s, ny/s, p)
}

// Lock/Unlock expose the write lock to callers that perform many
// SetUpscaled calls and want to pay the locking cost once. The
// rasterizers in this package do not take it (their texture fetches go
// through Get, which takes the read lock itself).
func (v *VRAM) Lock()    { v.mu.Lock() }
func (v *VRAM) Unlock()  { v.mu.Unlock() }
func (v *VRAM) RLock()   { v.mu.RLock() }
func (v *VRAM) RUnlock() { v.mu.RUnlock() }

// SyncToShadow copies the top-left texel of every S x S block down into
// the native-size shadow plane. Must be called before any external read
// (Readback, save-state, debug inspection).
func (v *VRAM) SyncToShadow() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.syncToShadowLocked()
}

func (v *VRAM) syncToShadowLocked() {
	s := v.scale
	stride := VRAMWidth * s
	for y := 0; y < VRAMHeight; y++ {
		for x := 0; x < VRAMWidth; x++ {
			v.shadow[y*VRAMWidth+x] = v.upscaled[(y*s)*stride+x*s]
		}
	}
}

// ShadowGet reads the native-resolution shadow plane directly, without
// forcing a sync. Callers that need a fresh view must call SyncToShadow
// first (e.g. Readback, per spec).
func (v *VRAM) ShadowGet(x, y int) Pixel {
	v.mu.RLock()
	defer v.mu.RUnlock()
	x, y = wrapVRAM(x, y)
	return v.shadow[y*VRAMWidth+x]
}

// ShadowSnapshot copies the entire native-size shadow plane out, for
// save-state persistence or a host display consumer.
func (v *VRAM) ShadowSnapshot() []Pixel {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]Pixel, len(v.shadow))
	copy(out, v.shadow)
	return out
}

// RestoreShadow replaces the shadow plane wholesale (save-state load) and
// reseeds the upscaled plane from it.
func (v *VRAM) RestoreShadow(pixels []Pixel) {
	v.mu.Lock()
	defer v.mu.Unlock()
	copy(v.shadow, pixels)
	v.reseedLocked()
}
