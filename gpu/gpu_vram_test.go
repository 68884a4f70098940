// gpu_vram_test.go - VRAM store round-trip and upscale-block invariants

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

import "testing"

func TestVRAM_SetSyncShadowRoundTrip(t *testing.T) {
	v := NewVRAM(1)
	p := MakePixel(17, 3, 29, true)
	v.Set(100, 50, p)
	v.SyncToShadow()
	if got := v.ShadowGet(100, 50); got != p {
		t.Fatalf("ShadowGet(100,50) = %#04x, want %#04x", got, p)
	}
}

func TestVRAM_SetBlockInvariant(t *testing.T) {
	for _, s := range []int{1, 2, 4} {
		v := NewVRAM(s)
		p := MakePixel(11, 22, 9, false)
		v.Set(10, 10, p)
		for dy := 0; dy < s; dy++ {
			for dx := 0; dx < s; dx++ {
				xu := 10*s + dx
				yu := 10*s + dy
				if got := v.GetUpscaled(xu, yu); got != p {
					t.Errorf("scale=%d: GetUpscaled(%d,%d) = %#04x, want %#04x", s, xu, yu, got, p)
				}
			}
		}
	}
}

func TestVRAM_ClearZeroesBothPlanes(t *testing.T) {
	v := NewVRAM(2)
	v.Set(5, 5, MakePixel(31, 31, 31, true))
	v.SyncToShadow()
	v.Clear()
	v.SyncToShadow()
	if got := v.ShadowGet(5, 5); got != 0 {
		t.Errorf("ShadowGet after Clear = %#04x, want 0", got)
	}
	if got := v.GetUpscaled(10, 10); got != 0 {
		t.Errorf("GetUpscaled after Clear = %#04x, want 0", got)
	}
}

func TestVRAM_SetScaleReseedsFromShadow(t *testing.T) {
	v := NewVRAM(1)
	p := MakePixel(5, 6, 7, false)
	v.Set(3, 4, p)
	v.SyncToShadow()
	v.SetScale(2)
	if got := v.Get(3, 4); got != p {
		t.Fatalf("Get(3,4) after SetScale(2) = %#04x, want %#04x", got, p)
	}
}

func TestVRAM_CoordinatesWrap(t *testing.T) {
	v := NewVRAM(1)
	p := MakePixel(1, 2, 3, false)
	v.Set(-1, -1, p)
	if got := v.Get(VRAMWidth-1, VRAMHeight-1); got != p {
		t.Fatalf("negative coordinates did not wrap: got %#04x, want %#04x", got, p)
	}
}
