// gpu_transfer_test.go - Fill / Copy transfer engine scenarios

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

func TestFill_FlatFillZeroesWholeVRAM(t *testing.T) {
	v := NewVRAM(1)
	Fill(v, 0, 0, VRAMWidth, VRAMHeight, MakePixel(31, 17, 9, true), TransferParams{})
	Fill(v, 0, 0, VRAMWidth, VRAMHeight, 0x0000, TransferParams{})
	Readback(v)

	for y := 0; y < VRAMHeight; y += 37 {
		for x := 0; x < VRAMWidth; x += 41 {
			if got := v.ShadowGet(x, y); got != 0 {
				t.Fatalf("ShadowGet(%d,%d) = %#04x, want 0", x, y, got)
			}
		}
	}
}

func TestFill_MaskAndPreservesMaskedPixel(t *testing.T) {
	v := NewVRAM(1)
	prior := MakePixel(4, 4, 4, true) // mask_or = 1
	v.Set(5, 5, prior)

	Fill(v, 5, 5, 1, 1, MakePixel(20, 20, 20, false), TransferParams{MaskAnd: true})

	if got := v.Get(5, 5); got != prior {
		t.Fatalf("Get(5,5) = %#04x, want unchanged %#04x", got, prior)
	}
}

func TestFill_MaskOrSetsBit(t *testing.T) {
	v := NewVRAM(1)
	Fill(v, 2, 2, 1, 1, MakePixel(1, 1, 1, false), TransferParams{MaskOr: true})
	if got := v.Get(2, 2); !got.Mask() {
		t.Fatalf("Get(2,2).Mask() = false, want true after MaskOr fill")
	}
}

func TestCopy_SameSourceAndDestIsIdentity(t *testing.T) {
	v := NewVRAM(1)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			v.Set(100+x, 100+y, MakePixel(uint8(x), uint8(y), 0, false))
		}
	}
	before := snapshotRegion(v, 100, 100, 8, 8)
	Copy(v, 100, 100, 100, 100, 8, 8, TransferParams{})
	after := snapshotRegion(v, 100, 100, 8, 8)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("pixel %d changed under identity copy: %#04x -> %#04x", i, before[i], after[i])
		}
	}
}

func TestCopy_MovesRegion(t *testing.T) {
	v := NewVRAM(1)
	src := MakePixel(9, 2, 6, false)
	v.Set(0, 0, src)
	Copy(v, 0, 0, 200, 200, 1, 1, TransferParams{})
	if got := v.Get(200, 200); got != src {
		t.Fatalf("Get(200,200) after Copy = %#04x, want %#04x", got, src)
	}
}

func snapshotRegion(v *VRAM, x, y, w, h int) []Pixel {
	out := make([]Pixel, 0, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			out = append(out, v.Get(x+col, y+row))
		}
	}
	return out
}
