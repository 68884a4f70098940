// gpu_dither_test.go - Dither LUT and blend equation correctness

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

func TestDitherChannel_MatchesMatrixClamp(t *testing.T) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			offset := int(ditherMatrix[y][x])
			for _, v := range []int{0, 1, 30, 128, 200, 254, 255} {
				want := clamp5(v + offset)
				got := ditherChannel(x, y, v, true)
				if got != want {
					t.Fatalf("ditherChannel(%d,%d,%d,true) = %d, want %d", x, y, v, got, want)
				}
			}
		}
	}
}

func TestDitherChannel_DisabledIsPlainClamp(t *testing.T) {
	for _, v := range []int{-5, 0, 128, 255, 600} {
		got := ditherChannel(1, 1, v, false)
		want := clamp5(v)
		if v < 0 {
			want = clamp5(0)
		} else if v >= ditherLUTInputs {
			want = clamp5(ditherLUTInputs - 1)
		}
		if got != want {
			t.Errorf("ditherChannel(1,1,%d,false) = %d, want %d", v, got, want)
		}
	}
}

func TestBlendAdd_SemiTransparentSaturates(t *testing.T) {
	bg := Pixel(0x7FFF)
	fg := Pixel(0x0421)
	got := blendAdd(bg, fg)
	want := Pixel(0x7FFF)
	if got != want {
		t.Fatalf("blendAdd(%#04x,%#04x) = %#04x, want %#04x", bg, fg, got, want)
	}
}

func TestBlendHalfAdd_Averages(t *testing.T) {
	bg := MakePixel(20, 20, 20, false)
	fg := MakePixel(10, 10, 10, false)
	got := blendHalfAdd(bg, fg)
	want := MakePixel(15, 15, 15, false)
	if got != want {
		t.Fatalf("blendHalfAdd(%#04x,%#04x) = %#04x, want %#04x", bg, fg, got, want)
	}
}
