// gpu_triangle_test.go - Triangle rasterizer degenerate-geometry handling

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

// TestDrawTriangle_DegenerateVerticesWriteNothing covers the all-vertices-equal
// case from the degenerate-geometry invariant; shade is nil since v[0].Y ==
// v[2].Y returns before any shader call is ever reached.
func TestDrawTriangle_DegenerateVerticesWriteNothing(t *testing.T) {
	v := NewVRAM(1)
	vert := Vertex{X: 50, Y: 50, R: 31, G: 31, B: 31}
	verts := [3]Vertex{vert, vert, vert}
	clip := Rect{Left: 0, Top: 0, Right: 1023, Bottom: 511}

	DrawTriangle(v, 1, verts, nil, BlendHalfAdd, nil, clip, false, 0)

	if got := v.Get(50, 50); got != 0 {
		t.Fatalf("Get(50,50) after degenerate triangle = %#04x, want 0", got)
	}
}

func TestDrawTriangle_CollinearVerticesWriteNothing(t *testing.T) {
	v := NewVRAM(1)
	verts := [3]Vertex{
		{X: 0, Y: 10, R: 31, G: 0, B: 0},
		{X: 20, Y: 10, R: 31, G: 0, B: 0},
		{X: 10, Y: 10, R: 31, G: 0, B: 0},
	}
	clip := Rect{Left: 0, Top: 0, Right: 1023, Bottom: 511}

	DrawTriangle(v, 1, verts, nil, BlendHalfAdd, nil, clip, false, 0)

	for x := 0; x <= 20; x++ {
		if got := v.Get(x, 10); got != 0 {
			t.Fatalf("Get(%d,10) after collinear triangle = %#04x, want 0", x, got)
		}
	}
}
