// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package imageio

import (
	"testing"

	"github.com/ziman/stacker/internal/geom"
	"github.com/ziman/stacker/internal/pixelimage"
)

func TestWarpAffineIdentityIsNoop(t *testing.T) {
	src := pixelimage.NewFloat(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			src.Set(x, y, 0.5)
		}
	}

	dst, err := WarpAffine(src, geom.Identity(), 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			if dst.At(x, y) != src.At(x, y) {
				t.Errorf("at (%d,%d): got %v, want %v", x, y, dst.At(x, y), src.At(x, y))
			}
		}
	}
}

func TestWarpAffineOutOfBoundsIsZero(t *testing.T) {
	src := pixelimage.NewFloat(4, 4)
	for i := range src.Data {
		src.Data[i] = 1
	}
	// Translate far enough that the destination samples entirely outside src.
	T := geom.Transform2D{A: 1, B: 0, C: 1000, D: 0, E: 1, F: 1000}
	dst, err := WarpAffine(src, T, 4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range dst.Data {
		if v != 0 {
			t.Errorf("expected 0 for out-of-bounds sample, got %v", v)
		}
	}
}

func TestResizeHalvesDimensions(t *testing.T) {
	img := pixelimage.NewPixel(20, 10)
	for i := range img.Data {
		img.Data[i] = 128
	}
	out := Resize(img, 0.5, 0.5)
	if out.W != 10 || out.H != 5 {
		t.Fatalf("got %dx%d, want 10x5", out.W, out.H)
	}
}
