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

package stacker

import (
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/ziman/stacker/internal/pixelimage"
)

// starfieldGray draws a reproducible field of bright dots on a dim background,
// used as synthetic test imagery (the core algorithms need actual
// detectable stars, not random noise).
func starfieldGray(w, h int, seed int64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: 40})
		}
	}
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < 25; i++ {
		cx := 10 + r.Intn(w-20)
		cy := 10 + r.Intn(h-20)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				x, y := cx+dx, cy+dy
				if x >= 0 && x < w && y >= 0 && y < h {
					img.SetGray(x, y, color.Gray{Y: 220})
				}
			}
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img *image.Gray) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding %s: %v", path, err)
	}
}

func approxEqualFloat(a, b *pixelimage.Float, tol float32) bool {
	if a.W != b.W || a.H != b.H {
		return false
	}
	for i := range a.Data {
		d := a.Data[i] - b.Data[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}

// Invariant 8, scenario S5: stacking identical images reproduces the
// reference's float form.
func TestStackIdenticalImagesReproducesReference(t *testing.T) {
	dir := t.TempDir()
	g := starfieldGray(160, 160, 1)
	path := filepath.Join(dir, "a.png")
	writePNG(t, path, g)

	opts := Default()
	opts.Subsample = 0.5
	opts.StarCount = 5
	opts.StarDistCutoff = 2

	result, err := Stack([]string{path, path}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	refPixel, err := loadAndSubsample(path, opts.Subsample)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := pixelimage.FromPixel(refPixel)

	if !approxEqualFloat(result, want, 1e-3) {
		t.Errorf("stacked result differs from reference float form")
	}
}

// Invariant 9: frame-drop stability. Stacking a reference, an identical
// frame, and a garbage (unrelated) frame should match stacking just the
// reference and the identical frame, since the garbage frame cannot align.
func TestFrameDropStability(t *testing.T) {
	dir := t.TempDir()
	g := starfieldGray(160, 160, 2)
	path := filepath.Join(dir, "ref.png")
	writePNG(t, path, g)

	garbage := image.NewGray(image.Rect(0, 0, 160, 160))
	r := rand.New(rand.NewSource(99))
	for i := range garbage.Pix {
		garbage.Pix[i] = uint8(r.Intn(256))
	}
	garbagePath := filepath.Join(dir, "garbage.png")
	writePNG(t, garbagePath, garbage)

	opts := Default()
	opts.Subsample = 0.5
	opts.StarCount = 5
	opts.StarDistCutoff = 2
	opts.PercentStarsRequired = 80

	withoutGarbage, err := Stack([]string{path, path}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withGarbage, err := Stack([]string{path, path, garbagePath}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approxEqualFloat(withoutGarbage, withGarbage, 1e-3) {
		t.Errorf("garbage frame was not fully dropped from the stack")
	}
}

// StackMedian on an odd number of identical frames must agree with
// StackMean, since the median and mean of n copies of the same value are
// both that value.
func TestStackMedianOfIdenticalFramesEqualsMean(t *testing.T) {
	dir := t.TempDir()
	g := starfieldGray(160, 160, 3)
	path := filepath.Join(dir, "a.png")
	writePNG(t, path, g)

	opts := Default()
	opts.Subsample = 0.5
	opts.StarCount = 5
	opts.StarDistCutoff = 2

	opts.StackMode = StackMean
	mean, err := Stack([]string{path, path, path}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts.StackMode = StackMedian
	median, err := Stack([]string{path, path, path}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approxEqualFloat(mean, median, 1e-3) {
		t.Errorf("median stack of identical frames differs from mean stack")
	}
}

func TestMedianOfOddAndEvenCounts(t *testing.T) {
	cases := []struct {
		values []float32
		want   float32
	}{
		{[]float32{1, 2, 3}, 2},
		{[]float32{1, 2, 3, 4}, 2.5},
		{[]float32{5}, 5},
	}
	for _, c := range cases {
		got := medianOf(c.values)
		if got != c.want {
			t.Errorf("medianOf(%v) = %v, want %v", c.values, got, c.want)
		}
	}
}

func TestStackRequiresTwoImages(t *testing.T) {
	_, err := Stack([]string{"only-one.png"}, Default())
	if err == nil {
		t.Errorf("expected error for fewer than two images")
	}
}
