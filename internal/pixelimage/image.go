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

// Package pixelimage holds the two image representations the pipeline
// passes between stages: an 8-bit pixel buffer used for star detection,
// and a 32-bit float buffer used only as the stacking accumulator operand.
package pixelimage

// Pixel is a rectangular, row-major buffer of unsigned 8-bit intensities.
// It is created by the loader, consumed by normalization and thresholding,
// and never mutated once thresholding has produced a binary image from it.
type Pixel struct {
	W, H int
	Data []uint8
}

func NewPixel(w, h int) *Pixel {
	return &Pixel{W: w, H: h, Data: make([]uint8, w*h)}
}

func (p *Pixel) At(x, y int) uint8 { return p.Data[y*p.W+x] }
func (p *Pixel) Set(x, y int, v uint8) { p.Data[y*p.W+x] = v }

// Clone returns an independent copy sharing no backing array.
func (p *Pixel) Clone() *Pixel {
	out := &Pixel{W: p.W, H: p.H, Data: make([]uint8, len(p.Data))}
	copy(out.Data, p.Data)
	return out
}

// Float is a rectangular, row-major buffer of 32-bit floats in [0,1].
// It is used solely as the stacking accumulator's operand: it is never
// normalized and never thresholded.
type Float struct {
	W, H int
	Data []float32
}

func NewFloat(w, h int) *Float {
	return &Float{W: w, H: h, Data: make([]float32, w*h)}
}

func (f *Float) At(x, y int) float32 { return f.Data[y*f.W+x] }
func (f *Float) Set(x, y int, v float32) { f.Data[y*f.W+x] = v }

// FromPixel returns a Float copy of p, mapping [0,255] to [0,1] linearly.
// This is the un-normalized copy the stacker keeps for accumulation.
func FromPixel(p *Pixel) *Float {
	f := NewFloat(p.W, p.H)
	for i, v := range p.Data {
		f.Data[i] = float32(v) / 255.0
	}
	return f
}

// Foreground reports whether a pixel image's value at an index is foreground
// (nonzero), the convention the Blob Finder and Threshold collaborator use.
func (p *Pixel) Foreground(i int) bool { return p.Data[i] != 0 }
