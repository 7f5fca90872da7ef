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

package pixelimage

import "math"

// Normalize replaces each pixel v with round(31*log2(v)) clamped to [0,255],
// with v=0 mapping to 0. It contrast-compresses bright star cores relative
// to their halos so the Blob Finder sees compact centroids.
//
// The normalized buffer is used only for detection; callers must keep a
// separate, un-normalized Float copy for stacking.
func Normalize(p *Pixel) {
	for i, v := range p.Data {
		if v == 0 {
			p.Data[i] = 0
			continue
		}
		n := int(math.Round(31 * math.Log2(float64(v))))
		if n < 0 {
			n = 0
		} else if n > 255 {
			n = 255
		}
		p.Data[i] = uint8(n)
	}
}

// Threshold returns a new binary image from p, leaving p unchanged: pixel
// >= t maps to 255, else 0. This is the Threshold collaborator (spec.md §6).
func Threshold(p *Pixel, t int) *Pixel {
	out := NewPixel(p.W, p.H)
	for i, v := range p.Data {
		if int(v) >= t {
			out.Data[i] = 255
		}
	}
	return out
}
