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

// Package imageio holds the collaborator services the spec treats as fixed:
// loading, resizing, warping, writing and displaying images.
package imageio

import (
	"math"

	"github.com/ziman/stacker/internal/geom"
	"github.com/ziman/stacker/internal/pixelimage"
)

// WarpAffine resamples src into a destW x destH image under transform T,
// using bilinear interpolation sampled from T's inverse. Out-of-bounds
// source coordinates map to 0.
func WarpAffine(src *pixelimage.Float, T geom.Transform2D, destW, destH int) (*pixelimage.Float, error) {
	inv, err := T.Invert()
	if err != nil {
		return nil, err
	}

	dst := pixelimage.GetFloat(destW, destH)
	srcW, srcH := src.W, src.H

	for row := 0; row < destH; row++ {
		for col := 0; col < destW; col++ {
			p := inv.Apply(geom.Point2D{X: float64(col), Y: float64(row)})

			xl, yl := int(math.Floor(p.X)), int(math.Floor(p.Y))
			xh, yh := xl+1, yl+1
			xr, yr := p.X-float64(xl), p.Y-float64(yl)

			if xl < 0 || xh >= srcW || yl < 0 || yh >= srcH {
				dst.Set(col, row, 0)
				continue
			}

			vyl := float64(src.At(xl, yl))*(1-xr) + float64(src.At(xh, yl))*xr
			vyh := float64(src.At(xl, yh))*(1-xr) + float64(src.At(xh, yh))*xr
			v := vyl*(1-yr) + vyh*yr
			dst.Set(col, row, float32(v))
		}
	}
	return dst, nil
}
