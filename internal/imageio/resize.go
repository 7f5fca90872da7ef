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
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/ziman/stacker/internal/pixelimage"
)

// Resize scales img by the given factor on both axes, using bilinear
// interpolation. This is the Resize collaborator: it is applied once at
// load time with the configured subsample factor.
func Resize(img *pixelimage.Pixel, scaleX, scaleY float64) *pixelimage.Pixel {
	destW := int(float64(img.W)*scaleX + 0.5)
	destH := int(float64(img.H)*scaleY + 0.5)
	if destW < 1 {
		destW = 1
	}
	if destH < 1 {
		destH = 1
	}

	src := image.NewGray(image.Rect(0, 0, img.W, img.H))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			src.SetGray(x, y, color.Gray{Y: img.At(x, y)})
		}
	}

	dst := image.NewGray(image.Rect(0, 0, destW, destH))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := pixelimage.NewPixel(destW, destH)
	for y := 0; y < destH; y++ {
		for x := 0; x < destW; x++ {
			out.Set(x, y, dst.GrayAt(x, y).Y)
		}
	}
	return out
}
