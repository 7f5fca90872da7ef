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

//go:build gocv

package imageio

import (
	"gocv.io/x/gocv"

	"github.com/ziman/stacker/internal/pixelimage"
)

// Display shows the stacked result in a window, blocking until a key is
// pressed. Built only with -tags gocv, since it links OpenCV.
func Display(img *pixelimage.Float) error {
	mat := gocv.NewMatWithSize(img.H, img.W, gocv.MatTypeCV32F)
	defer mat.Close()

	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			mat.SetFloatAt(y, x, img.At(x, y))
		}
	}

	window := gocv.NewWindow("stacker")
	defer window.Close()
	window.IMShow(mat)
	window.WaitKey(0)
	return nil
}
