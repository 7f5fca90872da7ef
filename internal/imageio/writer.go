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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/ziman/stacker/internal/pixelimage"
)

// Write encodes a Float image (values assumed to lie in [0,1]) as an 8-bit
// grayscale PNG at path. This is the ImageWriter collaborator.
func Write(path string, img *pixelimage.Float) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: creating %s: %w", path, err)
	}
	defer f.Close()

	out := image.NewGray(image.Rect(0, 0, img.W, img.H))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			v := img.At(x, y)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			out.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("imageio: encoding %s: %w", path, err)
	}
	return nil
}
