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

//go:build !gocv

package imageio

import (
	"fmt"

	"github.com/ziman/stacker/internal/logging"
	"github.com/ziman/stacker/internal/pixelimage"
)

// Display is the ImageDisplay collaborator's default build: this build has
// no interactive window toolkit linked in, so it logs that no display is
// available, with the result's size, and tells the caller to pass -o instead.
func Display(img *pixelimage.Float) error {
	logging.Println(fmt.Sprintf("no display available in this build (%dx%d result) — pass -o to write a file", img.W, img.H))
	return nil
}
