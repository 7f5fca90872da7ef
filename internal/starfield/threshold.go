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

package starfield

import (
	"github.com/ziman/stacker/internal/blob"
	"github.com/ziman/stacker/internal/pixelimage"
)

// DetectResult is the outcome of AdaptiveThreshold: the threshold actually
// used, and the stars found at it.
type DetectResult struct {
	Threshold int
	Stars     []Star
}

// AdaptiveThreshold binary-searches the gray threshold on a normalized
// image so the Blob Finder's star count lies within +-20% of starCount.
// prevThreshold seeds the search bounds; pass -1 on the first call (e.g.
// for the reference frame), and thread the returned threshold into the
// next call if the caller wants warm-started convergence across frames.
//
// Terminates when lo+1 >= hi; the last threshold tried wins, whether or
// not it landed inside the acceptance band. This is "threshold
// non-convergence" in the error model and is not surfaced as an error.
func AdaptiveThreshold(img *pixelimage.Pixel, starCount, prevThreshold int) DetectResult {
	var lo, hi int
	switch {
	case prevThreshold == -1:
		lo, hi = 0, 255
		prevThreshold = 128
	case prevThreshold < 128:
		lo, hi = 0, 2*prevThreshold
	default:
		lo, hi = 2*prevThreshold-256, 255
	}
	if lo < 0 {
		lo = 0
	}
	if hi > 255 {
		hi = 255
	}

	t := prevThreshold
	limit := 2 * starCount
	var stars []Star

	for {
		t = (lo + hi) / 2
		bin := pixelimage.Threshold(img, t)
		blobs := blob.Find(bin, limit)
		stars = FromBlobs(blobs)
		count := len(stars)

		diff := count - starCount
		if diff < 0 {
			diff = -diff
		}
		if diff < starCount/5 {
			break
		}
		if count < starCount {
			hi = t
		} else {
			lo = t
		}
		if lo+1 >= hi {
			break
		}
	}
	return DetectResult{Threshold: t, Stars: stars}
}
