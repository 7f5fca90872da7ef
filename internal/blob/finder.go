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

package blob

import "github.com/ziman/stacker/internal/pixelimage"

// Find returns the set of Blobs in a binary image (foreground = any
// nonzero pixel), using a scanline-incremental union over one row at a
// time. If the running blob count would exceed limit, it aborts and
// returns an incomplete result of at most limit+1 blobs — callers
// interpret "more than limit" as a signal that the current threshold is
// wrong; no error is reported.
//
// Complexity: O(total foreground pixels + total runs).
func Find(img *pixelimage.Pixel, limit int) []Blob {
	height := img.H

	emitted := make([]Blob, 0, 64)
	// prev/cur are a pair of per-row buffers, reused across rows instead of
	// allocated per run, per spec.md §9's arena guidance.
	prev := make([]scanRun, 0, 64)
	cur := make([]scanRun, 0, 64)

	// emit appends a finished blob, checking the early-exit ceiling
	// immediately so the returned set never grows past limit+1.
	emit := func(b Blob) (overLimit bool) {
		emitted = append(emitted, b)
		return len(emitted) > limit
	}

	for row := 0; row < height; row++ {
		cur = cur[:0]
		it := 0 // cursor into prev

		for _, run := range foregroundRuns(img, row) {
			l, r := run[0], run[1]

			// Advance past previous-row runs that end before this run
			// starts: they have no descendant on this row, so emit them.
			for it < len(prev) && prev[it].r < l {
				if emit(prev[it].blob) {
					return emitted
				}
				it++
			}

			b := Blob{X: float64(l+r) / 2, Y: float64(row), S: float64(r - l + 1)}

			// Merge every previous-row run that horizontally overlaps this
			// run (4-connectivity). A prev run touched by several current
			// runs is merged only once, into the leftmost overlapper,
			// because the cursor advances past it here.
			for it < len(prev) && prev[it].l <= r {
				b = Combine(b, prev[it].blob)
				it++
			}

			cur = append(cur, scanRun{l: l, r: r, blob: b})
		}

		// Remaining previous-row runs have no descendant on this row.
		for ; it < len(prev); it++ {
			if emit(prev[it].blob) {
				return emitted
			}
		}

		prev, cur = cur, prev
	}

	// End of image: every surviving run is a finished blob.
	for _, r := range prev {
		if emit(r.blob) {
			return emitted
		}
	}
	return emitted
}

// foregroundRuns returns the [l,r] inclusive column ranges of contiguous
// foreground pixels on the given row, left to right.
func foregroundRuns(img *pixelimage.Pixel, row int) [][2]int {
	var runs [][2]int
	base := row * img.W
	inRun := false
	start := 0
	for x := 0; x < img.W; x++ {
		fg := img.Data[base+x] != 0
		switch {
		case fg && !inRun:
			inRun, start = true, x
		case !fg && inRun:
			runs = append(runs, [2]int{start, x - 1})
			inRun = false
		}
	}
	if inRun {
		runs = append(runs, [2]int{start, img.W - 1})
	}
	return runs
}
