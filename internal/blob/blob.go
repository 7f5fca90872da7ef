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

// Package blob implements the scanline-incremental connected-component
// detector: it finds bright "blobs" (stars) in a thresholded binary image,
// streaming one row at a time and maintaining running area-weighted
// centroids. See spec.md §4.2.
package blob

// Blob is a maximal 4-connected set of foreground pixels, summarized by
// its area-weighted centroid (X,Y) and pixel count S. Invariant: S>0.
type Blob struct {
	X, Y, S float64
}

// Combine is the associative, commutative blob union operator ⊕.
// Both operands must have S>0; this is unreachable in practice, since
// scan runs always have positive width, but is asserted defensively.
func Combine(a, b Blob) Blob {
	if a.S <= 0 || b.S <= 0 {
		panic("blob.Combine: operand with non-positive area")
	}
	total := a.S + b.S
	return Blob{
		X: (a.S*a.X + b.S*b.X) / total,
		Y: (a.S*a.Y + b.S*b.Y) / total,
		S: total,
	}
}

// scanRun is transient bookkeeping used only by the Blob Finder: it means
// "on the previous scanline, this component had a contiguous foreground
// run occupying columns [l,r]". It lives for one scanline and is promoted
// to an emitted Blob exactly when no foreground run on the current
// scanline horizontally overlaps it.
type scanRun struct {
	l, r int
	blob Blob
}
