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

// Package geom holds the shared 2-D geometry used by star matching: points,
// the affine transform model, and a nearest-neighbor index over reference
// star positions.
package geom

import "math"

// Point2D is a 2-D point with float64 coordinates.
type Point2D struct {
	X, Y float64
}

// Dist2Squared returns the squared Euclidean distance between a and b.
func Dist2Squared(a, b Point2D) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

// Dist2 returns the Euclidean distance between a and b.
func Dist2(a, b Point2D) float64 {
	return math.Sqrt(Dist2Squared(a, b))
}
