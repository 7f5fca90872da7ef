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

package geom

import (
	"errors"
	"fmt"
	"math"
)

// Transform2D is a 2x3 affine: [x';y'] = [[A,B,C],[D,E,F]] * [x;y;1].
type Transform2D struct {
	A, B, C float64
	D, E, F float64
}

func (t Transform2D) String() string {
	return fmt.Sprintf("x'=%.5gx %+.5gy %+.3g, y'=%.5gx %+.5gy %+.3g",
		t.A, t.B, t.C, t.D, t.E, t.F)
}

// Identity is the "no transform found" fallback.
func Identity() Transform2D {
	return Transform2D{1, 0, 0, 0, 1, 0}
}

// Apply maps a point through the transform.
func (t Transform2D) Apply(p Point2D) Point2D {
	return Point2D{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// ApplySlice maps many points in a batch, as the Transform Scorer does.
func (t Transform2D) ApplySlice(ps []Point2D) []Point2D {
	out := make([]Point2D, len(ps))
	for i, p := range ps {
		out[i] = t.Apply(p)
	}
	return out
}

// Invert returns the inverse transform, or an error if T is singular.
func (t Transform2D) Invert() (Transform2D, error) {
	det := t.A*t.E - t.B*t.D
	if det < 1e-8 && -det < 1e-8 {
		return Transform2D{}, errors.New("geom: transform has no inverse")
	}
	return Transform2D{
		A: t.E / det,
		B: -t.B / det,
		C: (t.B*t.F - t.C*t.E) / det,
		D: -t.D / det,
		E: t.A / det,
		F: (t.C*t.D - t.A*t.F) / det,
	}, nil
}

// ctrl returns u rotated 90 degrees counter-clockwise about u by the vector
// u->v: ctrl(u,v) = (u.x - (v.y-u.y), u.y + (v.x-u.x)). This is the third
// control point that turns a single point pair (a line) into three
// non-collinear pairs, so an affine is uniquely determined.
func ctrl(u, v Point2D) Point2D {
	return Point2D{
		X: u.X - (v.Y - u.Y),
		Y: u.Y + (v.X - u.X),
	}
}

// FromLinePair solves the affine that maps line (a0,a1) onto line (b0,b1),
// using the endpoints plus their ctrl() construction as the third
// non-collinear point pair.
func FromLinePair(a0, a1, b0, b1 Point2D) (Transform2D, error) {
	return fromThreePairs(a0, a1, ctrl(a0, a1), b0, b1, ctrl(b0, b1))
}

// fromThreePairs solves the six affine unknowns from three point-pair
// correspondences via Cramer's rule on the two independent 2x2 systems in
// (dx2,dy2)/(dx3,dy3) relative to p1, q1. Unlike solving column-by-column
// against a single axis difference, this stays well-conditioned regardless
// of whether the point triple happens to be axis-aligned.
func fromThreePairs(p1, p2, p3, q1, q2, q3 Point2D) (Transform2D, error) {
	dx2, dy2 := p2.X-p1.X, p2.Y-p1.Y
	dx3, dy3 := p3.X-p1.X, p3.Y-p1.Y
	den := dx2*dy3 - dx3*dy2
	if den < 1e-9 && -den < 1e-9 {
		return Transform2D{}, errors.New("geom: degenerate (collinear) point triple")
	}

	ex2, ex3 := q2.X-q1.X, q3.X-q1.X
	a := (ex2*dy3 - ex3*dy2) / den
	b := (dx2*ex3 - dx3*ex2) / den
	c := q1.X - a*p1.X - b*p1.Y

	ey2, ey3 := q2.Y-q1.Y, q3.Y-q1.Y
	d := (ey2*dy3 - ey3*dy2) / den
	e := (dx2*ey3 - dx3*ey2) / den
	f := q1.Y - d*p1.X - e*p1.Y

	if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(d) || math.IsNaN(e) {
		return Transform2D{}, errors.New("geom: degenerate point triple")
	}
	return Transform2D{A: a, B: b, C: c, D: d, E: e, F: f}, nil
}
