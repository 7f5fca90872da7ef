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

import "testing"

const eps = 1e-9

func approxEq(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

// S4
func TestCtrlPoint(t *testing.T) {
	got := ctrl(Point2D{0, 0}, Point2D{1, 0})
	if !approxEq(got.X, 0) || !approxEq(got.Y, 1) {
		t.Fatalf("ctrl((0,0),(1,0)) = %v, want (0,1)", got)
	}
}

// S4
func TestFromLinePairRotation(t *testing.T) {
	tr, err := FromLinePair(
		Point2D{0, 0}, Point2D{1, 0},
		Point2D{0, 0}, Point2D{0, 1},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Transform2D{A: 0, B: -1, C: 0, D: 1, E: 0, F: 0}
	if !approxEq(tr.A, want.A) || !approxEq(tr.B, want.B) || !approxEq(tr.C, want.C) ||
		!approxEq(tr.D, want.D) || !approxEq(tr.E, want.E) || !approxEq(tr.F, want.F) {
		t.Fatalf("got %v, want %v", tr, want)
	}
}

func TestApplyIdentity(t *testing.T) {
	id := Identity()
	p := Point2D{3.5, -2.25}
	got := id.Apply(p)
	if !approxEq(got.X, p.X) || !approxEq(got.Y, p.Y) {
		t.Errorf("identity changed point: %v -> %v", p, got)
	}
}

func TestApplyAndInvertRoundTrip(t *testing.T) {
	tr := Transform2D{A: 0.9, B: 0.1, C: 4, D: -0.1, E: 0.9, F: -2}
	inv, err := tr.Invert()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := Point2D{17, -5}
	q := tr.Apply(p)
	back := inv.Apply(q)
	if !approxEq(back.X, p.X) || !approxEq(back.Y, p.Y) {
		t.Errorf("round trip failed: %v -> %v -> %v", p, q, back)
	}
}

func TestFromLinePairRecoversTranslation(t *testing.T) {
	// A pure translation by (+7,-3): recovering it from any non-degenerate
	// line pair should reproduce the same offset for every point.
	dx, dy := 7.0, -3.0
	a0, a1 := Point2D{0, 0}, Point2D{10, 4}
	b0 := Point2D{a0.X + dx, a0.Y + dy}
	b1 := Point2D{a1.X + dx, a1.Y + dy}

	tr, err := FromLinePair(a0, a1, b0, b1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := Point2D{100, -40}
	got := tr.Apply(p)
	want := Point2D{p.X + dx, p.Y + dy}
	if !approxEq(got.X, want.X) || !approxEq(got.Y, want.Y) {
		t.Errorf("got %v, want %v", got, want)
	}
}
