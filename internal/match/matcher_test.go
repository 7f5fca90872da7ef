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

package match

import (
	"math"
	"testing"

	"github.com/ziman/stacker/internal/geom"
	"github.com/ziman/stacker/internal/starfield"
)

func applyKnown(p geom.Point2D, angleDeg, tx, ty float64) geom.Point2D {
	a := angleDeg * math.Pi / 180
	cos, sin := math.Cos(a), math.Sin(a)
	return geom.Point2D{
		X: cos*p.X - sin*p.Y + tx,
		Y: sin*p.X + cos*p.Y + ty,
	}
}

// Invariant 7, scenario-S6-style: the matcher recovers a known affine.
func TestMatchRecoversSyntheticTransform(t *testing.T) {
	xsPts := []geom.Point2D{
		{10, 10}, {200, 40}, {80, 220}, {300, 260}, {150, 120}, {260, 90}, {40, 180},
	}
	xs := make([]starfield.Star, len(xsPts))
	for i, p := range xsPts {
		xs[i] = starfield.Star{X: p.X, Y: p.Y, R: 2}
	}

	const angle, tx, ty = 12.0, 7.0, -3.0
	ys := make([]starfield.Star, len(xs))
	for i, s := range xs {
		q := applyKnown(geom.Point2D{X: s.X, Y: s.Y}, angle, tx, ty)
		ys[i] = starfield.Star{X: q.X, Y: q.Y, R: 2}
	}

	xl := starfield.EnumerateLines(xs, false)
	yl := starfield.EnumerateLines(ys, true)
	refIndex := geom.NewIndex(starfield.Points(ys))

	opts := Options{
		MinLineLength:           20,
		RelativeLengthTolerance: 0.02,
		PercentStarsRequired:    60,
		StarDistCutoff:          10,
	}

	result := Match(xl, yl, refIndex, starfield.Points(xs), opts)
	if !result.Ok {
		t.Fatalf("matcher failed to find a transform")
	}

	maxResidual := 0.0
	for _, s := range xsPts {
		got := result.T.Apply(s)
		want := applyKnown(s, angle, tx, ty)
		d := geom.Dist2(got, want)
		if d > maxResidual {
			maxResidual = d
		}
	}
	if maxResidual >= opts.StarDistCutoff {
		t.Errorf("max residual %v exceeds starDistCutoff %v", maxResidual, opts.StarDistCutoff)
	}
}

func TestMatchFailsWithNoCorrespondence(t *testing.T) {
	xs := []starfield.Star{{X: 0, Y: 0, R: 1}, {X: 50, Y: 0, R: 1}, {X: 0, Y: 50, R: 1}}
	ys := []starfield.Star{{X: 1000, Y: 1000, R: 1}, {X: 1100, Y: 1000, R: 1}, {X: 1000, Y: 1100, R: 1}}

	xl := starfield.EnumerateLines(xs, false)
	yl := starfield.EnumerateLines(ys, true)
	refIndex := geom.NewIndex(starfield.Points(ys))

	opts := Options{
		MinLineLength:           10,
		RelativeLengthTolerance: 0.001,
		PercentStarsRequired:    100,
		StarDistCutoff:          2,
	}
	result := Match(xl, yl, refIndex, starfield.Points(xs), opts)
	if result.Ok {
		t.Errorf("expected matcher failure for unrelated star fields")
	}
}
