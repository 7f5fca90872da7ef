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
	"sort"

	"github.com/ziman/stacker/internal/geom"
	"github.com/ziman/stacker/internal/starfield"
)

// Options bundles the matcher's tunables, mirroring the fields of the
// pipeline-wide configuration record that concern line matching and
// scoring.
type Options struct {
	MinLineLength           float64
	RelativeLengthTolerance float64
	PercentStarsRequired    int
	StarDistCutoff          float64
}

// Result is the outcome of Match: the chosen transform and whether it was
// accepted (Ok is false iff the best score found was 0), plus diagnostics
// on the winning transform's agreement with the reference star set.
type Result struct {
	T  geom.Transform2D
	Ok bool

	// MatchedStars and MeanResidual describe T's agreement with xs after
	// polishing; both are zero when Ok is false.
	MatchedStars int
	MeanResidual float64
}

// Match chooses the affine maximizing Score over candidate transforms
// built from length-matched line pairs between xl (source lines, sorted
// descending by length) and yl (reference lines, sorted ascending), then
// polishes the winner with a local residual refinement.
//
// refIndex must already be built over the reference star positions; refIndex
// query point order need not correspond to yl in any way.
func Match(xl, yl []starfield.Line, refIndex geom.Index, xs []geom.Point2D, opts Options) Result {
	best := geom.Identity()
	bestScore := 0.0

	ylLengths := make([]float64, len(yl))
	for i, l := range yl {
		ylLengths[i] = l.Length
	}

	for _, xline := range xl {
		if xline.Length < opts.MinLineLength {
			break // xl is sorted descending; only shorter lines remain
		}

		tol := xline.Length * opts.RelativeLengthTolerance
		lo := sort.SearchFloat64s(ylLengths, xline.Length-tol)
		hi := sort.SearchFloat64s(ylLengths, xline.Length+tol)

		for _, yline := range yl[lo:hi] {
			for _, cand := range []starfield.Line{yline, yline.Swap()} {
				T, err := geom.FromLinePair(
					xline.A.Point(), xline.B.Point(),
					cand.A.Point(), cand.B.Point(),
				)
				if err != nil {
					continue
				}
				score := Score(T, xs, refIndex, opts.StarDistCutoff, opts.PercentStarsRequired)
				if score > bestScore {
					bestScore = score
					best = T
				}
			}
		}
	}

	if bestScore == 0 {
		return Result{T: geom.Identity(), Ok: false}
	}
	polished := Polish(best, xs, refIndex, opts.StarDistCutoff)
	matched, meanResidual := MatchStats(polished, xs, refIndex, opts.StarDistCutoff)
	return Result{T: polished, Ok: true, MatchedStars: matched, MeanResidual: meanResidual}
}
