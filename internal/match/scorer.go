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

// Package match holds the Transform Scorer and Matcher: together they pick
// the affine transform that best aligns a source star set to a reference
// star set already held in an NN index.
package match

import (
	"math"

	"github.com/ziman/stacker/internal/geom"
)

// Score evaluates a candidate transform T against source points xs and a
// reference NN index. Returns 0 ("rejected") if fewer than
// percentStarsRequired percent of xs find a close reference neighbor;
// otherwise returns starDistCutoff minus the mean residual of the matches,
// so higher is better and the maximum is starDistCutoff itself.
func Score(T geom.Transform2D, xs []geom.Point2D, index geom.Index, starDistCutoff float64, percentStarsRequired int) float64 {
	m, meanResidual := MatchStats(T, xs, index, starDistCutoff)
	if m == 0 {
		return 0
	}
	required := percentStarsRequired * len(xs) / 100
	if m < required {
		return 0
	}
	return starDistCutoff - meanResidual
}

// MatchStats reports how many of xs land within starDistCutoff of a
// reference neighbor under T, and their mean residual distance. Used both
// as Score's internal accept/reject count and, after a transform has been
// chosen, for post-match diagnostics; returns (0, 0) rather than dividing
// by zero when nothing matches.
func MatchStats(T geom.Transform2D, xs []geom.Point2D, index geom.Index, starDistCutoff float64) (matched int, meanResidual float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	q := T.ApplySlice(xs)
	sqDists := batchedSquaredDistances(q, index)

	m := 0
	sum := 0.0
	for _, sq := range sqDists {
		d := math.Sqrt(sq)
		if d < starDistCutoff {
			m++
			sum += d
		}
	}
	if m == 0 {
		return 0, 0
	}
	return m, sum / float64(m)
}

// batchedSquaredDistances is split out so the AVX2-detection dispatch in
// dist.go can own the loop; the plain index.QueryBatch call is itself
// already batched at the API level.
func batchedSquaredDistances(q []geom.Point2D, index geom.Index) []float64 {
	return queryBatchDispatch(q, index)
}
