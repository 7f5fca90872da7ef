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
	"github.com/klauspost/cpuid"

	"github.com/ziman/stacker/internal/geom"
)

// queryBatchDispatch answers the batched 1-NN query, picking a
// cache-blocked loop on AVX2-capable CPUs and a plain one-query-at-a-time
// loop elsewhere. Both call into the same k-d tree; the AVX2 path's
// advantage is processing queries in blocks of 8 to keep them resident in
// a vector register's worth of cache lines, not a SIMD kernel (the k-d
// tree's branching search does not vectorize).
func queryBatchDispatch(q []geom.Point2D, index geom.Index) []float64 {
	if cpuid.CPU.AVX2() {
		return queryBatchBlocked(q, index)
	}
	return queryBatchNaive(q, index)
}

func queryBatchNaive(q []geom.Point2D, index geom.Index) []float64 {
	out := make([]float64, len(q))
	for i, p := range q {
		_, d := index.Nearest(p)
		out[i] = d
	}
	return out
}

const blockSize = 8

func queryBatchBlocked(q []geom.Point2D, index geom.Index) []float64 {
	out := make([]float64, len(q))
	for base := 0; base < len(q); base += blockSize {
		end := base + blockSize
		if end > len(q) {
			end = len(q)
		}
		for i := base; i < end; i++ {
			_, d := index.Nearest(q[i])
			out[i] = d
		}
	}
	return out
}
