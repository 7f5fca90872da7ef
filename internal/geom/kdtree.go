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

import "sort"

// Index is a pointerless 2-D k-d tree over a fixed set of points, answering
// batched 1-NN queries. It is the NN Index collaborator: built once per
// reference frame and queried repeatedly during matching.
type Index []Point2D

// NewIndex builds an index over pts. It copies the input, since build
// reorders the slice in place while partitioning it into tree order.
func NewIndex(pts []Point2D) Index {
	idx := make(Index, len(pts))
	copy(idx, pts)
	idx.build()
	return idx
}

// build partitions the tree in place, pivoting on X at even depths.
func (idx Index) build() {
	sort.Slice(idx, func(i, j int) bool { return idx[i].X < idx[j].X })
	l := len(idx)
	if l > 1 {
		idx[:l/2].buildY()
		if l > 2 {
			idx[l/2+1:].buildY()
		}
	}
}

// buildY is the odd-depth counterpart of build, pivoting on Y.
func (idx Index) buildY() {
	sort.Slice(idx, func(i, j int) bool { return idx[i].Y < idx[j].Y })
	l := len(idx)
	if l > 1 {
		idx[:l/2].build()
		if l > 2 {
			idx[l/2+1:].build()
		}
	}
}

// Nearest returns the closest indexed point to p and its squared distance.
// Empty index is a programmer error and panics on the out-of-range index
// access below, same as the teacher's original.
func (idx Index) Nearest(p Point2D) (closest Point2D, sqDist float64) {
	l := len(idx)
	mid := idx[l/2]
	closest, sqDist = mid, Dist2Squared(p, mid)
	if p.X <= mid.X {
		if l > 1 {
			if pt, d := idx[:l/2].nearestY(p); d < sqDist {
				closest, sqDist = pt, d
			}
			if l > 2 {
				dp := p.X - mid.X
				if dp*dp <= sqDist {
					if pt, d := idx[l/2+1:].nearestY(p); d < sqDist {
						closest, sqDist = pt, d
					}
				}
			}
		}
	} else {
		if l > 2 {
			if pt, d := idx[l/2+1:].nearestY(p); d < sqDist {
				closest, sqDist = pt, d
			}
		}
		if l > 1 {
			dp := p.X - mid.X
			if dp*dp <= sqDist {
				if pt, d := idx[:l/2].nearestY(p); d < sqDist {
					closest, sqDist = pt, d
				}
			}
		}
	}
	return closest, sqDist
}

func (idx Index) nearestY(p Point2D) (closest Point2D, sqDist float64) {
	l := len(idx)
	mid := idx[l/2]
	closest, sqDist = mid, Dist2Squared(p, mid)
	if p.Y <= mid.Y {
		if l > 1 {
			if pt, d := idx[:l/2].Nearest(p); d < sqDist {
				closest, sqDist = pt, d
			}
			if l > 2 {
				dp := p.Y - mid.Y
				if dp*dp <= sqDist {
					if pt, d := idx[l/2+1:].Nearest(p); d < sqDist {
						closest, sqDist = pt, d
					}
				}
			}
		}
	} else {
		if l > 2 {
			if pt, d := idx[l/2+1:].Nearest(p); d < sqDist {
				closest, sqDist = pt, d
			}
		}
		if l > 1 {
			dp := p.Y - mid.Y
			if dp*dp <= sqDist {
				if pt, d := idx[:l/2].Nearest(p); d < sqDist {
					closest, sqDist = pt, d
				}
			}
		}
	}
	return closest, sqDist
}

// QueryBatch answers a 1-NN query for every point in ps, as the Transform
// Scorer needs: per-query squared distance to the nearest indexed point.
func (idx Index) QueryBatch(ps []Point2D) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		_, d := idx.Nearest(p)
		out[i] = d
	}
	return out
}
