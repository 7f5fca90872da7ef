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

package starfield

import (
	"math"
	"sort"
)

// Line is an unordered pair of stars plus their Euclidean distance. Order:
// by Length ascending.
type Line struct {
	A, B   Star
	Length float64
}

func newLine(a, b Star) Line {
	return Line{A: a, B: b, Length: math.Hypot(a.X-b.X, a.Y-b.Y)}
}

// swap returns the line with endpoints exchanged. Length is unaffected, but
// the transform derived from a line depends on endpoint order, so this
// matters to the Matcher.
func (l Line) swap() Line {
	return Line{A: l.B, B: l.A, Length: l.Length}
}

// Swap is the exported form of swap, used by the Matcher in other packages.
func (l Line) Swap() Line { return l.swap() }

// EnumerateLines produces all N*(N-1)/2 unordered pairs of stars as Lines.
// ascending selects the sort order: ascending by length for the reference
// set, or descending for the source set so longer, more precise lines are
// probed first.
func EnumerateLines(stars []Star, ascending bool) []Line {
	n := len(stars)
	lines := make([]Line, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			lines = append(lines, newLine(stars[i], stars[j]))
		}
	}
	if ascending {
		sort.Slice(lines, func(i, j int) bool { return lines[i].Length < lines[j].Length })
	} else {
		sort.Slice(lines, func(i, j int) bool { return lines[i].Length > lines[j].Length })
	}
	return lines
}
