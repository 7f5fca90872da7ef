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

// Package starfield turns detected Blobs into Stars and Lines, and
// implements the adaptive threshold search that drives the Blob Finder to
// a target star count.
package starfield

import (
	"math"
	"sort"

	"github.com/ziman/stacker/internal/blob"
	"github.com/ziman/stacker/internal/geom"
)

// Star is a Blob reinterpreted astronomically: position plus an effective
// radius derived from area assuming a disk. Total order: by R ascending,
// breaking ties by X ascending.
type Star struct {
	X, Y, R float64
}

// FromBlob maps a Blob{x,y,S} to a Star{x,y,r=sqrt(S/pi)}.
func FromBlob(b blob.Blob) Star {
	return Star{X: b.X, Y: b.Y, R: math.Sqrt(b.S / math.Pi)}
}

// FromBlobs maps a slice of Blobs to Stars, trivially, one to one.
func FromBlobs(blobs []blob.Blob) []Star {
	stars := make([]Star, len(blobs))
	for i, b := range blobs {
		stars[i] = FromBlob(b)
	}
	return stars
}

// Point converts a Star to a geom.Point2D for matching and indexing.
func (s Star) Point() geom.Point2D {
	return geom.Point2D{X: s.X, Y: s.Y}
}

// Points converts a Star slice to geom.Point2D, preserving order.
func Points(stars []Star) []geom.Point2D {
	pts := make([]geom.Point2D, len(stars))
	for i, s := range stars {
		pts[i] = s.Point()
	}
	return pts
}

// SortByR sorts stars ascending by R, ties broken by X ascending.
func SortByR(stars []Star) {
	sort.Slice(stars, func(i, j int) bool {
		if stars[i].R != stars[j].R {
			return stars[i].R < stars[j].R
		}
		return stars[i].X < stars[j].X
	})
}
