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

// Package stacker drives the full pipeline: detect stars on a reference
// frame, then align and accumulate every other frame into a running mean.
package stacker

// StackMode selects the per-pixel combination rule for aligned frames.
// Mean is the spec's required behavior; Median is a supplemental mode
// grounded on the original multi-mode stacker.
type StackMode int

const (
	StackMean StackMode = iota
	StackMedian
)

// Options is the pipeline's configuration record.
type Options struct {
	// Threshold seeds the adaptive search; -1 means "autodetect" (start
	// from 128, per the thresholder's own seeding rule).
	Threshold int

	Subsample               float64
	MinLineLength           float64
	RelativeLengthTolerance float64
	PercentStarsRequired    int
	StarDistCutoff          float64
	StarCount               int

	// Outfile is where the stacked image is written; empty means display
	// interactively instead.
	Outfile string

	// StackMode is a supplement to the spec: it defaults to StackMean.
	StackMode StackMode
}

// Default returns the CLI's documented defaults.
func Default() Options {
	return Options{
		Threshold:               -1,
		Subsample:               0.5,
		MinLineLength:           100,
		RelativeLengthTolerance: 0.01,
		PercentStarsRequired:    66,
		StarDistCutoff:          10,
		StarCount:               20,
		StackMode:               StackMean,
	}
}
