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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pbnjay/memory"

	"github.com/ziman/stacker/internal/imageio"
	"github.com/ziman/stacker/internal/logging"
	"github.com/ziman/stacker/internal/stacker"
)

var totalMiBs = memory.TotalMemory() / 1024 / 1024

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: %s [-flag value]... img0 img1 [img2 ...]

Stacks two or more grayscale astrophotographs by detecting stars and
aligning each frame to the middle input via an affine transform.

Flags:
`, os.Args[0])
		fs.PrintDefaults()
	}

	s := fs.Float64("s", 0.5, "subsample factor")
	l := fs.Float64("l", 100, "minimum line length considered for matching")
	p := fs.Int("p", 66, "percent of source stars required to match")
	t := fs.Float64("t", 0.01, "relative line length tolerance")
	d := fs.Float64("d", 10, "star distance cutoff in pixels")
	c := fs.Int("c", 20, "target star count per image")
	o := fs.String("o", "", "output path; if empty, display interactively")
	stackMode := fs.String("stackMode", "mean", "combination rule for aligned frames: mean or median")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	paths := fs.Args()
	if len(paths) < 2 {
		fmt.Fprintln(os.Stderr, "error: at least two input images are required")
		fs.Usage()
		os.Exit(1)
	}

	var mode stacker.StackMode
	switch *stackMode {
	case "mean":
		mode = stacker.StackMean
	case "median":
		mode = stacker.StackMedian
	default:
		fmt.Fprintf(os.Stderr, "error: -stackMode must be \"mean\" or \"median\", got %q\n", *stackMode)
		fs.Usage()
		os.Exit(1)
	}

	logging.Printf("%d MiB total system memory\n", totalMiBs)

	opts := stacker.Default()
	opts.Subsample = *s
	opts.MinLineLength = *l
	opts.PercentStarsRequired = *p
	opts.RelativeLengthTolerance = *t
	opts.StarDistCutoff = *d
	opts.StarCount = *c
	opts.Outfile = *o
	opts.StackMode = mode

	result, err := stacker.Stack(paths, opts)
	if err != nil {
		logging.Fatalf("error: %v\n", err)
	}

	if opts.Outfile != "" {
		if err := imageio.Write(opts.Outfile, result); err != nil {
			logging.Fatalf("error: %v\n", err)
		}
		logging.Printf("wrote %s\n", opts.Outfile)
		return
	}
	if err := imageio.Display(result); err != nil {
		logging.Fatalf("error: %v\n", err)
	}
}
