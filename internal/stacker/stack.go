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

package stacker

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ziman/stacker/internal/geom"
	"github.com/ziman/stacker/internal/imageio"
	"github.com/ziman/stacker/internal/logging"
	"github.com/ziman/stacker/internal/match"
	"github.com/ziman/stacker/internal/pixelimage"
	"github.com/ziman/stacker/internal/starfield"
)

// Stack loads every path in paths, aligns each to the middle input's
// coordinate system, and returns the running mean of the aligned frames
// (or, with StackMedian, their per-pixel median). Threshold non-convergence
// surfaces no error, and alignment and warp failures are logged and the
// frame is dropped; neither aborts the run, and an all-failed run returns
// the reference frame unchanged. A load failure of any input aborts the
// run with an error.
func Stack(paths []string, opts Options) (*pixelimage.Float, error) {
	if len(paths) < 2 {
		return nil, fmt.Errorf("stacker: need at least two images, got %d", len(paths))
	}

	refIdx := len(paths) / 2
	refPixel, err := loadAndSubsample(paths[refIdx], opts.Subsample)
	if err != nil {
		return nil, fmt.Errorf("stacker: loading reference %s: %w", paths[refIdx], err)
	}
	refFloat := pixelimage.FromPixel(refPixel)

	refNorm := refPixel.Clone()
	pixelimage.Normalize(refNorm)
	refDetect := starfield.AdaptiveThreshold(refNorm, opts.StarCount, opts.Threshold)
	logging.Printf("reference %s: %d stars at threshold %d\n", paths[refIdx], len(refDetect.Stars), refDetect.Threshold)

	refIndex := geom.NewIndex(starfield.Points(refDetect.Stars))
	yl := starfield.EnumerateLines(refDetect.Stars, true)

	matchOpts := match.Options{
		MinLineLength:           opts.MinLineLength,
		RelativeLengthTolerance: opts.RelativeLengthTolerance,
		PercentStarsRequired:    opts.PercentStarsRequired,
		StarDistCutoff:          opts.StarDistCutoff,
	}

	accepted := []*pixelimage.Float{refFloat}
	M := cloneFloat(refFloat)
	n := 1
	prevThreshold := refDetect.Threshold
	dropped := 0
	var residuals []float64

	for i, path := range paths {
		if i == refIdx {
			continue
		}

		srcPixel, err := loadAndSubsample(path, opts.Subsample)
		if err != nil {
			return nil, fmt.Errorf("stacker: loading %s: %w", path, err)
		}
		srcFloat := pixelimage.FromPixel(srcPixel)

		srcNorm := srcPixel.Clone()
		pixelimage.Normalize(srcNorm)
		detect := starfield.AdaptiveThreshold(srcNorm, opts.StarCount, prevThreshold)
		prevThreshold = detect.Threshold
		logging.Printf("%s: %d stars at threshold %d\n", path, len(detect.Stars), detect.Threshold)

		xl := starfield.EnumerateLines(detect.Stars, false)
		result := match.Match(xl, yl, refIndex, starfield.Points(detect.Stars), matchOpts)
		if !result.Ok {
			logging.Printf("%s: alignment failed, dropping frame\n", path)
			dropped++
			continue
		}
		logging.Printf("%s: matched %d stars, mean residual %.3f px\n", path, result.MatchedStars, result.MeanResidual)
		residuals = append(residuals, result.MeanResidual)

		warped, err := imageio.WarpAffine(srcFloat, result.T, refFloat.W, refFloat.H)
		if err != nil {
			logging.Printf("%s: warp failed (%v), dropping frame\n", path, err)
			dropped++
			continue
		}

		n++
		accumulateMean(M, warped, n)
		if opts.StackMode == StackMedian {
			accepted = append(accepted, warped)
		} else {
			pixelimage.PutFloat(warped)
		}
	}

	logSummary(len(paths), n, dropped, residuals)

	if opts.StackMode == StackMedian {
		return medianStack(accepted, refFloat), nil
	}
	return M, nil
}

// logSummary emits the end-of-run diagnostic line: how many of the inputs
// were stacked versus dropped, and the mean/stddev of the per-frame match
// residuals among the frames that were actually aligned.
func logSummary(total, stacked, dropped int, residuals []float64) {
	if len(residuals) == 0 {
		logging.Printf("stacked %d/%d frames (%d dropped); no residuals to summarize\n", stacked, total, dropped)
		return
	}
	mean, std := stat.MeanStdDev(residuals, nil)
	logging.Printf("stacked %d/%d frames (%d dropped); residual mean %.3f px, stddev %.3f px\n", stacked, total, dropped, mean, std)
}

func loadAndSubsample(path string, subsample float64) (*pixelimage.Pixel, error) {
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	if subsample == 1 {
		return img, nil
	}
	return imageio.Resize(img, subsample, subsample), nil
}

func cloneFloat(f *pixelimage.Float) *pixelimage.Float {
	out := pixelimage.NewFloat(f.W, f.H)
	copy(out.Data, f.Data)
	return out
}

// accumulateMean updates M in place: M := (1-1/n)*M + (1/n)*warp.
func accumulateMean(M, warp *pixelimage.Float, n int) {
	w := 1.0 / float64(n)
	for i := range M.Data {
		M.Data[i] = float32((1-w)*float64(M.Data[i]) + w*float64(warp.Data[i]))
	}
}

// medianStack is the supplemental per-pixel median combination mode,
// grounded on the original multi-mode stacker's StackMedian.
func medianStack(frames []*pixelimage.Float, ref *pixelimage.Float) *pixelimage.Float {
	out := pixelimage.NewFloat(ref.W, ref.H)
	values := make([]float32, len(frames))
	for i := range out.Data {
		for fi, f := range frames {
			values[fi] = f.Data[i]
		}
		out.Data[i] = medianOf(values)
	}
	return out
}

func medianOf(values []float32) float32 {
	sorted := make([]float32, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
