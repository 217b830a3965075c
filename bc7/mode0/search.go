package mode0

import "math"

// NItems is the shape shortlist size kept after the rough-error ranking pass.
const NItems = 4

// sample is one tile pixel's contribution to a region during search:
// its RGBA value plus its position in the 4x4 tile (needed so the
// caller can scatter computed indices back into the tile's index grid).
type sample struct {
	pos  int
	rgba [4]float64
}

// collectSamples gathers, in raster order, every tile position
// assigned to region under shape.
func collectSamples(tile *Tile, shape, region int) []sample {
	var out []sample
	for pos := 0; pos < 16; pos++ {
		if RegionOf(shape, pos) == region {
			out = append(out, sample{pos: pos, rgba: tile[pos]})
		}
	}
	return out
}

// distortion is the fixed sum-of-squared-differences metric across all
// four channels including alpha.
func distortion(pal, rgba [4]float64) float64 {
	var sum float64
	for ch := 0; ch < 4; ch++ {
		d := pal[ch] - rgba[ch]
		sum += d * d
	}
	return sum
}

// buildPaletteFloat is buildPalette without rounding to 8-bit color
// values, used only for the rough (pre-quantization) shape ranking:
// computing the rough seed and its unquantized error ahead of
// quantization.
func buildPaletteFloat(a, b [3]float64) rgbPalette {
	var pal rgbPalette
	for i := 0; i < NumIndices; i++ {
		w := float64(i)
		for ch := 0; ch < 3; ch++ {
			pal[i][ch] = (a[ch]*(colorDenom-w) + b[ch]*w + colorBias) / colorDenom
		}
		pal[i][3] = 255
	}
	return pal
}

// bestIndex finds, for one sample, the palette entry minimizing
// distortion, using an early-exit once errors start increasing.
func bestIndex(pal rgbPalette, rgba [4]float64) (idx int, err float64) {
	bestErr := math.Inf(1)
	bestIdx := 0
	prevErr := math.Inf(1)
	for i := 0; i < NumIndices; i++ {
		e := distortion(pal[i], rgba)
		if e < bestErr {
			bestErr = e
			bestIdx = i
		}
		if i > 0 && e > prevErr {
			break
		}
		if bestErr == 0 {
			break
		}
		prevErr = e
	}
	return bestIdx, bestErr
}

// assignAll runs index assignment over every sample in a
// region, returning the chosen index per sample (parallel to samples)
// and the total error.
func assignAll(samples []sample, pal rgbPalette) ([]int, float64) {
	indices := make([]int, len(samples))
	var total float64
	for i, s := range samples {
		idx, err := bestIndex(pal, s.rgba)
		indices[i] = idx
		total += err
	}
	return indices, total
}

// buildPaletteFromCompressed unquantizes a region's compressed
// endpoints to 8-bit and builds the interpolated palette.
func buildPaletteFromCompressed(a, b CompressedEndpoint) rgbPalette {
	ua := a.Uncompress().Unquantized8()
	ub := b.Uncompress().Unquantized8()
	return buildPalette(ua, ub)
}

// regionError evaluates the total index-assignment error for compressed
// endpoints a, b against samples.
func regionError(samples []sample, a, b CompressedEndpoint) (float64, []int) {
	pal := buildPaletteFromCompressed(a, b)
	indices, total := assignAll(samples, pal)
	return total, indices
}

func channelValue(e CompressedEndpoint, ch int) uint32 { return e.Channel[ch] }

func withChannel(e CompressedEndpoint, ch int, v uint32) CompressedEndpoint {
	e.Channel[ch] = v
	return e
}

// perturbOne is a logarithmic line search: a single
// channel of a single endpoint (which==0: A, which==1: B) is walked
// with a halving step starting at 2^(Precision-1), trying ±step at
// each step and committing to whichever direction improves total
// error, continuing from the new point at the same step before
// halving. Returns the (possibly unchanged) endpoint pair and its
// error.
func perturbOne(samples []sample, a, b CompressedEndpoint, which, ch int, baselineErr float64) (CompressedEndpoint, CompressedEndpoint, float64) {
	curErr := baselineErr
	step := 1 << (Precision - 1)
	for step > 0 {
		cur := channelValue(pick(a, b, which), ch)
		type cand struct {
			val uint32
			err float64
		}
		var tried []cand
		for _, delta := range [2]int{step, -step} {
			nv := int(cur) + delta
			if nv < 0 || nv >= (1<<Precision) {
				continue
			}
			na, nb := a, b
			if which == 0 {
				na = withChannel(a, ch, uint32(nv))
			} else {
				nb = withChannel(b, ch, uint32(nv))
			}
			e, _ := regionError(samples, na, nb)
			tried = append(tried, cand{uint32(nv), e})
		}
		bestI := -1
		for i, c := range tried {
			if c.err < curErr && (bestI == -1 || c.err < tried[bestI].err) {
				bestI = i
			}
		}
		if bestI >= 0 {
			if which == 0 {
				a = withChannel(a, ch, tried[bestI].val)
			} else {
				b = withChannel(b, ch, tried[bestI].val)
			}
			curErr = tried[bestI].err
		} else {
			step /= 2
		}
	}
	return a, b, curErr
}

func pick(a, b CompressedEndpoint, which int) CompressedEndpoint {
	if which == 0 {
		return a
	}
	return b
}

// windowHalfWidth maps a region-normalized error to a grid half-width
// per a fixed error-to-window-size table, before the minimum-3 floor is applied.
func windowHalfWidth(scaledErr float64) int {
	switch {
	case scaledErr > 5000:
		return 1 << (Precision - 1)
	case scaledErr > 1000:
		return 1 << (Precision - 2)
	case scaledErr > 200:
		return 1 << (Precision - 3)
	case scaledErr > 40:
		return 1 << (Precision - 4)
	default:
		return 0
	}
}

// exhaustiveRefine is the bounded 2-D grid search over
// a single channel of both endpoints at once. The window is centered
// on the channel's current values, sized per windowHalfWidth and
// floored at half-width 3. The A-vs-B ordering present at entry for
// this channel is preserved throughout the search using a single
// symmetric `<=` bound on both sides (see DESIGN.md for why the bound
// is symmetric rather than asymmetric).
func exhaustiveRefine(samples []sample, a, b CompressedEndpoint, ch int, baselineErr float64, regionSize int) (CompressedEndpoint, CompressedEndpoint, float64) {
	scale := baselineErr / (float64(regionSize) / 16.0)
	half := windowHalfWidth(scale)
	if half < 3 {
		half = 3
	}
	aCur := int(channelValue(a, ch))
	bCur := int(channelValue(b, ch))
	ascending := aCur <= bCur

	bestA, bestB, bestErr := a, b, baselineErr
	for av := aCur - half; av <= aCur+half; av++ {
		if av < 0 || av >= (1<<Precision) {
			continue
		}
		for bv := bCur - half; bv <= bCur+half; bv++ {
			if bv < 0 || bv >= (1<<Precision) {
				continue
			}
			if ascending && av > bv {
				continue
			}
			if !ascending && av < bv {
				continue
			}
			na := withChannel(a, ch, uint32(av))
			nb := withChannel(b, ch, uint32(bv))
			e, _ := regionError(samples, na, nb)
			if e < bestErr {
				bestErr = e
				bestA, bestB = na, nb
			}
		}
	}
	return bestA, bestB, bestErr
}

// defaultMaxChannelRestarts bounds how many times localSearchPass may
// restart after an index-changing refinement (exhaustivePass restarts at
// most once, whatever this bound). Left
// unbounded this could in principle loop forever if index assignment
// oscillated between two channel orderings. A small bound preserves
// the intent (undo compounding drift) without risking non-termination;
// see DESIGN.md. Callers may override it via SearchOptions.MaxChannelRestarts.
const defaultMaxChannelRestarts = 3

// optimizeRegion drives the per-region optimization: a full local-search
// pass over channels R,G,B (step 2, with its own index-change restart
// budget), followed by a full bounded-exhaustive pass over channels
// R,G,B (step 3, with its own single-use restart budget), evaluated for
// each of the four LSB configurations, keeping the best of the four.
func optimizeRegion(samples []sample, initA, initB CompressedEndpoint, maxRestarts int) (CompressedEndpoint, CompressedEndpoint, []int, float64) {
	type result struct {
		a, b    CompressedEndpoint
		indices []int
		err     float64
	}
	var best result
	haveBest := false

	for aLSB := uint32(0); aLSB < 2; aLSB++ {
		for bLSB := uint32(0); bLSB < 2; bLSB++ {
			a := initA.WithLSB(aLSB)
			b := initB.WithLSB(bLSB)
			err, indices := regionError(samples, a, b)
			a, b, indices, err = localSearchPass(samples, a, b, err, indices, maxRestarts)
			a, b, indices, err = exhaustivePass(samples, a, b, err, indices)
			if !haveBest || err < best.err {
				best = result{a, b, indices, err}
				haveBest = true
			}
		}
	}
	return best.a, best.b, best.indices, best.err
}

// localSearchPass runs one full pass of perturbOne local search over
// channels R,G,B to completion, restarting the whole pass (up to
// maxRestarts times) whenever a channel's refinement changes the index
// assignment. No exhaustive work begins until this pass has converged.
func localSearchPass(samples []sample, a, b CompressedEndpoint, err float64, indices []int, maxRestarts int) (CompressedEndpoint, CompressedEndpoint, []int, float64) {
	restarts := 0
restart:
	for ch := 0; ch < 3; ch++ {
		aAfterA, bAfterA, errAfterA := perturbOne(samples, a, b, 0, ch, err)
		aAfterB, bAfterB, errAfterB := perturbOne(samples, a, b, 1, ch, err)

		curA, curB, curErr := a, b, err
		if errAfterA < err && errAfterA <= errAfterB {
			curA, curB, curErr = aAfterA, bAfterA, errAfterA
		} else if errAfterB < err {
			curA, curB, curErr = aAfterB, bAfterB, errAfterB
		} else {
			// neither direction improved on this channel at all.
			continue
		}
		_, beforeIndices := regionError(samples, a, b)

		for {
			improved := false
			nA, nB, nErr := perturbOne(samples, curA, curB, 0, ch, curErr)
			if nErr < curErr {
				curA, curB, curErr = nA, nB, nErr
				improved = true
			}
			nA2, nB2, nErr2 := perturbOne(samples, curA, curB, 1, ch, curErr)
			if nErr2 < curErr {
				curA, curB, curErr = nA2, nB2, nErr2
				improved = true
			}
			if !improved {
				break
			}
		}

		_, afterIndices := regionError(samples, curA, curB)
		a, b, err, indices = curA, curB, curErr, afterIndices

		if !sameIndices(afterIndices, beforeIndices) && restarts < maxRestarts {
			restarts++
			goto restart
		}
	}
	return a, b, indices, err
}

// exhaustivePass runs a full, separate pass
// of the bounded exhaustive grid search over channels R,G,B, run only
// after localSearchPass has converged, with its own single-use
// index-change restart budget.
func exhaustivePass(samples []sample, a, b CompressedEndpoint, err float64, indices []int) (CompressedEndpoint, CompressedEndpoint, []int, float64) {
	restarted := false
restart:
	for ch := 0; ch < 3; ch++ {
		_, beforeIndices := regionError(samples, a, b)
		nErr, afterIndices := exhaustiveRefineChannel(samples, &a, &b, ch, err)
		err, indices = nErr, afterIndices

		if !sameIndices(afterIndices, beforeIndices) && !restarted {
			restarted = true
			goto restart
		}
	}
	return a, b, indices, err
}

func exhaustiveRefineChannel(samples []sample, a, b *CompressedEndpoint, ch int, err float64) (float64, []int) {
	na, nb, nErr := exhaustiveRefine(samples, *a, *b, ch, err, len(samples))
	*a, *b = na, nb
	_, indices := regionError(samples, na, nb)
	return nErr, indices
}

func sameIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
