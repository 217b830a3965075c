package mode0

import (
	"math"
	"sort"
)

// Tile is a 4x4 RGBA texel block in [0,255] per channel, raster order
// (pos = y*4+x), the input/output granularity of the whole package.
type Tile [16][4]float64

// blockState is the fully-resolved, pre-packing state of one encoded
// block: the chosen shape, each region's compressed endpoints, and the
// final (anchor-normalized) palette index per position.
type blockState struct {
	shape   int
	a, b    [3]CompressedEndpoint
	indices [16]int
}

// SearchOptions bounds the per-tile search effort: how many of the 16
// partition shapes the rough-error shortlist keeps, and how many times
// the per-region channel loop may restart. A zero field
// means "use the package default".
type SearchOptions struct {
	ShortlistSize      int
	MaxChannelRestarts int
}

func (o SearchOptions) shortlistSize() int {
	if o.ShortlistSize <= 0 {
		return NItems
	}
	return o.ShortlistSize
}

func (o SearchOptions) maxChannelRestarts() int {
	if o.MaxChannelRestarts <= 0 {
		return defaultMaxChannelRestarts
	}
	return o.MaxChannelRestarts
}

// EncodeBlock runs the Mode 0 shape-and-endpoint search over tile,
// using the package's default search budget, and
// packs the winning candidate into a 16-byte block. It never returns
// an error for a well-formed Tile; the error return exists for the
// unrecoverable ErrNoCandidate case, which the Mode 0
// search cannot actually reach (every shape always has a candidate).
func EncodeBlock(tile Tile) ([BlockBytes]byte, error) {
	return EncodeBlockOpts(tile, SearchOptions{}, nil, 0)
}

// EncodeBlockDiag is EncodeBlock with optional diagnostics: when diag
// and its Logger are non-nil, the shape search logs every shortlisted
// shape with its rough and refined error for this tile, tagged with
// diag's session id and the caller-supplied tileIndex.
func EncodeBlockDiag(tile Tile, diag *Diagnostics, tileIndex int) ([BlockBytes]byte, error) {
	return EncodeBlockOpts(tile, SearchOptions{}, diag, tileIndex)
}

// EncodeBlockOpts is EncodeBlock with a caller-supplied search budget,
// the entry point bc7.Codec.Encode uses to honor a Parameters value
// passed through codec.EncodeParams.Options.
func EncodeBlockOpts(tile Tile, opts SearchOptions, diag *Diagnostics, tileIndex int) ([BlockBytes]byte, error) {
	type roughCandidate struct {
		shape int
		err   float64
	}

	rough := make([]roughCandidate, NumShapes)
	for s := 0; s < NumShapes; s++ {
		var total float64
		for r := 0; r < NumRegions; r++ {
			samples := collectSamples(&tile, s, r)
			seedA, seedB := seedEndpoints(samples)
			pal := buildPaletteFloat(seedA, seedB)
			_, err := assignAll(samples, pal)
			total += err
		}
		rough[s] = roughCandidate{s, total}
	}
	sort.Slice(rough, func(i, j int) bool { return rough[i].err < rough[j].err })
	shortlist := rough
	if n := opts.shortlistSize(); len(shortlist) > n {
		shortlist = shortlist[:n]
	}

	var best blockState
	bestErr := math.Inf(1)
	haveBest := false

	for _, cand := range shortlist {
		state, total := encodeShape(&tile, cand.shape, opts.maxChannelRestarts())
		diag.logShape(tileIndex, cand.shape, cand.err, total)
		if !haveBest || total < bestErr {
			best, bestErr, haveBest = state, total, true
		}
		if bestErr == 0 {
			break
		}
	}
	if !haveBest {
		return [BlockBytes]byte{}, ErrNoCandidate
	}
	return pack(best), nil
}

// encodeShape runs the per-shape optimization for a single shortlisted
// shape: quantize+assign, record orig_err, normalize anchors, optimize,
// re-assign+record opt_err, normalize anchors again, and keep whichever
// of the two (by total error) is better.
func encodeShape(tile *Tile, shape int, maxRestarts int) (blockState, float64) {
	var samplesByRegion [3][]sample
	var aOrig, bOrig [3]CompressedEndpoint
	var idxOrig [3][]int
	var origErr float64

	for r := 0; r < NumRegions; r++ {
		samples := collectSamples(tile, shape, r)
		samplesByRegion[r] = samples

		seedA, seedB := seedEndpoints(samples)
		qa := QuantizeEndpoint(seedA).Compress()
		qb := QuantizeEndpoint(seedB).Compress()
		pal := buildPaletteFromCompressed(qa, qb)
		indices, err := assignAll(samples, pal)

		aOrig[r], bOrig[r], idxOrig[r] = qa, qb, indices
		origErr += err
	}
	for r := 0; r < NumRegions; r++ {
		na, nb, ni := normalizeAnchor(shape, r, aOrig[r], bOrig[r], samplesByRegion[r], idxOrig[r])
		aOrig[r], bOrig[r], idxOrig[r] = na, nb, ni
	}

	var aOpt, bOpt [3]CompressedEndpoint
	var idxOpt [3][]int
	var optErr float64
	for r := 0; r < NumRegions; r++ {
		a, b, _, _ := optimizeRegion(samplesByRegion[r], aOrig[r], bOrig[r], maxRestarts)

		pal := buildPaletteFromCompressed(a, b)
		reIndices, reErr := assignAll(samplesByRegion[r], pal)

		na, nb, ni := normalizeAnchor(shape, r, a, b, samplesByRegion[r], reIndices)
		aOpt[r], bOpt[r], idxOpt[r] = na, nb, ni
		optErr += reErr
	}

	var chosenA, chosenB [3]CompressedEndpoint
	var chosenIdx [3][]int
	var chosenErr float64
	if optErr < origErr {
		chosenA, chosenB, chosenIdx, chosenErr = aOpt, bOpt, idxOpt, optErr
	} else {
		chosenA, chosenB, chosenIdx, chosenErr = aOrig, bOrig, idxOrig, origErr
	}

	var grid [16]int
	for r := 0; r < NumRegions; r++ {
		for i, s := range samplesByRegion[r] {
			grid[s.pos] = chosenIdx[r][i]
		}
	}

	return blockState{shape: shape, a: chosenA, b: chosenB, indices: grid}, chosenErr
}

// normalizeAnchor: if the region's anchor-position index
// has its high bit set, swap A<->B (lsb included) and complement every
// index in the region (idx <- 7-idx). The rule is idempotent: applying
// it again changes nothing, since a complemented anchor index is always < 4.
func normalizeAnchor(shape, region int, a, b CompressedEndpoint, samples []sample, indices []int) (CompressedEndpoint, CompressedEndpoint, []int) {
	anchorPos := AnchorOf(shape, region)
	anchorLocal := -1
	for i, s := range samples {
		if s.pos == anchorPos {
			anchorLocal = i
			break
		}
	}
	if anchorLocal == -1 {
		// Programming error: every region must contain
		// its own anchor position (shapes.go's init already asserts
		// this at package load, so this can only happen from a
		// corrupted call site).
		panic("bc7/mode0: anchor position not found in its own region")
	}
	if indices[anchorLocal] < 4 {
		return a, b, indices
	}
	complemented := make([]int, len(indices))
	for i, idx := range indices {
		complemented[i] = 7 - idx
	}
	return b, a, complemented
}

// pack serializes a resolved blockState into the 128-bit wire layout.
func pack(st blockState) [BlockBytes]byte {
	var w bitWriter
	w.write(1, 1) // mode marker
	w.write(uint32(st.shape), ShapeBits)

	for ch := 0; ch < 3; ch++ {
		for r := 0; r < NumRegions; r++ {
			w.write(st.a[r].Channel[ch], Precision)
			w.write(st.b[r].Channel[ch], Precision)
		}
	}
	for r := 0; r < NumRegions; r++ {
		w.write(st.a[r].LSB, 1)
		w.write(st.b[r].LSB, 1)
	}
	for pos := 0; pos < 16; pos++ {
		region := RegionOf(st.shape, pos)
		nbits := 3
		if pos == AnchorOf(st.shape, region) {
			nbits = 2
		}
		w.write(uint32(st.indices[pos]), nbits)
	}

	if w.bitLength() != blockBits {
		panic("bc7/mode0: pack wrote a non-128-bit block")
	}
	return w.bytes()
}

// unpack is the inverse of pack, rejecting blocks whose mode marker
// bit is not set.
func unpack(block [BlockBytes]byte) (blockState, error) {
	r := newBitReader(block)
	if r.read(1) != 1 {
		return blockState{}, ErrWrongMode
	}
	shape := int(r.read(ShapeBits))

	var a, b [3]CompressedEndpoint
	for ch := 0; ch < 3; ch++ {
		for reg := 0; reg < NumRegions; reg++ {
			a[reg].Channel[ch] = r.read(Precision)
			b[reg].Channel[ch] = r.read(Precision)
		}
	}
	for reg := 0; reg < NumRegions; reg++ {
		a[reg].LSB = r.read(1)
		b[reg].LSB = r.read(1)
	}

	var grid [16]int
	for pos := 0; pos < 16; pos++ {
		region := RegionOf(shape, pos)
		nbits := 3
		if pos == AnchorOf(shape, region) {
			nbits = 2
		}
		grid[pos] = int(r.read(nbits))
	}

	if r.bitLength() != blockBits {
		panic("bc7/mode0: unpack read a non-128-bit block")
	}
	return blockState{shape: shape, a: a, b: b, indices: grid}, nil
}

// DecodeBlock reverses EncodeBlock: it unpacks shape, endpoints and
// indices, then reconstructs pixels as
// output[pos] = palette[region(shape,pos)][index[pos]].
func DecodeBlock(block [BlockBytes]byte) (Tile, error) {
	st, err := unpack(block)
	if err != nil {
		return Tile{}, err
	}
	var palettes [3]rgbPalette
	for r := 0; r < NumRegions; r++ {
		palettes[r] = buildPaletteFromCompressed(st.a[r], st.b[r])
	}
	var tile Tile
	for pos := 0; pos < 16; pos++ {
		region := RegionOf(st.shape, pos)
		tile[pos] = palettes[region][st.indices[pos]]
	}
	return tile, nil
}
