package mode0

import "testing"

func flatTile(r, g, b float64) Tile {
	var t Tile
	for i := range t {
		t[i] = [4]float64{r, g, b, 255}
	}
	return t
}

func TestBestIndexExactMatchZeroError(t *testing.T) {
	pal := buildPalette([3]uint8{10, 20, 30}, [3]uint8{200, 180, 160})
	idx, err := bestIndex(pal, pal[3])
	if idx != 3 {
		t.Fatalf("bestIndex = %d, want 3", idx)
	}
	if err != 0 {
		t.Fatalf("bestIndex err = %v, want 0", err)
	}
}

func TestAssignAllSolidRegionZeroError(t *testing.T) {
	// 49, 66, 82 are the exact 8-bit expansions of the 5-bit levels
	// 6, 8, 10, which share a low bit of 0, so A=B reproduces them.
	tile := flatTile(49, 66, 82)
	samples := collectSamples(&tile, 0, 0)
	qa := QuantizeEndpoint([3]float64{49, 66, 82}).Compress()
	pal := buildPaletteFromCompressed(qa, qa)
	_, total := assignAll(samples, pal)
	if total != 0 {
		t.Fatalf("solid-color region total error = %v, want 0", total)
	}
}

func TestSeedEndpointsDegenerateZeroVariance(t *testing.T) {
	tile := flatTile(100, 110, 120)
	samples := collectSamples(&tile, 0, 0)
	a, b := seedEndpoints(samples)
	if a != b {
		t.Fatalf("single-region (solid) seed endpoints differ: a=%v b=%v", a, b)
	}
	if a[0] != 100 || a[1] != 110 || a[2] != 120 {
		t.Fatalf("seed endpoint = %v, want (100,110,120)", a)
	}
}

func TestRegionErrorDecreasesOrEqualAfterOptimize(t *testing.T) {
	tile := Tile{}
	for i := range tile {
		tile[i] = [4]float64{float64(i * 16 % 256), float64(i * 8 % 256), float64(i * 4 % 256), 255}
	}
	samples := collectSamples(&tile, 0, 0)
	seedA, seedB := seedEndpoints(samples)
	qa := QuantizeEndpoint(seedA).Compress()
	qb := QuantizeEndpoint(seedB).Compress()
	before, _ := regionError(samples, qa, qb)

	a, b, _, after := optimizeRegion(samples, qa, qb, defaultMaxChannelRestarts)
	if after > before {
		t.Fatalf("optimizeRegion increased error: before=%v after=%v", before, after)
	}
	_ = a
	_ = b
}

func TestPerturbOneNeverWorsens(t *testing.T) {
	tile := Tile{}
	for i := range tile {
		tile[i] = [4]float64{float64(i * 17 % 256), float64(i * 23 % 256), float64(i * 31 % 256), 255}
	}
	samples := collectSamples(&tile, 0, 0)
	seedA, seedB := seedEndpoints(samples)
	qa := QuantizeEndpoint(seedA).Compress()
	qb := QuantizeEndpoint(seedB).Compress()
	baseline, _ := regionError(samples, qa, qb)

	_, _, after := perturbOne(samples, qa, qb, 0, 0, baseline)
	if after > baseline {
		t.Fatalf("perturbOne increased error: baseline=%v after=%v", baseline, after)
	}
}

func TestWindowHalfWidthTable(t *testing.T) {
	cases := []struct {
		err  float64
		want int
	}{
		{6000, 8},
		{2000, 4},
		{500, 2},
		{100, 1},
		{10, 0},
	}
	for _, c := range cases {
		if got := windowHalfWidth(c.err); got != c.want {
			t.Fatalf("windowHalfWidth(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
