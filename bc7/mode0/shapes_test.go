package mode0

import "testing"

func TestShapesPositionZeroIsRegionZero(t *testing.T) {
	for s := 0; s < NumShapes; s++ {
		if RegionOf(s, 0) != 0 {
			t.Fatalf("shape %d: position 0 is region %d, want 0", s, RegionOf(s, 0))
		}
	}
}

func TestShapesAnchorsDistinctAndInRegion(t *testing.T) {
	for s := 0; s < NumShapes; s++ {
		a0 := AnchorOf(s, 0)
		a1 := AnchorOf(s, 1)
		a2 := AnchorOf(s, 2)
		if a0 != 0 {
			t.Fatalf("shape %d: region 0 anchor = %d, want 0", s, a0)
		}
		if a1 == a2 || a1 == 0 || a2 == 0 {
			t.Fatalf("shape %d: anchors not distinct/non-zero: a1=%d a2=%d", s, a1, a2)
		}
		if RegionOf(s, a1) != 1 {
			t.Fatalf("shape %d: anchor a1=%d is not in region 1", s, a1)
		}
		if RegionOf(s, a2) != 2 {
			t.Fatalf("shape %d: anchor a2=%d is not in region 2", s, a2)
		}
	}
}

func TestShapesAllThreeRegionsPresent(t *testing.T) {
	for s := 0; s < NumShapes; s++ {
		seen := [NumRegions]bool{}
		for pos := 0; pos < 16; pos++ {
			seen[RegionOf(s, pos)] = true
		}
		for r, ok := range seen {
			if !ok {
				t.Fatalf("shape %d: region %d has no positions", s, r)
			}
		}
	}
}
