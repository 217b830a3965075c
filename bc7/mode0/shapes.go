package mode0

// NumShapes is the number of 4-bit-indexable 3-region partitions Mode 0
// can select between.
const NumShapes = 16

// NumRegions is the fixed subset count for Mode 0 (always 3).
const NumRegions = 3

// NumIndices is the palette size per region (3-bit index, 8 entries).
const NumIndices = 8

// ShapeBits is the width of the shape_index field in the packed block.
const ShapeBits = 4

// Shape is a closed-lookup 3-region partition of the 16 tile positions,
// plus the anchor position for regions 1 and 2. Region 0's anchor is
// always position 0 and is not stored per-shape.
//
// This is not claimed to reproduce any particular GPU vendor's BC7
// hardware partition table bit-for-bit (this package's Non-goals explicitly
// disclaim GPU decoder parity beyond the §4.2 formula); it is a
// self-consistent set of 16 three-region masks satisfying the anchor
// core invariants: region 0 always owns position 0, each
// region's anchor lies inside that region, and the three anchors are
// pairwise distinct.
type Shape struct {
	// Region maps tile position (pos = y*4+x) to region id in {0,1,2}.
	Region [16]uint8
	// Anchor holds the anchor position for region 1 at index 0 and
	// region 2 at index 1. Region 0's anchor is always position 0.
	Anchor [2]uint8
}

// partitionMasks is the fixed table of region assignments, one row per
// shape index. Position 0 is always region 0 (required by the anchor
// invariant), and every shape uses all three regions.
var partitionMasks = [NumShapes][16]uint8{
	{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 2, 2, 0, 0, 2, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 1, 1, 2, 2},
	{0, 0, 1, 2, 0, 0, 1, 2, 0, 0, 1, 2, 0, 0, 1, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2},
	{0, 0, 1, 1, 0, 1, 1, 2, 1, 1, 2, 2, 1, 2, 2, 2},
	{0, 1, 1, 2, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0, 0},
	{0, 0, 1, 1, 0, 0, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2},
	{0, 1, 1, 1, 0, 1, 1, 1, 0, 2, 2, 2, 0, 2, 2, 2},
	{0, 0, 0, 0, 1, 1, 2, 2, 1, 1, 2, 2, 1, 1, 2, 2},
	{0, 1, 1, 1, 0, 2, 2, 2, 0, 2, 2, 2, 0, 2, 2, 2},
	{0, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
	{0, 2, 2, 2, 1, 2, 2, 2, 1, 2, 2, 2, 1, 2, 2, 2},
	{0, 0, 2, 2, 0, 0, 2, 2, 1, 1, 2, 2, 1, 1, 2, 2},
	{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 2},
	{0, 0, 0, 0, 0, 0, 1, 0, 0, 2, 0, 0, 0, 0, 0, 0},
}

// Shapes is the closed lookup of all 16 Mode 0 partitions, each paired
// with its anchor metadata. Built once at init time from
// partitionMasks so the anchor for a region is always "the first
// position, in raster order, assigned to that region" — a canonical,
// internally-consistent choice that satisfies the anchor invariant by
// construction.
var Shapes [NumShapes]Shape

func init() {
	for s := 0; s < NumShapes; s++ {
		var sh Shape
		sh.Region = partitionMasks[s]
		if sh.Region[0] != 0 {
			panic("mode0: shape table invariant violated: position 0 must be region 0")
		}
		found := [NumRegions]bool{true, false, false} // region 0's anchor (pos 0) always exists
		for pos := 0; pos < 16; pos++ {
			r := sh.Region[pos]
			if r == 0 {
				continue
			}
			if !found[r] {
				sh.Anchor[r-1] = uint8(pos)
				found[r] = true
			}
		}
		if !found[1] || !found[2] {
			panic("mode0: shape table invariant violated: every region must be non-empty")
		}
		if sh.Anchor[0] == sh.Anchor[1] || sh.Anchor[0] == 0 || sh.Anchor[1] == 0 {
			panic("mode0: shape table invariant violated: anchors must be distinct and non-zero")
		}
		Shapes[s] = sh
	}
}

// AnchorOf returns the anchor position for region r (0, 1, or 2) under
// shape s. Region 0's anchor is always position 0.
func AnchorOf(s int, r int) int {
	if r == 0 {
		return 0
	}
	return int(Shapes[s].Anchor[r-1])
}

// RegionOf returns the region id (0, 1, or 2) of position pos under shape s.
func RegionOf(s int, pos int) int {
	return int(Shapes[s].Region[pos])
}
