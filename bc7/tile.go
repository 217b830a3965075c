// Package bc7 adapts the Mode 0 block codec of package mode0 to whole
// RGBA8 images: splitting a row-major pixel buffer into 4x4 tiles,
// running the block codec over each tile, and exposing the result
// through the repo-local codec.Codec plugin interface.
package bc7

import (
	"fmt"

	"github.com/cocosip/go-bc7-codec/bc7/mode0"
)

// TileSize is the fixed edge length of a Mode 0 tile.
const TileSize = 4

// tilesAcross returns the number of tiles needed to cover dim pixels,
// rounding up for partial edge tiles.
func tilesAcross(dim int) int {
	return (dim + TileSize - 1) / TileSize
}

// SplitTiles walks buf (stride w*4, RGBA8) in 4x4 blocks, row-major
// (tile index = tileY*tilesPerRow + tileX). Partial edge tiles clamp
// every out-of-bounds source read to the last in-bounds pixel in that
// row/column, the standard BC7 encoder convention for non-multiple-of-4
// image sizes whose dimensions aren't multiples of 4.
func SplitTiles(buf []byte, w, h int) ([]mode0.Tile, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bc7: invalid dimensions %dx%d", w, h)
	}
	stride := w * 4
	if len(buf) < stride*h {
		return nil, fmt.Errorf("bc7: buffer too small for %dx%d RGBA8: have %d bytes, need %d", w, h, len(buf), stride*h)
	}

	tilesPerRow := tilesAcross(w)
	tilesPerCol := tilesAcross(h)
	tiles := make([]mode0.Tile, tilesPerRow*tilesPerCol)

	for tileY := 0; tileY < tilesPerCol; tileY++ {
		for tileX := 0; tileX < tilesPerRow; tileX++ {
			var tile mode0.Tile
			for ty := 0; ty < TileSize; ty++ {
				srcY := clamp(tileY*TileSize+ty, h-1)
				for tx := 0; tx < TileSize; tx++ {
					srcX := clamp(tileX*TileSize+tx, w-1)
					off := srcY*stride + srcX*4
					pos := ty*TileSize + tx
					tile[pos] = [4]float64{
						float64(buf[off]),
						float64(buf[off+1]),
						float64(buf[off+2]),
						float64(buf[off+3]),
					}
				}
			}
			tiles[tileY*tilesPerRow+tileX] = tile
		}
	}
	return tiles, nil
}

// JoinTiles is the inverse of SplitTiles: it reassembles a w x h RGBA8
// buffer from decoded tiles, dropping the padding columns/rows that
// SplitTiles clamped into existence for partial edge tiles.
func JoinTiles(tiles []mode0.Tile, w, h int) ([]byte, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("bc7: invalid dimensions %dx%d", w, h)
	}
	tilesPerRow := tilesAcross(w)
	tilesPerCol := tilesAcross(h)
	if len(tiles) != tilesPerRow*tilesPerCol {
		return nil, fmt.Errorf("bc7: got %d tiles, want %d for %dx%d", len(tiles), tilesPerRow*tilesPerCol, w, h)
	}

	stride := w * 4
	buf := make([]byte, stride*h)
	for tileY := 0; tileY < tilesPerCol; tileY++ {
		for tileX := 0; tileX < tilesPerRow; tileX++ {
			tile := tiles[tileY*tilesPerRow+tileX]
			for ty := 0; ty < TileSize; ty++ {
				dstY := tileY*TileSize + ty
				if dstY >= h {
					continue
				}
				for tx := 0; tx < TileSize; tx++ {
					dstX := tileX*TileSize + tx
					if dstX >= w {
						continue
					}
					pos := ty*TileSize + tx
					off := dstY*stride + dstX*4
					for ch := 0; ch < 4; ch++ {
						buf[off+ch] = byte(clampByte(tile[pos][ch]))
					}
				}
			}
		}
	}
	return buf, nil
}

func clamp(v, max int) int {
	if v > max {
		return max
	}
	return v
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
