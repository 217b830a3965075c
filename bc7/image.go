package bc7

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cocosip/go-bc7-codec/bc7/mode0"
)

// headerSize is the width/height framing this package adds on top of
// the raw concatenated Mode 0 block stream: two
// big-endian uint32s, width then height.
const headerSize = 8

// EncodeImage tiles buf (row-major RGBA8, stride w*4) into 4x4 blocks,
// encodes every tile independently via mode0.EncodeBlock across a
// worker pool sized to GOMAXPROCS, and returns the concatenated block
// stream prefixed by an 8-byte width/height header. It uses the Mode 0
// core's default search budget; callers that need to bound the search
// effort (Codec.Encode, when given a *Parameters) use EncodeImageOpts.
func EncodeImage(buf []byte, w, h int) ([]byte, error) {
	return EncodeImageOpts(buf, w, h, mode0.SearchOptions{})
}

// EncodeImageOpts is EncodeImage with a caller-supplied search budget,
// applied identically to every tile.
func EncodeImageOpts(buf []byte, w, h int, opts mode0.SearchOptions) ([]byte, error) {
	tiles, err := SplitTiles(buf, w, h)
	if err != nil {
		return nil, fmt.Errorf("bc7: split tiles: %w", err)
	}

	blocks := make([][mode0.BlockBytes]byte, len(tiles))
	if err := encodeTilesParallel(tiles, blocks, opts); err != nil {
		return nil, err
	}

	out := make([]byte, headerSize+len(blocks)*mode0.BlockBytes)
	binary.BigEndian.PutUint32(out[0:4], uint32(w))
	binary.BigEndian.PutUint32(out[4:8], uint32(h))
	for i, block := range blocks {
		copy(out[headerSize+i*mode0.BlockBytes:], block[:])
	}
	return out, nil
}

// encodeTilesParallel runs mode0.EncodeBlock over every tile using
// runtime.GOMAXPROCS(0) goroutines, each goroutine claiming the next
// unclaimed tile index via an atomic counter. Tiles carry no shared
// state, so every goroutine writes to a disjoint index of
// blocks and those writes need no locking; only the first error is
// recorded under a mutex.
func encodeTilesParallel(tiles []mode0.Tile, blocks [][mode0.BlockBytes]byte, opts mode0.SearchOptions) error {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(tiles) {
		numWorkers = len(tiles)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	var next atomic.Int64
	var firstErr error
	var errMu sync.Mutex
	var wg sync.WaitGroup

	for wkr := 0; wkr < numWorkers; wkr++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= len(tiles) {
					return
				}
				block, err := mode0.EncodeBlockOpts(tiles[i], opts, nil, i)
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("bc7: encode tile %d: %w", i, err)
					}
					errMu.Unlock()
					continue
				}
				blocks[i] = block
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// DecodeImage reverses EncodeImage: it reads the 8-byte header, decodes
// every 16-byte block independently, and reassembles the buffer via
// JoinTiles.
func DecodeImage(data []byte) ([]byte, int, int, error) {
	if len(data) < headerSize {
		return nil, 0, 0, fmt.Errorf("bc7: encoded data too short for header: %d bytes", len(data))
	}
	w := int(binary.BigEndian.Uint32(data[0:4]))
	h := int(binary.BigEndian.Uint32(data[4:8]))

	body := data[headerSize:]
	if len(body)%mode0.BlockBytes != 0 {
		return nil, 0, 0, fmt.Errorf("bc7: encoded block stream length %d is not a multiple of %d", len(body), mode0.BlockBytes)
	}
	numBlocks := len(body) / mode0.BlockBytes

	tiles := make([]mode0.Tile, numBlocks)
	for i := 0; i < numBlocks; i++ {
		var block [mode0.BlockBytes]byte
		copy(block[:], body[i*mode0.BlockBytes:(i+1)*mode0.BlockBytes])
		tile, err := mode0.DecodeBlock(block)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("bc7: decode tile %d: %w", i, err)
		}
		tiles[i] = tile
	}

	out, err := JoinTiles(tiles, w, h)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("bc7: join tiles: %w", err)
	}
	return out, w, h, nil
}
