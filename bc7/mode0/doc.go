// Package mode0 implements the BC7 Mode 0 block encoder/decoder: a
// lossy, fixed-rate 128-bit compressor for 4x4 RGBA texture tiles using
// opaque three-region partitioning, 4-bit-plus-shared-lsb endpoints,
// and a 3-bit palette index per pixel.
//
// The package is purely synchronous and allocates no shared state
// across calls: every EncodeBlock/DecodeBlock call is independent, so
// callers may parallelize freely across tiles (see package bc7's
// EncodeImage for a worker-pool example).
package mode0
