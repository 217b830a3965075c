package mode0

import "errors"

var (
	// ErrWrongMode is returned by DecodeBlock when the mode marker bit
	// (bit 0) is not set, i.e. the block was not encoded as Mode 0.
	// Decoders must reject blocks whose mode bit is not 1.
	ErrWrongMode = errors.New("bc7/mode0: block is not a Mode 0 block")

	// ErrNoCandidate is the unrecoverable encoder error for
	// "No-candidate-found" failure kind. It cannot occur for Mode 0
	// encoding valid 4x4 tiles (every shape always yields a candidate,
	// since endpts_fit is trivially true in this mode) but is surfaced
	// rather than silently returning a zero block if the shape
	// shortlist were ever empty.
	ErrNoCandidate = errors.New("bc7/mode0: encoder found no candidate shape")
)
