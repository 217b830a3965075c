package bc7

import "github.com/cocosip/go-bc7-codec/codec"

// Parameters carries the encode-time search knobs for the Mode 0 codec
// plugin, implementing the repo-local codec.Options interface so
// callers can pass it through codec.EncodeParams.Options. Codec.Encode
// turns a non-nil *Parameters into a mode0.SearchOptions and threads it
// through to every tile's shape-and-endpoint search.
type Parameters struct {
	// ShortlistSize bounds how many of the 16 partition shapes the
	// per-tile search refines past the rough-error ranking pass.
	// Validate (which Codec.Encode always calls) raises zero or negative
	// values to 1; DefaultParameters sets it to mode0.NItems.
	ShortlistSize int

	// MaxPerturbSteps bounds how many times the per-region channel loop
	// may restart after an index-changing refinement. Zero means "use
	// the package default".
	MaxPerturbSteps int
}

var _ codec.Options = (*Parameters)(nil)

// DefaultParameters returns the Parameters matching the Mode 0 core's
// built-in defaults.
func DefaultParameters() *Parameters {
	return &Parameters{ShortlistSize: 4, MaxPerturbSteps: 0}
}

// GetParameter looks up a named parameter, for generic name-based
// callers; Validate is the primary entry point for this
// package's own use.
func (p *Parameters) GetParameter(name string) interface{} {
	switch name {
	case "shortlistSize":
		return p.ShortlistSize
	case "maxPerturbSteps":
		return p.MaxPerturbSteps
	default:
		return nil
	}
}

// SetParameter sets a named parameter if name and type match; unknown
// names and type mismatches are ignored, the same permissive
// parameter-extraction style as jpeg2000/lossless/codec.go's
// extractBasicLosslessParams.
func (p *Parameters) SetParameter(name string, value interface{}) {
	switch name {
	case "shortlistSize":
		if v, ok := value.(int); ok {
			p.ShortlistSize = v
		}
	case "maxPerturbSteps":
		if v, ok := value.(int); ok {
			p.MaxPerturbSteps = v
		}
	}
}

// Validate clamps ShortlistSize to [1,16] (there are only 16 shapes)
// and rejects a negative perturbation budget.
func (p *Parameters) Validate() error {
	if p.ShortlistSize <= 0 {
		p.ShortlistSize = 1
	}
	if p.ShortlistSize > 16 {
		p.ShortlistSize = 16
	}
	if p.MaxPerturbSteps < 0 {
		return codec.ErrInvalidParameter
	}
	return nil
}
