package bc7

import (
	"fmt"

	"github.com/cocosip/go-bc7-codec/bc7/mode0"
	localcodec "github.com/cocosip/go-bc7-codec/codec"
)

// UID is the private, non-standard identifier this codec registers
// under in the local registry: not a DICOM-standardized
// transfer syntax, since BC7 has none.
const UID = "1.2.840.10008.5.1.4.1.1.7.BC7-MODE0.PRIVATE"

// codecName is the human-readable name paired with UID in the
// registry, mirroring jpeg/lossless's "jpeg-lossless-sv1" naming.
const codecName = "bc7-mode0"

// Codec implements the repo-local codec.Codec plugin interface
// over the Mode 0 tile adapter.
type Codec struct{}

var _ localcodec.Codec = (*Codec)(nil)

// NewCodec returns a stateless BC7 Mode 0 codec plugin.
func NewCodec() *Codec {
	return &Codec{}
}

// Name returns the codec's registry name.
func (c *Codec) Name() string { return codecName }

// UID returns the codec's registry UID.
func (c *Codec) UID() string { return UID }

// Encode validates params, tiles the pixel data, and runs
// EncodeImageOpts. Mode 0 only supports 8-bit RGBA input: anything
// else is rejected up front rather than silently reinterpreted. When
// params.Options is a *Parameters, its ShortlistSize and
// MaxPerturbSteps bound the per-tile shape-and-endpoint search; any
// other (or nil) Options leaves the Mode 0 core's own defaults in
// place.
func (c *Codec) Encode(params localcodec.EncodeParams) ([]byte, error) {
	if params.Components != 4 {
		return nil, fmt.Errorf("bc7: Encode: Components = %d, want 4 (RGBA)", params.Components)
	}
	if params.BitDepth != 8 {
		return nil, fmt.Errorf("bc7: Encode: BitDepth = %d, want 8", params.BitDepth)
	}
	var opts mode0.SearchOptions
	if params.Options != nil {
		if err := params.Options.Validate(); err != nil {
			return nil, fmt.Errorf("bc7: Encode: invalid options: %w", err)
		}
		if p, ok := params.Options.(*Parameters); ok {
			opts = mode0.SearchOptions{ShortlistSize: p.ShortlistSize, MaxChannelRestarts: p.MaxPerturbSteps}
		}
	}
	encoded, err := EncodeImageOpts(params.PixelData, params.Width, params.Height, opts)
	if err != nil {
		return nil, fmt.Errorf("bc7: Encode: %w", err)
	}
	return encoded, nil
}

// Decode reverses Encode, reporting the recovered width/height/4/8 in
// the DecodeResult so callers never need to pass dimensions back in.
func (c *Codec) Decode(data []byte) (*localcodec.DecodeResult, error) {
	buf, w, h, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("bc7: Decode: %w", err)
	}
	return &localcodec.DecodeResult{
		PixelData:  buf,
		Width:      w,
		Height:     h,
		Components: 4,
		BitDepth:   8,
	}, nil
}

// RegisterCodec registers the BC7 Mode 0 codec with the package-local
// global registry under both its name and private UID.
func RegisterCodec() {
	localcodec.Register(NewCodec())
}
