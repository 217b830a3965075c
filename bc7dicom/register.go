package bc7dicom

import "github.com/cocosip/go-bc7-codec/bc7"

// RegisterBC7Codec registers the BC7 Mode 0 codec plugin with the
// package-local codec registry (github.com/cocosip/go-bc7-codec/codec)
// under its private UID. This is not go-dicom's own
// transfer-syntax registry: go-dicom exposes no constructor for a new
// *transfer.Syntax, and BC7 is not a standardized DICOM transfer
// syntax, so registration stops at this module's own lookup surface.
func RegisterBC7Codec() {
	bc7.RegisterCodec()
}

func init() {
	RegisterBC7Codec()
}
