// Package bc7dicom adapts package bc7's image codec to
// github.com/cocosip/go-dicom's frame-oriented pixel data, mirroring
// the per-frame iteration body of jpeg2000/lossless's Codec.Encode and
// Codec.Decode without claiming a standardized DICOM transfer syntax
// BC7 has none, and go-dicom's transfer.Syntax
// registry exposes no public constructor for a new one.
package bc7dicom

import (
	"fmt"

	"github.com/cocosip/go-bc7-codec/bc7"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
)

// EncodeFrames compresses every frame of src as tightly packed RGBA8
// (Components=4, BitDepth=8 only) and appends the encoded
// result to dst, one bc7.EncodeImage call per frame.
func EncodeFrames(src, dst imagetypes.PixelData) error {
	if src == nil || dst == nil {
		return fmt.Errorf("bc7dicom: EncodeFrames: source and destination pixel data cannot be nil")
	}
	frameInfo := src.GetFrameInfo()
	if frameInfo == nil {
		return fmt.Errorf("bc7dicom: EncodeFrames: source pixel data has no frame info")
	}
	if int(frameInfo.SamplesPerPixel) != 4 {
		return fmt.Errorf("bc7dicom: EncodeFrames: SamplesPerPixel = %d, want 4 (RGBA)", frameInfo.SamplesPerPixel)
	}
	if int(frameInfo.BitsStored) != 8 {
		return fmt.Errorf("bc7dicom: EncodeFrames: BitsStored = %d, want 8", frameInfo.BitsStored)
	}

	frameCount := src.FrameCount()
	if frameCount == 0 {
		return fmt.Errorf("bc7dicom: EncodeFrames: source pixel data is empty (no frames)")
	}
	width := int(frameInfo.Width)
	height := int(frameInfo.Height)

	for i := 0; i < frameCount; i++ {
		frameData, err := src.GetFrame(i)
		if err != nil {
			return fmt.Errorf("bc7dicom: EncodeFrames: get frame %d: %w", i, err)
		}
		if len(frameData) == 0 {
			return fmt.Errorf("bc7dicom: EncodeFrames: frame %d pixel data is empty", i)
		}
		encoded, err := bc7.EncodeImage(frameData, width, height)
		if err != nil {
			return fmt.Errorf("bc7dicom: EncodeFrames: encode frame %d: %w", i, err)
		}
		if err := dst.AddFrame(encoded); err != nil {
			return fmt.Errorf("bc7dicom: EncodeFrames: add encoded frame %d: %w", i, err)
		}
	}
	return nil
}

// DecodeFrames reverses EncodeFrames: each frame of src is decompressed
// via bc7.DecodeImage and appended to dst as a tightly packed RGBA8
// buffer.
func DecodeFrames(src, dst imagetypes.PixelData) error {
	if src == nil || dst == nil {
		return fmt.Errorf("bc7dicom: DecodeFrames: source and destination pixel data cannot be nil")
	}

	frameCount := src.FrameCount()
	if frameCount == 0 {
		return fmt.Errorf("bc7dicom: DecodeFrames: source pixel data is empty (no frames)")
	}

	for i := 0; i < frameCount; i++ {
		frameData, err := src.GetFrame(i)
		if err != nil {
			return fmt.Errorf("bc7dicom: DecodeFrames: get frame %d: %w", i, err)
		}
		if len(frameData) == 0 {
			return fmt.Errorf("bc7dicom: DecodeFrames: frame %d pixel data is empty", i)
		}
		decoded, _, _, err := bc7.DecodeImage(frameData)
		if err != nil {
			return fmt.Errorf("bc7dicom: DecodeFrames: decode frame %d: %w", i, err)
		}
		if err := dst.AddFrame(decoded); err != nil {
			return fmt.Errorf("bc7dicom: DecodeFrames: add decoded frame %d: %w", i, err)
		}
	}
	return nil
}
