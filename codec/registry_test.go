package codec_test

import (
	"testing"

	"github.com/cocosip/go-bc7-codec/bc7"
	"github.com/cocosip/go-bc7-codec/codec"
)

func init() {
	bc7.RegisterCodec()
}

func TestCodecRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantUID   string
		wantName  string
	}{
		{
			name:      "Get BC7 by UID",
			key:       bc7.UID,
			wantFound: true,
			wantUID:   bc7.UID,
			wantName:  "bc7-mode0",
		},
		{
			name:      "Get BC7 by name",
			key:       "bc7-mode0",
			wantFound: true,
			wantUID:   bc7.UID,
			wantName:  "bc7-mode0",
		},
		{
			name:      "Get non-existent codec",
			key:       "non-existent",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Errorf("Get(%q) unexpected error: %v", tt.key, err)
					return
				}
				if c == nil {
					t.Errorf("Get(%q) returned nil codec", tt.key)
					return
				}
				if c.UID() != tt.wantUID {
					t.Errorf("Get(%q).UID() = %q, want %q", tt.key, c.UID(), tt.wantUID)
				}
				if c.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), tt.wantName)
				}
			} else {
				if err == nil {
					t.Errorf("Get(%q) expected error, got nil", tt.key)
				}
				if err != codec.ErrCodecNotFound {
					t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
				}
			}
		})
	}
}

func TestListCodecs(t *testing.T) {
	codecs := codec.List()

	if len(codecs) < 1 {
		t.Errorf("List() returned %d codecs, want at least 1", len(codecs))
	}

	found := false
	for _, c := range codecs {
		if c.UID() == bc7.UID {
			found = true
			if c.Name() != "bc7-mode0" {
				t.Errorf("BC7 codec name = %q, want %q", c.Name(), "bc7-mode0")
			}
		}
	}
	if !found {
		t.Error("List() did not include the BC7 Mode 0 codec")
	}
}

func TestBC7CodecEncodeDecode(t *testing.T) {
	c, err := codec.Get(bc7.UID)
	if err != nil {
		t.Fatalf("Failed to get BC7 codec: %v", err)
	}

	width, height := 8, 8
	pixelData := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		pixelData[i*4+0] = byte(i * 7 % 256)
		pixelData[i*4+1] = byte(i * 13 % 256)
		pixelData[i*4+2] = byte(i * 29 % 256)
		pixelData[i*4+3] = 255
	}

	params := codec.EncodeParams{
		PixelData:  pixelData,
		Width:      width,
		Height:     height,
		Components: 4,
		BitDepth:   8,
		Options:    nil,
	}

	compressed, err := c.Encode(params)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	t.Logf("Compressed size: %d bytes", len(compressed))

	result, err := c.Decode(compressed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if result.Width != width {
		t.Errorf("Width = %d, want %d", result.Width, width)
	}
	if result.Height != height {
		t.Errorf("Height = %d, want %d", result.Height, height)
	}
	if result.Components != 4 {
		t.Errorf("Components = %d, want 4", result.Components)
	}
	if result.BitDepth != 8 {
		t.Errorf("BitDepth = %d, want 8", result.BitDepth)
	}
	if len(result.PixelData) != len(pixelData) {
		t.Fatalf("Data length mismatch: got %d, want %d", len(result.PixelData), len(pixelData))
	}
}

func TestBC7CodecRejectsWrongComponents(t *testing.T) {
	c, err := codec.Get(bc7.UID)
	if err != nil {
		t.Fatalf("Failed to get BC7 codec: %v", err)
	}
	params := codec.EncodeParams{
		PixelData:  make([]byte, 64),
		Width:      8,
		Height:     8,
		Components: 3,
		BitDepth:   8,
	}
	if _, err := c.Encode(params); err == nil {
		t.Error("Encode with Components=3 should have failed")
	}
}
