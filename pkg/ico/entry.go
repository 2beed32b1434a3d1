package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

var (
	pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	dibSignature = []byte{0x28, 0, 0, 0}
)

// Entry is one image record of a container.
type Entry struct {
	Width        uint32
	Height       uint32
	ColorCount   uint8
	Planes       uint16
	BitsPerPixel uint16
	Data         []byte
}

// NewPNGEntry encodes img as a 32-bit RGBA PNG entry.
func NewPNGEntry(img image.Image, level png.CompressionLevel) (Entry, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 || w > maxEdge || h > maxEdge {
		return Entry{}, fmt.Errorf("ico: image is %d×%d px, edges must be within 1..%d", w, h, maxEdge)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, nrgba); err != nil {
		return Entry{}, fmt.Errorf("ico: encoding PNG entry: %w", err)
	}

	return Entry{
		Width:        uint32(w),
		Height:       uint32(h),
		Planes:       1,
		BitsPerPixel: 32,
		Data:         buf.Bytes(),
	}, nil
}

// IsPNG reports whether the payload is PNG-compressed.
func (e Entry) IsPNG() bool {
	return bytes.HasPrefix(e.Data, pngSignature)
}

// Decode decodes the payload into a raster image.
func (e Entry) Decode() (image.Image, error) {
	if !e.IsPNG() {
		if bytes.HasPrefix(e.Data, dibSignature) {
			return nil, fmt.Errorf("%w: legacy bitmap entry %d×%d", ErrUnsupportedEntry, e.Width, e.Height)
		}
		return nil, fmt.Errorf("%w: unknown payload signature", ErrUnsupportedEntry)
	}

	img, err := png.Decode(bytes.NewReader(e.Data))
	if err != nil {
		return nil, fmt.Errorf("ico: decoding PNG entry %d×%d: %w", e.Width, e.Height, err)
	}
	return img, nil
}

type pngInfo struct {
	width        uint32
	height       uint32
	bitsPerPixel uint16
}

// readPNGHeader reads geometry and depth from the IHDR chunk.
func readPNGHeader(data []byte) (pngInfo, bool) {
	// signature(8) length(4) "IHDR"(4) width(4) height(4) depth(1) colorType(1)
	if len(data) < 26 || !bytes.HasPrefix(data, pngSignature) || string(data[12:16]) != "IHDR" {
		return pngInfo{}, false
	}

	depth := uint16(data[24])
	var channels uint16
	switch data[25] {
	case 0, 3: // grayscale, palette
		channels = 1
	case 2: // truecolor
		channels = 3
	case 4: // grayscale + alpha
		channels = 2
	case 6: // truecolor + alpha
		channels = 4
	default:
		return pngInfo{}, false
	}

	return pngInfo{
		width:        binary.BigEndian.Uint32(data[16:20]),
		height:       binary.BigEndian.Uint32(data[20:24]),
		bitsPerPixel: depth * channels,
	}, true
}
