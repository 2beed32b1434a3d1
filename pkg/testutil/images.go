package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/stretchr/testify/require"
)

// Gradient returns a w×h image with varying color and alpha, so pixel
// comparisons catch channel or orientation mistakes.
func Gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 3),
				G: uint8(y * 5),
				B: uint8((x + y) * 2),
				A: uint8(64 + (x+y)%192),
			})
		}
	}
	return img
}

// EncodePNG encodes img as PNG bytes
func EncodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// WritePNG writes img as a PNG file at path
func WritePNG(t *testing.T, fsys filesystem.FS, path string, img image.Image) {
	t.Helper()
	require.NoError(t, fsys.WriteFile(path, EncodePNG(t, img), 0644))
}

// ReadPNG decodes the PNG file at path
func ReadPNG(t *testing.T, fsys filesystem.FS, path string) image.Image {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

// AssertSameImage fails unless both images have the same size and the
// same non-premultiplied pixels
func AssertSameImage(t *testing.T, want, got image.Image) {
	t.Helper()
	require.Equal(t, want.Bounds().Size(), got.Bounds().Size(), "image size")

	wb, gb := want.Bounds(), got.Bounds()
	for y := 0; y < wb.Dy(); y++ {
		for x := 0; x < wb.Dx(); x++ {
			w := color.NRGBAModel.Convert(want.At(wb.Min.X+x, wb.Min.Y+y))
			g := color.NRGBAModel.Convert(got.At(gb.Min.X+x, gb.Min.Y+y))
			require.Equal(t, w, g, "pixel (%d, %d)", x, y)
		}
	}
}
