package testutil

import (
	"image/png"
	"testing"

	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/arthur-debert/pngico/pkg/ico"
	"github.com/stretchr/testify/require"
)

// EntryOf returns a PNG entry of a w×h gradient whose directory record
// claims bpp bits per pixel
func EntryOf(t *testing.T, w, h int, bpp uint16) ico.Entry {
	t.Helper()
	e, err := ico.NewPNGEntry(Gradient(w, h), png.DefaultCompression)
	require.NoError(t, err)
	e.BitsPerPixel = bpp
	return e
}

// BuildICO serializes entries into an icon container
func BuildICO(t *testing.T, entries ...ico.Entry) []byte {
	t.Helper()
	dir := ico.NewDirectory(ico.TypeIcon)
	for _, e := range entries {
		dir.Add(e)
	}
	data, err := dir.MarshalBinary()
	require.NoError(t, err)
	return data
}

// WriteICO writes an icon container holding entries at path
func WriteICO(t *testing.T, fsys filesystem.FS, path string, entries ...ico.Entry) {
	t.Helper()
	require.NoError(t, fsys.WriteFile(path, BuildICO(t, entries...), 0644))
}
