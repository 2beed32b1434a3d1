package testutil

import (
	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/spf13/afero"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() filesystem.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// NewReadOnlyTestFS wraps base so that every write fails with a
// permission error while reads still work.
func NewReadOnlyTestFS(base afero.Fs) filesystem.FS {
	return filesystem.NewAferoFS(afero.NewReadOnlyFs(base))
}
