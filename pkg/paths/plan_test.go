package paths_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/pngico/pkg/errors"
	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/arthur-debert/pngico/pkg/paths"
	"github.com/arthur-debert/pngico/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS(t *testing.T) filesystem.FS {
	t.Helper()
	fsys := testutil.NewTestFS()
	require.NoError(t, fsys.MkdirAll("/work/icons", 0755))
	require.NoError(t, fsys.WriteFile("/work/app.ico", []byte("ico"), 0644))
	require.NoError(t, fsys.WriteFile("/work/APP2.ICO", []byte("ico"), 0644))
	require.NoError(t, fsys.WriteFile("/work/notes.txt", []byte("txt"), 0644))
	require.NoError(t, fsys.MkdirAll("/work/.hidden", 0755))
	return fsys
}

func TestResolve_Auto(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		mode   paths.Mode
		output string
	}{
		{"folder becomes icon", "/work/icons", paths.ModeICO, "/work/icons.ico"},
		{"trailing slash", "/work/icons/", paths.ModeICO, "/work/icons.ico"},
		{"icon becomes folder", "/work/app.ico", paths.ModePNG, "/work/app"},
		{"extension is case insensitive", "/work/APP2.ICO", paths.ModePNG, "/work/APP2"},
		{"dot folder keeps its name", "/work/.hidden", paths.ModeICO, "/work/.hidden.ico"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := paths.Resolve(newFS(t), paths.Request{Input: tt.input})
			require.NoError(t, err)
			assert.Equal(t, tt.mode, plan.Mode)
			assert.Equal(t, tt.output, plan.Output)
			assert.False(t, plan.Replacing)
		})
	}
}

func TestResolve_AutoCannotInfer(t *testing.T) {
	fsys := newFS(t)

	_, err := paths.Resolve(fsys, paths.Request{Input: "/work/notes.txt"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "--convert")

	_, err = paths.Resolve(fsys, paths.Request{Input: "/work/missing"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))
}

func TestResolve_ExplicitMode(t *testing.T) {
	fsys := newFS(t)

	// The input kind is not checked when the mode is forced
	plan, err := paths.Resolve(fsys, paths.Request{Input: "/work/notes.txt", Mode: paths.ModePNG})
	require.NoError(t, err)
	assert.Equal(t, paths.ModePNG, plan.Mode)
	assert.Equal(t, "/work/notes", plan.Output)

	plan, err = paths.Resolve(fsys, paths.Request{Input: "/work/missing", Mode: paths.ModeICO})
	require.NoError(t, err)
	assert.Equal(t, "/work/missing.ico", plan.Output)
}

func TestResolve_ExplicitOutput(t *testing.T) {
	plan, err := paths.Resolve(newFS(t), paths.Request{Input: "/work/icons", Output: "/elsewhere/out.ico"})
	require.NoError(t, err)
	assert.Equal(t, paths.ModeICO, plan.Mode)
	assert.Equal(t, "/elsewhere/out.ico", plan.Output)
}

func TestResolve_ExistingOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  string
	}{
		{"icon file", "/work/icons", "file"},
		{"png folder", "/work/app.ico", "folder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := newFS(t)
			require.NoError(t, fsys.WriteFile("/work/icons.ico", []byte("old"), 0644))
			require.NoError(t, fsys.MkdirAll("/work/app", 0755))

			_, err := paths.Resolve(fsys, paths.Request{Input: tt.input})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
			assert.Contains(t, err.Error(),
				"The output "+tt.kind+" already exists. Specify --overwrite to overwrite it.")

			plan, err := paths.Resolve(fsys, paths.Request{Input: tt.input, Overwrite: true})
			require.NoError(t, err)
			assert.True(t, plan.Replacing)
		})
	}
}

func TestResolve_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"null byte", "/work/a\x00b"},
		{"too long", "/" + strings.Repeat("a", 5000)},
		{"root has no stem", "/"},
		{"dot has no stem", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := paths.Resolve(newFS(t), paths.Request{Input: tt.input, Mode: paths.ModeICO})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))
		})
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]paths.Mode{
		"":     paths.ModeAuto,
		"auto": paths.ModeAuto,
		"ico":  paths.ModeICO,
		"PNG":  paths.ModePNG,
	} {
		got, err := paths.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := paths.ParseMode("bmp")
	assert.Error(t, err)

	assert.Equal(t, "png", paths.ModePNG.String())
	assert.Equal(t, "unknown", paths.Mode(9).String())
}
