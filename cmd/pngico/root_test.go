package pngico

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/arthur-debert/pngico/pkg/errors"
	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/arthur-debert/pngico/pkg/ico"
	"github.com/arthur-debert/pngico/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.IsolateXDG(t)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// pngFolder creates dir/icons holding PNGs of the given sizes
func pngFolder(t *testing.T, dir string, sizes ...int) string {
	t.Helper()
	fsys := filesystem.NewOS()
	folder := filepath.Join(dir, "icons")
	require.NoError(t, os.MkdirAll(folder, 0755))
	for _, size := range sizes {
		testutil.WritePNG(t, fsys, filepath.Join(folder, pngName(size)), testutil.Gradient(size, size))
	}
	return folder
}

func pngName(size int) string {
	return strconv.Itoa(size) + ".png"
}

func TestRoot_EncodeThenDecode(t *testing.T) {
	dir := t.TempDir()
	folder := pngFolder(t, dir, 16, 32)

	out, err := execute(t, "--format", "text", folder)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 16.png")
	assert.Contains(t, out, "Added 32.png")
	assert.Contains(t, out, "Created icons.ico with 2 images.")

	icon := filepath.Join(dir, "icons.ico")
	data, err := os.ReadFile(icon)
	require.NoError(t, err)
	parsed, err := ico.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, 2, parsed.Len())

	dest := filepath.Join(dir, "extracted")
	out, err = execute(t, "--format", "text", "-o", dest, icon)
	require.NoError(t, err)
	assert.Contains(t, out, "Extracted 2 of 2 images to "+dest+".")

	fsys := filesystem.NewOS()
	for _, size := range []int{16, 32} {
		name := pngName(size)
		testutil.AssertSameImage(t,
			testutil.ReadPNG(t, fsys, filepath.Join(folder, name)),
			testutil.ReadPNG(t, fsys, filepath.Join(dest, name)))
	}
}

func TestRoot_RefusesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	folder := pngFolder(t, dir, 16)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icons.ico"), []byte("old"), 0644))

	_, err := execute(t, "--format", "text", folder)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	data, err := os.ReadFile(filepath.Join(dir, "icons.ico"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "existing output is left alone")

	_, err = execute(t, "--format", "text", "--overwrite", folder)
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "icons.ico"))
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(data))
}

func TestRoot_ForcedMode(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()
	icon := filepath.Join(dir, "favicon.bin")
	testutil.WriteICO(t, fsys, icon, testutil.EntryOf(t, 48, 32, 32))

	_, err := execute(t, "--format", "text", icon)
	require.Error(t, err, "auto mode needs a folder or an .ico file")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))

	_, err = execute(t, "--format", "text", "-c", "png", icon)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "favicon", "48x32.png"))
	assert.NoError(t, err)
}

func TestRoot_InvalidArguments(t *testing.T) {
	_, err := execute(t)
	assert.Error(t, err)

	_, err = execute(t, "-c", "bmp", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfig))

	_, err = execute(t, "--format", "fancy", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestRoot_EmptyFolder(t *testing.T) {
	dir := t.TempDir()
	folder := pngFolder(t, dir)

	_, err := execute(t, "--format", "text", folder)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyResult))

	_, statErr := os.Stat(filepath.Join(dir, "icons.ico"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoot_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	icon := filepath.Join(dir, "empty.ico")
	require.NoError(t, os.WriteFile(icon, []byte{0, 0, 1, 0, 0, 0}, 0644))

	_, err := execute(t, "--format", "text", icon)
	require.NoError(t, err)

	t.Setenv("PNGICO_DECODE_REQUIRE_ENTRIES", "true")
	_, err = execute(t, "--format", "text", "-O", icon)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyResult))
}

func TestRoot_EnvironmentSizes(t *testing.T) {
	dir := t.TempDir()
	folder := pngFolder(t, dir, 16, 32, 48)
	t.Setenv("PNGICO_SIZES", "16,48")

	out, err := execute(t, "--format", "text", folder)
	require.NoError(t, err)
	assert.Contains(t, out, "Added 16.png")
	assert.NotContains(t, out, "Added 32.png")
	assert.Contains(t, out, "Created icons.ico with 2 images.")
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	folder := pngFolder(t, dir, 16, 32)
	cfgFile := filepath.Join(dir, "pngico.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("sizes = [32]\n"), 0644))

	out, err := execute(t, "--format", "text", "--config", cfgFile, folder)
	require.NoError(t, err)
	assert.Contains(t, out, "Created icons.ico with 1 images.")

	_, err = execute(t, "--config", filepath.Join(dir, "missing.toml"), folder)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestRoot_FolderNamedLikeCommand(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, "config")
	require.NoError(t, os.MkdirAll(folder, 0755))
	testutil.WritePNG(t, filesystem.NewOS(), filepath.Join(folder, "16.png"), testutil.Gradient(16, 16))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := execute(t, "--format", "text", "./config")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config.ico with 1 images.")

	out, err = execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "pngico ./config")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "pngico version dev")
	assert.Contains(t, out, "commit: unknown")
}

func TestConfigCmd(t *testing.T) {
	out, err := execute(t, "--format", "json", "config")
	require.NoError(t, err)
	assert.Regexp(t, `sizes = \[16,\s*20,.*256\]`, out)
	assert.Regexp(t, `format = ['"]json['"]`, out)

	out, err = execute(t, "config", "--path")
	require.NoError(t, err)
	assert.Contains(t, out, "pngico")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration")
	assert.Contains(t, out, "naming")
	assert.Contains(t, out, "--overwrite")

	out, err = execute(t, "help", "--convert")
	require.NoError(t, err)
	assert.Contains(t, out, "force a direction")
}
