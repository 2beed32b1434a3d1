// Package convert builds ICO files from PNG folders and extracts them back.
//
// Both directions are single-pass and synchronous. Problems with a single
// image are reported and skipped; only the failures documented on each
// function abort the whole run.
package convert

import (
	stderrors "errors"
	"fmt"
	"image/png"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/pngico/pkg/errors"
	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/arthur-debert/pngico/pkg/ico"
	"github.com/arthur-debert/pngico/pkg/internal/hashutil"
	"github.com/arthur-debert/pngico/pkg/logging"
	"github.com/arthur-debert/pngico/pkg/naming"
	"github.com/arthur-debert/pngico/pkg/ui"
)

// EncodeOptions configures CreateICO
type EncodeOptions struct {
	InputDir   string
	OutputFile string
	Sizes      naming.SizeSet
	// Compression is the PNG compression level of the stored entries
	Compression png.CompressionLevel
	// SkipUndecodable turns PNG decode failures into warnings
	SkipUndecodable bool
	Reporter        ui.Reporter
}

// CreateICO builds an icon from the "{size}.png" files of InputDir and
// writes it to OutputFile, replacing any existing file. It returns the
// number of entries written.
//
// Missing sizes are skipped silently; unreadable files and files of the
// wrong dimensions are skipped with a warning. A file that is not a valid
// PNG aborts the run unless SkipUndecodable is set. When no entry is left
// the run fails with ErrEmptyResult and OutputFile is not created.
func CreateICO(fsys filesystem.FS, opts EncodeOptions) (int, error) {
	logger := logging.GetLogger("convert.encode")
	defer logging.LogOperationStart(logger, "create_ico")()

	reporter := opts.Reporter
	if reporter == nil {
		reporter = ui.Discard
	}
	sizes := opts.Sizes
	if sizes.Len() == 0 {
		sizes = naming.CanonicalSizes()
	}

	dir := ico.NewDirectory(ico.TypeIcon)

	for _, size := range sizes.Sizes() {
		name := naming.InputName(size)
		path := filepath.Join(opts.InputDir, name)

		entry, ok, err := readEntry(fsys, path, name, size, opts, reporter)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}

		dir.Add(entry)
		logger.Info().Str("file", name).Uint32("size", uint32(size)).Msg("Added icon size")
		reporter.Info(fmt.Sprintf("Added %s", name))
	}

	if dir.Len() == 0 {
		return 0, errors.New(errors.ErrEmptyResult, "No suitable PNG files found.").
			WithDetail("input", opts.InputDir)
	}

	data, err := dir.MarshalBinary()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrContainerEncode, "failed to encode icon")
	}

	if info, err := fsys.Stat(opts.OutputFile); err == nil && info.IsDir() {
		return 0, errors.Newf(errors.ErrFileWrite, "can't write %s: is a directory", opts.OutputFile)
	}
	if err := fsys.WriteFile(opts.OutputFile, data, 0644); err != nil {
		// Never leave a truncated icon behind, but only a regular file is ours to remove
		if info, statErr := fsys.Stat(opts.OutputFile); statErr == nil && info.Mode().IsRegular() {
			_ = fsys.Remove(opts.OutputFile)
		}
		return 0, errors.Wrapf(err, errors.ErrFileWrite, "can't write %s", opts.OutputFile)
	}

	logger.Info().
		Str("output", opts.OutputFile).
		Int("entries", dir.Len()).
		Int("bytes", len(data)).
		Str("checksum", hashutil.Checksum(data)).
		Msg("Icon written")
	reporter.Success(fmt.Sprintf("Created %s with %d images.", filepath.Base(opts.OutputFile), dir.Len()))

	return dir.Len(), nil
}

// readEntry loads one size. ok is false when the size is skipped; err is
// only set for failures that abort the run.
func readEntry(fsys filesystem.FS, path, name string, size naming.Size, opts EncodeOptions, reporter ui.Reporter) (ico.Entry, bool, error) {
	logger := logging.GetLogger("convert.encode")

	file, err := fsys.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Trace().Str("file", name).Msg("Size not present")
			return ico.Entry{}, false, nil
		}
		logger.Warn().Err(err).Str("file", name).Msg("Can't open input")
		reporter.Warn(fmt.Sprintf("Can't open %s: %v", name, err))
		return ico.Entry{}, false, nil
	}
	defer func() { _ = file.Close() }()

	img, err := png.Decode(file)
	if err != nil {
		if opts.SkipUndecodable {
			logger.Warn().Err(err).Str("file", name).Msg("Skipping undecodable input")
			reporter.Warn(fmt.Sprintf("Can't decode %s: %v", name, err))
			return ico.Entry{}, false, nil
		}
		return ico.Entry{}, false, errors.Wrapf(err, errors.ErrEntryDecode, "can't decode %s", name).
			WithDetail("file", path)
	}

	b := img.Bounds()
	if b.Dx() != int(size) || b.Dy() != int(size) {
		logger.Warn().
			Str("file", name).
			Int("width", b.Dx()).
			Int("height", b.Dy()).
			Uint32("expected", uint32(size)).
			Msg("Dimension mismatch")
		reporter.Warn(fmt.Sprintf("%s must be %d×%d px, but is %d×%d px instead.", name, size, size, b.Dx(), b.Dy()))
		return ico.Entry{}, false, nil
	}

	entry, err := ico.NewPNGEntry(img, opts.Compression)
	if err != nil {
		return ico.Entry{}, false, errors.Wrapf(err, errors.ErrContainerEncode, "can't encode %s", name)
	}
	return entry, true, nil
}
