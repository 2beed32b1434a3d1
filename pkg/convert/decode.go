package convert

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"path/filepath"

	"github.com/arthur-debert/pngico/pkg/errors"
	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/arthur-debert/pngico/pkg/ico"
	"github.com/arthur-debert/pngico/pkg/internal/hashutil"
	"github.com/arthur-debert/pngico/pkg/logging"
	"github.com/arthur-debert/pngico/pkg/naming"
	"github.com/arthur-debert/pngico/pkg/ui"
)

// DecodeOptions configures ExtractPNGs
type DecodeOptions struct {
	InputFile string
	OutputDir string
	Sizes     naming.SizeSet
	// SkipUndecodable turns entry decode failures into warnings
	SkipUndecodable bool
	// DetectCollisions skips entries whose name was already written in
	// this run instead of overwriting the earlier file
	DetectCollisions bool
	// RequireEntries fails the run when no file was written
	RequireEntries bool
	Reporter       ui.Reporter
}

// ExtractPNGs writes every entry of the icon InputFile as a PNG file in
// OutputDir, creating the directory when needed. It returns the number of
// files written.
//
// A malformed container, an entry that is not a decodable PNG (unless
// SkipUndecodable is set) and a failed PNG write abort the run. An output
// file that cannot be created is reported and skipped.
func ExtractPNGs(fsys filesystem.FS, opts DecodeOptions) (int, error) {
	logger := logging.GetLogger("convert.decode")
	defer logging.LogOperationStart(logger, "extract_pngs")()

	reporter := opts.Reporter
	if reporter == nil {
		reporter = ui.Discard
	}
	sizes := opts.Sizes
	if sizes.Len() == 0 {
		sizes = naming.CanonicalSizes()
	}

	data, err := fsys.ReadFile(opts.InputFile)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileRead, "Can't open input .ico file %s", opts.InputFile)
	}
	dir, err := ico.Parse(data)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrContainerParse, "Input file %s is invalid", opts.InputFile)
	}
	logger.Debug().Str("input", opts.InputFile).Int("entries", dir.Len()).Msg("Icon parsed")

	if err := fsys.MkdirAll(opts.OutputDir, 0755); err != nil {
		return 0, errors.Wrapf(err, errors.ErrDirCreate, "Can't create output folder %s", opts.OutputDir)
	}

	written := 0
	seen := make(map[string]bool)
	for i, entry := range dir.Entries() {
		img, err := entry.Decode()
		if err != nil {
			if opts.SkipUndecodable {
				logger.Warn().Err(err).Int("entry", i).Msg("Skipping undecodable entry")
				reporter.Warn(fmt.Sprintf("Can't decode entry %d: %v", i, err))
				continue
			}
			return written, errors.Wrapf(err, errors.ErrEntryDecode, "Can't decode image %d", i).
				WithDetail("entry", i)
		}

		name := sizes.EntryName(entry.Width, entry.Height, entry.BitsPerPixel)
		if opts.DetectCollisions && seen[name] {
			logger.Warn().Str("file", name).Int("entry", i).Msg("Name collision")
			reporter.Warn(fmt.Sprintf("Can't create %s: already extracted from an earlier entry", name))
			continue
		}
		path := filepath.Join(opts.OutputDir, name)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return written, errors.Wrapf(err, errors.ErrFileWrite, "Can't write PNG file %s", name)
		}

		file, err := fsys.Create(path)
		if err != nil {
			logger.Warn().Err(err).Str("file", name).Msg("Can't create output")
			reporter.Warn(fmt.Sprintf("Can't create %s: %v", name, err))
			continue
		}
		if err := writeAndClose(file, buf.Bytes()); err != nil {
			return written, errors.Wrapf(err, errors.ErrFileWrite, "Can't write PNG file %s", name).
				WithDetail("file", path)
		}

		seen[name] = true
		written++
		logger.Info().
			Str("file", name).
			Int("entry", i).
			Str("checksum", hashutil.Checksum(buf.Bytes())).
			Msg("Extracted entry")
		reporter.Info(fmt.Sprintf("Extracted %s", name))
	}

	if written == 0 && opts.RequireEntries {
		return 0, errors.Newf(errors.ErrEmptyResult, "No images could be extracted from %s.", opts.InputFile).
			WithDetail("entries", dir.Len())
	}

	reporter.Success(fmt.Sprintf("Extracted %d of %d images to %s.", written, dir.Len(), opts.OutputDir))
	return written, nil
}

func writeAndClose(w io.WriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
