package convert

import (
	"github.com/arthur-debert/pngico/pkg/config"
	"github.com/arthur-debert/pngico/pkg/errors"
	"github.com/arthur-debert/pngico/pkg/ui"
)

// NewEncodeOptions fills EncodeOptions from the configuration
func NewEncodeOptions(cfg *config.Config, inputDir, outputFile string, reporter ui.Reporter) (EncodeOptions, error) {
	sizes, err := cfg.SizeSet()
	if err != nil {
		return EncodeOptions{}, errors.Wrap(err, errors.ErrConfigValid, "invalid sizes")
	}
	level, err := cfg.CompressionLevel()
	if err != nil {
		return EncodeOptions{}, errors.Wrap(err, errors.ErrConfigValid, "invalid compression")
	}

	return EncodeOptions{
		InputDir:        inputDir,
		OutputFile:      outputFile,
		Sizes:           sizes,
		Compression:     level,
		SkipUndecodable: cfg.Encode.SkipUndecodable,
		Reporter:        reporter,
	}, nil
}

// NewDecodeOptions fills DecodeOptions from the configuration
func NewDecodeOptions(cfg *config.Config, inputFile, outputDir string, reporter ui.Reporter) (DecodeOptions, error) {
	sizes, err := cfg.SizeSet()
	if err != nil {
		return DecodeOptions{}, errors.Wrap(err, errors.ErrConfigValid, "invalid sizes")
	}

	return DecodeOptions{
		InputFile:        inputFile,
		OutputDir:        outputDir,
		Sizes:            sizes,
		SkipUndecodable:  cfg.Decode.SkipUndecodable,
		DetectCollisions: cfg.Decode.DetectCollisions,
		RequireEntries:   cfg.Decode.RequireEntries,
		Reporter:         reporter,
	}, nil
}
