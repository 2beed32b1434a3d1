package config

import (
	"fmt"
	"image/png"
	"strings"

	"github.com/arthur-debert/pngico/pkg/naming"
)

// Config is the effective pngico configuration
type Config struct {
	Sizes  []int        `koanf:"sizes" toml:"sizes"`
	Output OutputConfig `koanf:"output" toml:"output"`
	Encode EncodeConfig `koanf:"encode" toml:"encode"`
	Decode DecodeConfig `koanf:"decode" toml:"decode"`
}

// OutputConfig controls how progress is shown
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// EncodeConfig controls PNG folder to ICO conversion
type EncodeConfig struct {
	Compression     string `koanf:"compression" toml:"compression"`
	SkipUndecodable bool   `koanf:"skip_undecodable" toml:"skip_undecodable"`
}

// DecodeConfig controls ICO to PNG folder extraction
type DecodeConfig struct {
	SkipUndecodable  bool `koanf:"skip_undecodable" toml:"skip_undecodable"`
	DetectCollisions bool `koanf:"detect_collisions" toml:"detect_collisions"`
	RequireEntries   bool `koanf:"require_entries" toml:"require_entries"`
}

var compressionLevels = map[string]png.CompressionLevel{
	"default":          png.DefaultCompression,
	"none":             png.NoCompression,
	"best-speed":       png.BestSpeed,
	"best-compression": png.BestCompression,
}

// SizeSet returns the configured icon sizes
func (c *Config) SizeSet() (naming.SizeSet, error) {
	return naming.ParseSizes(c.Sizes)
}

// CompressionLevel returns the PNG compression level for new entries
func (c *Config) CompressionLevel() (png.CompressionLevel, error) {
	level, ok := compressionLevels[strings.ToLower(c.Encode.Compression)]
	if !ok {
		return png.DefaultCompression, fmt.Errorf("unknown compression %q", c.Encode.Compression)
	}
	return level, nil
}

// Validate checks values that cannot be expressed by the schema alone
func (c *Config) Validate() error {
	if _, err := c.SizeSet(); err != nil {
		return fmt.Errorf("sizes: %w", err)
	}
	if _, err := c.CompressionLevel(); err != nil {
		return fmt.Errorf("encode.compression: %w", err)
	}
	return nil
}
