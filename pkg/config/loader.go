package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pngerrors "github.com/arthur-debert/pngico/pkg/errors"
)

// EnvPrefix is the prefix of environment overrides, e.g. PNGICO_SIZES
const EnvPrefix = "PNGICO_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions selects the optional configuration sources
type LoadOptions struct {
	// File is an explicit config file; it must exist when set
	File string
	// Overrides are applied last, keyed by dotted path ("decode.require_entries")
	Overrides map[string]interface{}
}

// Load builds the configuration from, in increasing priority: embedded
// defaults, the user config file, PNGICO_* environment variables and
// the given overrides.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, pngerrors.Wrap(err, pngerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	path := opts.File
	if path == "" {
		path = findUserConfig()
	} else if _, err := os.Stat(path); err != nil {
		return nil, pngerrors.Wrapf(err, pngerrors.ErrConfigLoad, "config file %s", path)
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, pngerrors.Wrapf(err, pngerrors.ErrConfigLoad, "failed to load config from %s", path)
		}
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, pngerrors.Wrap(err, pngerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, pngerrors.Wrap(err, pngerrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				stringToWeakSliceHook(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, pngerrors.Wrap(err, pngerrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, pngerrors.Wrap(err, pngerrors.ErrConfigValid, "invalid configuration")
	}

	return &cfg, nil
}

// Default returns the embedded defaults only
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal defaults: %w", err)
	}
	return &cfg, nil
}

// UserConfigDir is where the user config file is looked up
func UserConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "pngico")
}

func findUserConfig() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(UserConfigDir(), name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, pngerrors.Newf(pngerrors.ErrConfigLoad, "unsupported config file type: %s", path)
	}
}

// stringToWeakSliceHook splits "16, 32" into its elements for slice
// targets other than []string, such as sizes. The weak decoder converts
// each element to the slice's element type.
func stringToWeakSliceHook(sep string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}

// envKey maps PNGICO_DECODE_REQUIRE_ENTRIES to decode.require_entries.
// Only the first underscore separates sections; keys keep theirs.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}
