package config

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"

	"github.com/arthur-debert/bombuilder/pkg/collect"
	bomerrors "github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "BOMBUILDER_"

// ConfigFileNames are searched, in order, in the working directory.
var ConfigFileNames = []string{
	"bombuilder.toml",
	".bombuilder.toml",
	"bombuilder.yaml",
	".bombuilder.yaml",
	"bombuilder.yml",
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions controls Load.
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist.
	ConfigFile string
	// WorkDir is searched for ConfigFileNames when ConfigFile is empty.
	WorkDir string
	// Overrides are flag values keyed by config path ("bom.classifier").
	Overrides map[string]interface{}
	// Fs holds the config file. Defaults to the OS filesystem.
	Fs afero.Fs
}

// Load merges defaults, config file, environment and overrides, then
// unmarshals and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, bomerrors.Wrap(err, bomerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load config file if any
	path, err := findConfigFile(fs, opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, bomerrors.Wrapf(err, bomerrors.ErrConfigLoad, "failed to read config file %s", path).
				WithDetail("path", path)
		}
		if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
			return nil, bomerrors.Wrapf(err, bomerrors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Load env vars
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, bomerrors.Wrap(err, bomerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Load flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, bomerrors.Wrap(err, bomerrors.ErrConfigLoad, "failed to load flag overrides")
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
				stringToBreadthHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, bomerrors.Wrap(err, bomerrors.ErrConfigParse, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps BOMBUILDER_BOM_GROUP_ID to bom.group_id: the first segment
// is the section, the rest is the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + rest
}

func findConfigFile(fs afero.Fs, opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := fs.Stat(opts.ConfigFile); err != nil {
			return "", bomerrors.Wrapf(err, bomerrors.ErrConfigLoad, "config file %s not found", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}
	dir := opts.WorkDir
	if dir == "" {
		dir = "."
	}
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if exists, _ := afero.Exists(fs, path); exists {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, bomerrors.Newf(bomerrors.ErrConfigLoad, "unsupported config file type %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// stringToBreadthHookFunc decodes scope strings into collect.Breadth.
func stringToBreadthHookFunc() mapstructure.DecodeHookFuncType {
	breadthType := reflect.TypeOf(collect.BreadthNone)
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != breadthType || from.Kind() != reflect.String {
			return data, nil
		}
		b, err := collect.ParseBreadth(data.(string))
		if err != nil {
			return nil, fmt.Errorf("scope: %w", err)
		}
		return b, nil
	}
}
