package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes every environment override.
const EnvPrefix = "XSLTVIEW_"

// Config is the merged configuration.
type Config struct {
	Refresh Refresh `koanf:"refresh" yaml:"refresh"`
	Recent  Recent  `koanf:"recent" yaml:"recent"`
	Engine  Engine  `koanf:"engine" yaml:"engine"`
	Output  Output  `koanf:"output" yaml:"output"`
}

// Refresh controls the reload debounce.
type Refresh struct {
	Delay time.Duration `koanf:"delay" yaml:"delay"`
}

// Recent controls the recent stylesheet list.
type Recent struct {
	Max  int    `koanf:"max" yaml:"max"`
	File string `koanf:"file" yaml:"file"`
}

// Engine configures the external XSLT processor.
type Engine struct {
	Command string        `koanf:"command" yaml:"command"`
	Args    []string      `koanf:"args" yaml:"args"`
	Timeout time.Duration `koanf:"timeout" yaml:"timeout"`
}

// Output configures engine-chosen destinations.
type Output struct {
	TempDir string `koanf:"temp_dir" yaml:"temp_dir"`
}

// Options select the files Load reads.
type Options struct {
	// Paths locates the user config file. Nil means paths.New().
	Paths paths.Paths
	// File is an extra config file, typically from --config.
	File string
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// Load merges all configuration layers.
func Load(opts Options) (*Config, error) {
	p := opts.Paths
	if p == nil {
		p = paths.New()
	}
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config, first match wins
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(p.ConfigDir(), name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		break
	}

	// 3. Explicit file
	if opts.File != "" {
		path := paths.ExpandHome(opts.File)
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File)
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := postProcess(&cfg, p); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func postProcess(cfg *Config, p paths.Paths) error {
	if cfg.Refresh.Delay < 0 {
		return errors.Newf(errors.ErrConfigValid, "refresh.delay must not be negative, got %s", cfg.Refresh.Delay)
	}
	if cfg.Recent.Max <= 0 {
		return errors.Newf(errors.ErrConfigValid, "recent.max must be positive, got %d", cfg.Recent.Max)
	}
	if cfg.Engine.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "engine.timeout must not be negative, got %s", cfg.Engine.Timeout)
	}
	cfg.Engine.Command = strings.TrimSpace(cfg.Engine.Command)
	if cfg.Engine.Command == "" {
		return errors.New(errors.ErrConfigValid, "engine.command must be set")
	}

	if cfg.Recent.File == "" {
		cfg.Recent.File = p.RecentFilePath()
	}
	cfg.Recent.File = paths.ExpandHome(cfg.Recent.File)
	if cfg.Output.TempDir != "" {
		cfg.Output.TempDir = paths.ExpandHome(cfg.Output.TempDir)
	}
	return nil
}
