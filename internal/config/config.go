// Package config loads the CLI settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/badele/multisplit/internal/charset"
	"github.com/badele/multisplit/internal/exporter"
	"github.com/badele/multisplit/internal/logger"
	"github.com/badele/multisplit/internal/splitter"
	"github.com/badele/multisplit/internal/types"
)

const DefaultPreset = "whitespace"

// BuiltinPresets are always available; a preset of the same name in the
// config file replaces them. Values use Go escapes.
var BuiltinPresets = map[string][]string{
	"whitespace": {" ", `\t`, `\n`, `\r`},
	"csv":        {",", ";"},
	"path":       {"/", `\\`},
	"lines":      {`\r\n`, `\n`, `\r`},
}

type Config struct {
	Delimiters     []string             `yaml:"delimiters"`
	Preset         string               `yaml:"preset"`
	Presets        map[string][]string  `yaml:"presets"`
	Format         string               `yaml:"format"`
	Join           *string              `yaml:"join"`
	Encoding       string               `yaml:"encoding"`
	OutputEncoding string               `yaml:"output_encoding"`
	Width          int                  `yaml:"width"`
	Logging        logger.LoggingConfig `yaml:"logging"`
}

func Default() *Config {
	presets := make(map[string][]string, len(BuiltinPresets))
	for name, delims := range BuiltinPresets {
		presets[name] = append([]string(nil), delims...)
	}

	return &Config{
		Presets:        presets,
		Format:         exporter.FormatLines,
		Join:           ptr(" "),
		Encoding:       charset.UTF8,
		OutputEncoding: charset.UTF8,
		Width:          80,
		Logging: logger.LoggingConfig{
			Level:      "warn",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load reads path over the defaults. Presets from the file are merged with
// the builtin ones. The result is not validated: callers layer their own
// overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.merge(&fileCfg)

	return cfg, nil
}

func (c *Config) merge(other *Config) {
	if len(other.Delimiters) > 0 {
		c.Delimiters = other.Delimiters
	}
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for name, delims := range other.Presets {
		c.Presets[name] = delims
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Join != nil {
		c.Join = other.Join
	}
	if other.Encoding != "" {
		c.Encoding = other.Encoding
	}
	if other.OutputEncoding != "" {
		c.OutputEncoding = other.OutputEncoding
	}
	if other.Width != 0 {
		c.Width = other.Width
	}
	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.Path != "" {
		c.Logging.Path = other.Logging.Path
	}
	if other.Logging.MaxSize != 0 {
		c.Logging.MaxSize = other.Logging.MaxSize
	}
	if other.Logging.MaxBackups != 0 {
		c.Logging.MaxBackups = other.Logging.MaxBackups
	}
	if other.Logging.MaxAge != 0 {
		c.Logging.MaxAge = other.Logging.MaxAge
	}
	c.Logging.Compress = c.Logging.Compress || other.Logging.Compress
}

// Validate reports every problem found, not only the first one.
func (c *Config) Validate() error {
	var result *multierror.Error

	if !exporter.IsFormat(c.Format) {
		result = multierror.Append(result, fmt.Errorf("unknown format %q (want one of %v)", c.Format, exporter.Formats()))
	}

	if !charset.IsSupported(c.Encoding) {
		result = multierror.Append(result, fmt.Errorf("unsupported encoding %q", c.Encoding))
	}

	if !charset.IsSupported(c.OutputEncoding) {
		result = multierror.Append(result, fmt.Errorf("unsupported output encoding %q", c.OutputEncoding))
	}

	if c.Width <= 0 {
		result = multierror.Append(result, fmt.Errorf("width must be positive, got %d", c.Width))
	}

	if c.Join != nil && *c.Join != "" {
		if _, err := splitter.ParsePattern(*c.Join); err != nil {
			result = multierror.Append(result, fmt.Errorf("join: %w", err))
		}
	}

	for _, name := range c.PresetNames() {
		if len(c.Presets[name]) == 0 {
			result = multierror.Append(result, fmt.Errorf("preset %q: %w", name, types.ErrEmptyDelimiterSet))
			continue
		}
		if _, err := splitter.ParsePatterns(c.Presets[name]); err != nil {
			result = multierror.Append(result, fmt.Errorf("preset %q: %w", name, err))
		}
	}

	if c.Preset != "" {
		if _, ok := c.Presets[c.Preset]; !ok {
			result = multierror.Append(result, fmt.Errorf("unknown preset %q", c.Preset))
		}
	}

	if len(c.Delimiters) > 0 {
		if _, err := splitter.ParsePatterns(c.Delimiters); err != nil {
			result = multierror.Append(result, fmt.Errorf("delimiters: %w", err))
		}
	}

	return result.ErrorOrNil()
}

func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveDelimiters picks, in order, the explicit delimiters, the selected
// preset, then the default preset.
func (c *Config) ResolveDelimiters() ([]types.Pattern, error) {
	if len(c.Delimiters) > 0 {
		return splitter.ParsePatterns(c.Delimiters)
	}

	name := c.Preset
	if name == "" {
		name = DefaultPreset
	}

	delims, ok := c.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}

	return splitter.ParsePatterns(delims)
}

// JoinText returns the join separator with escapes resolved. An explicit
// empty join concatenates the tokens.
func (c *Config) JoinText() (string, error) {
	if c.Join == nil || *c.Join == "" {
		return "", nil
	}
	p, err := splitter.ParsePattern(*c.Join)
	if err != nil {
		return "", err
	}
	return p.Text(), nil
}

func ptr[T any](v T) *T {
	return &v
}
