// Package config loads bmecat.yaml and environment overrides and turns them
// into bmecat.Options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type SpoolConfig struct {
	Threshold int64  `yaml:"threshold"`
	Dir       string `yaml:"dir,omitempty"`
}

type OutputConfig struct {
	Encoding      string `yaml:"encoding,omitempty"`
	Indent        int    `yaml:"indent,omitempty"`
	GeneratorInfo string `yaml:"generator_info,omitempty"`
}

type Config struct {
	Workers int               `yaml:"workers"`
	Version string            `yaml:"version,omitempty"`
	Spool   SpoolConfig       `yaml:"spool"`
	Output  OutputConfig      `yaml:"output"`
	Units   map[string]string `yaml:"units"`
}

const ConfigFileName = "bmecat.yaml"

// EnvPrefix prefixes every environment override, e.g. BMECAT_WORKERS.
const EnvPrefix = "BMECAT_"

// Load reads ConfigFileName from sourcePath.
func Load(sourcePath string) (*Config, error) {
	return LoadFile(filepath.Join(sourcePath, ConfigFileName))
}

// LoadFile reads a config file at an explicit path.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, bmecat.ErrInvalidConfig)
	}
	return &cfg, nil
}

// Resolve builds the effective configuration: the file at configPath (or
// bmecat.yaml in the working directory when configPath is empty), then
// variables from .env, then the process environment. A missing default file
// is not an error; a missing explicit file is.
func Resolve(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = ConfigFileName
	}

	cfg, err := LoadFile(configPath)
	switch {
	case errors.Is(err, ErrConfigNotFound) && !explicit:
		cfg = &Config{}
	case err != nil:
		return nil, err
	}

	// .env never overrides variables already set in the process.
	_ = godotenv.Load()

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays BMECAT_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error

	if v, ok := lookup(EnvPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sWORKERS=%q is not a number: %w", EnvPrefix, v, bmecat.ErrInvalidConfig))
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvPrefix + "VERSION"); ok {
		c.Version = v
	}
	if v, ok := lookup(EnvPrefix + "SPOOL_THRESHOLD"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSPOOL_THRESHOLD=%q is not a number: %w", EnvPrefix, v, bmecat.ErrInvalidConfig))
		}
		c.Spool.Threshold = n
	}
	if v, ok := lookup(EnvPrefix + "SPOOL_DIR"); ok {
		c.Spool.Dir = v
	}
	if v, ok := lookup(EnvPrefix + "OUTPUT_ENCODING"); ok {
		c.Output.Encoding = v
	}
	if v, ok := lookup(EnvPrefix + "OUTPUT_INDENT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sOUTPUT_INDENT=%q is not a number: %w", EnvPrefix, v, bmecat.ErrInvalidConfig))
		}
		c.Output.Indent = n
	}
	if v, ok := lookup(EnvPrefix + "GENERATOR_INFO"); ok {
		c.Output.GeneratorInfo = v
	}

	return errors.Join(errs...)
}

// Validate checks every field and reports all violations at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers cannot be negative: %w", bmecat.ErrInvalidConfig))
	}
	if c.Spool.Threshold < 0 {
		errs = append(errs, fmt.Errorf("spool.threshold cannot be negative: %w", bmecat.ErrInvalidConfig))
	}
	if c.Spool.Dir != "" {
		if info, err := os.Stat(c.Spool.Dir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Errorf("spool.dir %q is not a directory: %w", c.Spool.Dir, bmecat.ErrInvalidConfig))
		}
	}
	if c.Version != "" {
		if _, err := bmecat.ParseVersion(c.Version); err != nil {
			errs = append(errs, fmt.Errorf("version: %v: %w", err, bmecat.ErrInvalidConfig))
		}
	}

	switch strings.ToLower(c.Output.Encoding) {
	case "", bmecat.EncodingUTF8, bmecat.EncodingISO8859_1:
	default:
		errs = append(errs, fmt.Errorf("output.encoding must be %s or %s, got %q: %w",
			bmecat.EncodingUTF8, bmecat.EncodingISO8859_1, c.Output.Encoding, bmecat.ErrInvalidConfig))
	}

	table := bmecat.DefaultQuantityTable()
	for alias, code := range c.Units {
		if table.Lookup(code) == bmecat.QuantityUnknown {
			errs = append(errs, fmt.Errorf("units.%s: %q is not a UN/ECE Recommendation 20 code: %w",
				alias, code, bmecat.ErrInvalidConfig))
		}
	}

	return errors.Join(errs...)
}

// Options converts the configuration into load and save options.
func (c *Config) Options(logger bmecat.Logger) bmecat.Options {
	opts := bmecat.Options{
		Logger:         logger,
		Workers:        c.Workers,
		SpoolThreshold: c.Spool.Threshold,
		SpoolDir:       c.Spool.Dir,
		Version:        c.Version,
		Encoding:       c.Output.Encoding,
		Indent:         c.Output.Indent,
		GeneratorInfo:  c.Output.GeneratorInfo,
	}
	if len(c.Units) > 0 {
		opts.QuantityConverter = NewUnitAliases(c.Units)
	}
	return opts
}
