package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bmecat/pkg/bmecat"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `workers: 4
version: "1.2"

spool:
  threshold: 1048576
  dir: /var/tmp

output:
  encoding: iso-8859-1
  indent: 4
  generator_info: nightly export

units:
  Stück: C62
  meter: MTR
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "1.2", cfg.Version)
	assert.Equal(t, int64(1048576), cfg.Spool.Threshold)
	assert.Equal(t, "/var/tmp", cfg.Spool.Dir)
	assert.Equal(t, "iso-8859-1", cfg.Output.Encoding)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.Equal(t, "nightly export", cfg.Output.GeneratorInfo)
	assert.Equal(t, "C62", cfg.Units["Stück"])
	assert.Equal(t, "MTR", cfg.Units["meter"])
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `workers: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, int64(0), cfg.Spool.Threshold)
	assert.Empty(t, cfg.Output.Encoding)
	assert.Empty(t, cfg.Units)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, bmecat.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BMECAT_WORKERS":         "8",
		"BMECAT_VERSION":         "2005",
		"BMECAT_SPOOL_THRESHOLD": "2048",
		"BMECAT_SPOOL_DIR":       "/scratch",
		"BMECAT_OUTPUT_ENCODING": "utf-8",
		"BMECAT_OUTPUT_INDENT":   "-1",
		"BMECAT_GENERATOR_INFO":  "env",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg := &Config{Workers: 1, Output: OutputConfig{Encoding: "iso-8859-1"}}
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "2005", cfg.Version)
	assert.Equal(t, int64(2048), cfg.Spool.Threshold)
	assert.Equal(t, "/scratch", cfg.Spool.Dir)
	assert.Equal(t, "utf-8", cfg.Output.Encoding)
	assert.Equal(t, -1, cfg.Output.Indent)
	assert.Equal(t, "env", cfg.Output.GeneratorInfo)
}

func TestApplyEnv_InvalidNumbers(t *testing.T) {
	env := map[string]string{
		"BMECAT_WORKERS":         "many",
		"BMECAT_SPOOL_THRESHOLD": "big",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	err := (&Config{}).ApplyEnv(lookup)
	require.Error(t, err)
	assert.ErrorIs(t, err, bmecat.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "BMECAT_WORKERS")
	assert.Contains(t, err.Error(), "BMECAT_SPOOL_THRESHOLD")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero value", cfg: Config{}},
		{name: "negative workers", cfg: Config{Workers: -1}, wantErr: "workers"},
		{name: "negative threshold", cfg: Config{Spool: SpoolConfig{Threshold: -5}}, wantErr: "spool.threshold"},
		{name: "missing spool dir", cfg: Config{Spool: SpoolConfig{Dir: "/definitely/not/here"}}, wantErr: "spool.dir"},
		{name: "bad version", cfg: Config{Version: "3.0"}, wantErr: "version"},
		{name: "bad encoding", cfg: Config{Output: OutputConfig{Encoding: "utf-16"}}, wantErr: "output.encoding"},
		{name: "bad unit", cfg: Config{Units: map[string]string{"stk": "PIECES"}}, wantErr: "units.stk"},
		{name: "good unit", cfg: Config{Units: map[string]string{"stk": "c62"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, bmecat.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	cfg := Config{Workers: -1, Output: OutputConfig{Encoding: "ebcdic"}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
	assert.Contains(t, err.Error(), "output.encoding")
}

func TestResolve_DefaultFileMissingIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BMECAT_WORKERS", "3")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
}

func TestResolve_ExplicitFileMissing(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestResolve_DotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BMECAT_GENERATOR_INFO=from dotenv\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output:\n  generator_info: from yaml\n"), 0644))
	t.Setenv("BMECAT_GENERATOR_INFO", "from process")

	cfg, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "from process", cfg.Output.GeneratorInfo)
}

func TestResolve_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: -2\n"), 0644))

	_, err := Resolve(path)
	assert.ErrorIs(t, err, bmecat.ErrInvalidConfig)
}

func TestOptions(t *testing.T) {
	cfg := Config{
		Workers: 3,
		Version: "1.2",
		Spool:   SpoolConfig{Threshold: 10, Dir: "/tmp"},
		Output:  OutputConfig{Encoding: "iso-8859-1", Indent: -1, GeneratorInfo: "g"},
		Units:   map[string]string{"Stück": "C62"},
	}

	opts := cfg.Options(nil)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, "1.2", opts.Version)
	assert.Equal(t, int64(10), opts.SpoolThreshold)
	assert.Equal(t, "/tmp", opts.SpoolDir)
	assert.Equal(t, "iso-8859-1", opts.Encoding)
	assert.Equal(t, -1, opts.Indent)
	assert.Equal(t, "g", opts.GeneratorInfo)
	require.NotNil(t, opts.QuantityConverter)

	q, ok := opts.QuantityConverter.Convert("  STÜCK ")
	assert.True(t, ok)
	assert.Equal(t, bmecat.QuantityCode("C62"), q)

	assert.Nil(t, (&Config{}).Options(nil).QuantityConverter)
}

func TestUnitAliases(t *testing.T) {
	aliases := NewUnitAliases(map[string]string{"Meter": "mtr", "bogus": "NOPE"})

	q, ok := aliases.Convert("meter")
	assert.True(t, ok)
	assert.Equal(t, bmecat.QuantityCode("MTR"), q)

	_, ok = aliases.Convert("bogus")
	assert.False(t, ok, "aliases to unknown codes are dropped")

	_, ok = aliases.Convert("kg")
	assert.False(t, ok)
}
