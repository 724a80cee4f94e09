package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Redundancy/go-rollsum/util/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollsum.yaml")
	yaml := "family: adler32\nwidth: 4096\nformat: zstd\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "adler32", c.Family)
	assert.Equal(t, 4096, c.Width)
	assert.Equal(t, sources.FormatZstd, c.Format)
	assert.Equal(t, "debug", c.LogLevel)
	assert.EqualValues(t, 1, c.Every)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollsum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 4096\n"), 0o600))
	t.Setenv("ROLLSUM_WIDTH", "128")
	t.Setenv("ROLLSUM_FAMILY", "buzhash64")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 128, c.Width)
	assert.Equal(t, "buzhash64", c.Family)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":     func(c *Config) { c.Width = 0 },
		"unknown family": func(c *Config) { c.Family = "md5" },
		"empty family":   func(c *Config) { c.Family = "" },
		"bad format":     func(c *Config) { c.Format = "rar" },
		"zero every":     func(c *Config) { c.Every = 0 },
		"negative limit": func(c *Config) { c.Limit = -1 },
		"bad log level":  func(c *Config) { c.LogLevel = "loud" },
	}

	for name, breakIt := range cases {
		t.Run(name, func(t *testing.T) {
			c := Default()
			breakIt(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}
