package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://api.whitehouse.gov/v1", cfg.BaseURL)
	assert.Equal(t, 100, cfg.Limit)
	assert.Equal(t, 10000, cfg.SignatureFloor)
	assert.Equal(t, 30*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, "petitions/dev", cfg.UserAgent)
	assert.Empty(t, cfg.LogDir)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "classic", cfg.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", input: `"5s"`, want: 5 * time.Second},
		{name: "compound", input: `"1m30s"`, want: 90 * time.Second},
		{name: "invalid", input: `"soon"`, wantErr: true},
		{name: "bare seconds", input: `42`, want: 42 * time.Second},
		{name: "float seconds", input: `1.5`, wantErr: true},
		{name: "list", input: `[1, 2]`, wantErr: true},
		{name: "map", input: `{s: 1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := yaml.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Duration)
		})
	}
}

func TestDuration_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(Duration{10 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, "10s\n", string(out))
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yml")
	content := `
base_url: "http://localhost:8080/v1"
limit: 25
signature_floor: 500
timeout: "3s"
log_dir: "/tmp/petitions-logs"
verbose: true
theme: neon
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, loaded, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, loaded)
	assert.Equal(t, "http://localhost:8080/v1", cfg.BaseURL)
	assert.Equal(t, 25, cfg.Limit)
	assert.Equal(t, 500, cfg.SignatureFloor)
	assert.Equal(t, 3*time.Second, cfg.Timeout.Duration)
	assert.Equal(t, "/tmp/petitions-logs", cfg.LogDir)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "neon", cfg.Theme)
	// Unset keys keep defaults.
	assert.Equal(t, "petitions/dev", cfg.UserAgent)
}

func TestLoad_Discover(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "petitions.yaml"), []byte("limit: 7\n"), 0o600))
	t.Chdir(dir)

	cfg, loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "petitions.yaml", loaded)
	assert.Equal(t, 7, cfg.Limit)
}

func TestLoad_NoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, loaded, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, loaded)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(filepath.Join(dir, "missing.yml"))
	assert.ErrorContains(t, err, "read config")

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("timeout: [1, 2]\n"), 0o600))
	_, _, err = Load(bad)
	assert.ErrorContains(t, err, "parse config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvBaseURL, " http://mirror.local/v1 ")
	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "http://mirror.local/v1", cfg.BaseURL)

	t.Setenv(EnvBaseURL, "")
	cfg = Default()
	cfg.ApplyEnv()
	assert.Equal(t, Default().BaseURL, cfg.BaseURL)
}

func TestMerge(t *testing.T) {
	cfg := Default()
	base := "http://flag.local"
	verbose := true
	cfg.Merge(CLIOverrides{BaseURL: &base, Verbose: &verbose})

	assert.Equal(t, "http://flag.local", cfg.BaseURL)
	assert.True(t, cfg.Verbose)
	assert.Empty(t, cfg.LogDir)
	assert.Equal(t, "classic", cfg.Theme)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "ftp scheme", mutate: func(c *Config) { c.BaseURL = "ftp://x/v1" }, wantErr: "base_url: scheme"},
		{name: "no host", mutate: func(c *Config) { c.BaseURL = "http:///v1" }, wantErr: "base_url: missing host"},
		{name: "bad url", mutate: func(c *Config) { c.BaseURL = "http://[::1" }, wantErr: "base_url: invalid URL"},
		{name: "zero limit", mutate: func(c *Config) { c.Limit = 0 }, wantErr: "limit: must be positive"},
		{name: "negative floor", mutate: func(c *Config) { c.SignatureFloor = -1 }, wantErr: "signature_floor"},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = Duration{} }, wantErr: "timeout: must be positive"},
		{name: "unknown theme", mutate: func(c *Config) { c.Theme = "sepia" }, wantErr: "theme: must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Limit = -5
	cfg.Theme = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
	assert.Contains(t, err.Error(), "theme")
}

func TestValidate_ThemeCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Theme = "MONO"
	assert.NoError(t, cfg.Validate())
}
