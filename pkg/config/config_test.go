package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromReader_Defaults(t *testing.T) {
	cfg, err := LoadFromReader("yaml", []byte(""))
	require.NoError(t, err)

	assert.Equal(t, DefaultTargetBits, cfg.Codec.TargetBits)
	assert.Equal(t, "", cfg.Codec.CommandFile)
	assert.Equal(t, 256, cfg.Codec.CacheSize)
	assert.Equal(t, "./output", cfg.Output.Dir)
	assert.False(t, cfg.Output.Compress)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.OutputPath)
}

func TestLoadFromReader_Custom(t *testing.T) {
	content := []byte(`
codec:
  target_bits: 24
  command_file: ./commands.txt
  cache_size: 64
output:
  dir: /tmp/reports
  compress: true
log:
  level: debug
`)
	cfg, err := LoadFromReader("yaml", content)
	require.NoError(t, err)

	assert.Equal(t, 24, cfg.Codec.TargetBits)
	assert.Equal(t, "./commands.txt", cfg.Codec.CommandFile)
	assert.Equal(t, 64, cfg.Codec.CacheSize)
	assert.Equal(t, "/tmp/reports", cfg.Output.Dir)
	assert.True(t, cfg.Output.Compress)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromReader_StorageAndHistory(t *testing.T) {
	content := []byte(`
storage:
  enabled: true
  type: cos
  bucket: reports-1250000000
  region: ap-guangzhou
  secret_id: id
  secret_key: key
history:
  enabled: true
  type: sqlite
  path: /var/lib/codec/history.db
`)
	cfg, err := LoadFromReader("yaml", content)
	require.NoError(t, err)

	assert.True(t, cfg.Storage.Enabled)
	assert.Equal(t, "cos", cfg.Storage.Type)
	assert.Equal(t, "https", cfg.Storage.Scheme)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/var/lib/codec/history.db", cfg.History.Path)
	assert.Equal(t, 10, cfg.History.MaxConns)
}

func TestLoadFromReader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero target bits", "codec:\n  target_bits: 0\n"},
		{"negative cache size", "codec:\n  cache_size: -1\n"},
		{"empty output dir", "output:\n  dir: \"\"\n"},
		{"unsupported storage type", "storage:\n  enabled: true\n  type: s3\n"},
		{"cos without credentials", "storage:\n  enabled: true\n  type: cos\n  bucket: b\n  region: r\n"},
		{"unsupported history type", "history:\n  enabled: true\n  type: oracle\n"},
		{"mysql history without host", "history:\n  enabled: true\n  type: mysql\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader("yaml", []byte(tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTargetBits, cfg.Codec.TargetBits)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Codec:  CodecConfig{TargetBits: 32, CacheSize: 256},
		Output: OutputConfig{Dir: "./output"},
	}
	assert.NoError(t, cfg.Validate())

	cfg.Codec.TargetBits = 0
	assert.Error(t, cfg.Validate())
}
