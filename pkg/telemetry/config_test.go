package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearOtelEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OTEL_ENABLED",
		"OTEL_SERVICE_NAME",
		"OTEL_SERVICE_VERSION",
		"OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_EXPORTER_OTLP_PROTOCOL",
		"OTEL_EXPORTER_OTLP_HEADERS",
		"OTEL_EXPORTER_OTLP_INSECURE",
		"OTEL_TRACES_SAMPLER",
		"OTEL_TRACES_SAMPLER_ARG",
		"OTEL_RESOURCE_ATTRIBUTES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearOtelEnv(t)

	cfg := LoadFromEnv()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "telemetry-codec", cfg.ServiceName)
	assert.Equal(t, "unknown", cfg.ServiceVersion)
	assert.Equal(t, "grpc", cfg.Protocol)
	assert.Empty(t, cfg.Headers)
}

func TestLoadFromEnv_Enabled(t *testing.T) {
	clearOtelEnv(t)

	for _, value := range []string{"true", "TRUE", "True"} {
		t.Setenv("OTEL_ENABLED", value)
		assert.True(t, LoadFromEnv().Enabled, "OTEL_ENABLED=%s", value)
	}

	t.Setenv("OTEL_ENABLED", "yes")
	assert.False(t, LoadFromEnv().Enabled)
}

func TestLoadFromEnv_Custom(t *testing.T) {
	clearOtelEnv(t)
	t.Setenv("OTEL_SERVICE_NAME", "codec-ci")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://collector.example.com:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "http/protobuf")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "Authorization=Bearer abc=123, X-Env=staging")

	cfg := LoadFromEnv()
	assert.Equal(t, "codec-ci", cfg.ServiceName)
	assert.Equal(t, "https://collector.example.com:4317", cfg.Endpoint)
	assert.Equal(t, "http/protobuf", cfg.Protocol)
	assert.Equal(t, map[string]string{
		"Authorization": "Bearer abc=123",
		"X-Env":         "staging",
	}, cfg.Headers)
}

func TestParseKeyValuePairs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single", "k=v", map[string]string{"k": "v"}},
		{"multiple", "a=1,b=2", map[string]string{"a": "1", "b": "2"}},
		{"value with equals", "token=a=b", map[string]string{"token": "a=b"}},
		{"malformed entries skipped", "=v,novalue,a=1", map[string]string{"a": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseKeyValuePairs(tt.input))
		})
	}
}
