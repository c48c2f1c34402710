package telemetry

import (
	"os"
	"strings"
)

// Config holds OpenTelemetry configuration loaded from environment
// variables.
type Config struct {
	// Enabled is loaded from OTEL_ENABLED; tracing is off by default.
	Enabled bool

	// ServiceName is loaded from OTEL_SERVICE_NAME, defaulting to
	// "telemetry-codec".
	ServiceName string

	// ServiceVersion is loaded from OTEL_SERVICE_VERSION.
	ServiceVersion string

	// Endpoint is the OTLP collector endpoint
	// (OTEL_EXPORTER_OTLP_ENDPOINT).
	Endpoint string

	// Protocol is "grpc" or "http/protobuf"
	// (OTEL_EXPORTER_OTLP_PROTOCOL), defaulting to grpc.
	Protocol string

	// Headers holds exporter headers such as Authorization
	// (OTEL_EXPORTER_OTLP_HEADERS, "key1=value1,key2=value2").
	Headers map[string]string

	// Insecure disables TLS (OTEL_EXPORTER_OTLP_INSECURE).
	Insecure bool

	// Sampler selects the trace sampler (OTEL_TRACES_SAMPLER).
	Sampler string

	// SamplerArg is the sampler argument such as a ratio
	// (OTEL_TRACES_SAMPLER_ARG).
	SamplerArg string

	// ResourceAttrs holds extra resource attributes
	// (OTEL_RESOURCE_ATTRIBUTES, "key1=value1,key2=value2").
	ResourceAttrs map[string]string
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	return &Config{
		Enabled:        strings.ToLower(os.Getenv("OTEL_ENABLED")) == "true",
		ServiceName:    getEnvOrDefault("OTEL_SERVICE_NAME", "telemetry-codec"),
		ServiceVersion: getEnvOrDefault("OTEL_SERVICE_VERSION", "unknown"),
		Endpoint:       os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Protocol:       getEnvOrDefault("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
		Headers:        parseKeyValuePairs(os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")),
		Insecure:       strings.ToLower(os.Getenv("OTEL_EXPORTER_OTLP_INSECURE")) == "true",
		Sampler:        os.Getenv("OTEL_TRACES_SAMPLER"),
		SamplerArg:     os.Getenv("OTEL_TRACES_SAMPLER_ARG"),
		ResourceAttrs:  parseKeyValuePairs(os.Getenv("OTEL_RESOURCE_ATTRIBUTES")),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseKeyValuePairs parses a comma-separated list of key=value pairs.
// Values may contain '='; only the first one splits.
func parseKeyValuePairs(s string) map[string]string {
	result := make(map[string]string)
	if s == "" {
		return result
	}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		idx := strings.Index(pair, "=")
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(pair[:idx])
		value := strings.TrimSpace(pair[idx+1:])
		if key != "" {
			result[key] = value
		}
	}
	return result
}
