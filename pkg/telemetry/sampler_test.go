package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/sdk/trace"
)

func TestCreateSampler(t *testing.T) {
	tests := []struct {
		name    string
		sampler string
		arg     string
		want    trace.Sampler
	}{
		{"default", "", "", trace.AlwaysSample()},
		{"always on", "always_on", "", trace.AlwaysSample()},
		{"always off", "always_off", "", trace.NeverSample()},
		{"ratio", "traceidratio", "0.25", trace.TraceIDRatioBased(0.25)},
		{"parent based on", "parentbased_always_on", "", trace.ParentBased(trace.AlwaysSample())},
		{"unknown falls back", "probabilistic", "", trace.AlwaysSample()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := createSampler(&Config{Sampler: tt.sampler, SamplerArg: tt.arg})
			assert.Equal(t, tt.want.Description(), got.Description())
		})
	}
}

func TestParseRatio(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"", 1.0},
		{"0.5", 0.5},
		{"0", 0},
		{"1", 1.0},
		{"-0.3", 0},
		{"2.5", 1.0},
		{"not-a-number", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRatio(tt.input))
		})
	}
}
