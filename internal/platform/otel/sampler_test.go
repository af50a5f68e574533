package otel

import (
	"strings"
	"testing"
)

func TestSamplerBounds(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 1, want: "AlwaysOnSampler"},
		{ratio: 2, want: "AlwaysOnSampler"},
		{ratio: 0, want: "AlwaysOffSampler"},
		{ratio: -1, want: "AlwaysOffSampler"},
		{ratio: 0.25, want: "ParentBased"},
	}
	for _, tc := range tests {
		got := sampler(tc.ratio).Description()
		if !strings.HasPrefix(got, tc.want) {
			t.Fatalf("sampler(%v) = %q, want prefix %q", tc.ratio, got, tc.want)
		}
	}
}
