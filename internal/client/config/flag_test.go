package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-a", "http://10.0.0.1:9090", "-f", "/tmp/s.db", "-v"},
			expected: &Config{BaseURL: "http://10.0.0.1:9090", SessionFile: "/tmp/s.db", Verbose: true}},
		{name: "foreign flags ignored", args: []string{"-c", "x.json", "-z", "1", "-a=http://h:1"},
			expected: &Config{BaseURL: "http://h:1", SessionFile: "sondage.db"}},
		{name: "bad bool value", args: []string{"-v=maybe"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
