package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected Flags
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: Flags{ConfigFile: DefaultConfigFile},
		},
		{
			name:     "short flags",
			args:     []string{"-c", "custom.json", "-v"},
			expected: Flags{ConfigFile: "custom.json", Validate: true, configFileSet: true},
		},
		{
			name:     "long flags",
			args:     []string{"--config=/tmp/proxy.json", "--validate"},
			expected: Flags{ConfigFile: "/tmp/proxy.json", Validate: true, configFileSet: true},
		},
		{
			name:     "explicit empty path",
			args:     []string{"--config="},
			expected: Flags{ConfigFile: "", configFileSet: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flags Flags
			fs := pflag.NewFlagSet("git-proxy", pflag.ContinueOnError)
			BindFlags(fs, &flags)

			require.NoError(t, fs.Parse(tt.args))
			assert.Equal(t, tt.expected, flags)
		})
	}
}

func TestBindFlags_UnknownFlag(t *testing.T) {
	var flags Flags
	fs := pflag.NewFlagSet("git-proxy", pflag.ContinueOnError)
	BindFlags(fs, &flags)

	assert.Error(t, fs.Parse([]string{"--port", "80"}))
}

func TestBindFlags_DefaultShownInUsage(t *testing.T) {
	var flags Flags
	fs := pflag.NewFlagSet("git-proxy", pflag.ContinueOnError)
	BindFlags(fs, &flags)

	flag := fs.Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, DefaultConfigFile, flag.DefValue)
	assert.Equal(t, "c", flag.Shorthand)
}
