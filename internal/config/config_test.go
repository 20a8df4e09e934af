package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSLPaths_IndependentOfContent(t *testing.T) {
	empty, err := Load([]byte(`{}`))
	require.NoError(t, err)
	full, err := Load([]byte(fullDocument))
	require.NoError(t, err)

	for _, cfg := range []*Configuration{empty, full, {}} {
		assert.Equal(t, "../certs/key.pem", cfg.SSLKeyPath())
		assert.Equal(t, "../certs/cert.pem", cfg.SSLCertPath())
	}
}

func TestDatabase(t *testing.T) {
	tests := []struct {
		name         string
		sinks        []DatabaseSink
		expectedType string
		expectedErr  error
	}{
		{
			name:        "no sinks",
			sinks:       []DatabaseSink{},
			expectedErr: ErrNoEnabledSink,
		},
		{
			name:        "all disabled",
			sinks:       []DatabaseSink{{Type: "fs"}, {Type: "mongo"}},
			expectedErr: ErrNoEnabledSink,
		},
		{
			name:         "first enabled wins",
			sinks:        []DatabaseSink{{Type: "fs"}, {Type: "mongo", Enabled: true}, {Type: "postgres", Enabled: true}},
			expectedType: "mongo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Configuration{Sink: tt.sinks}

			sink, err := cfg.Database()

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedType, sink.Type)
		})
	}
}

func TestAuthentication(t *testing.T) {
	cfg := &Configuration{Authentication: []AuthenticationProvider{
		{Type: "local", Enabled: false},
		{Type: "ActiveDirectory", Enabled: true, Options: Options{"userGroup": "git-users"}},
		{Type: "openidconnect", Enabled: true},
	}}

	enabled := cfg.EnabledAuthentication()
	require.Len(t, enabled, 2)
	assert.Equal(t, "ActiveDirectory", enabled[0].Type)
	assert.Equal(t, "openidconnect", enabled[1].Type)

	primary, err := cfg.PrimaryAuthentication()
	require.NoError(t, err)
	assert.Equal(t, Options{"userGroup": "git-users"}, primary.Options)
}

func TestPrimaryAuthentication_NoneEnabled(t *testing.T) {
	cfg := &Configuration{Authentication: []AuthenticationProvider{{Type: "local"}}}

	_, err := cfg.PrimaryAuthentication()

	assert.ErrorIs(t, err, ErrNoEnabledAuthentication)
	assert.Empty(t, cfg.EnabledAuthentication())
}
