// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePorts_Defaults(t *testing.T) {
	// Act
	ports, err := ResolvePorts(map[string]string{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Ports{Server: 8000, HTTPSServer: 8443, UI: 3000}, ports)
}

func TestResolvePorts_AllFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"GIT_PROXY_SERVER_PORT":       "9090",
		"GIT_PROXY_HTTPS_SERVER_PORT": "9443",
		"GIT_PROXY_UI_PORT":           "4000",
	}

	// Act
	ports, err := ResolvePorts(environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9090, ports.Server)
	assert.Equal(t, 9443, ports.HTTPSServer)
	assert.Equal(t, 4000, ports.UI)
}

func TestResolvePorts_PartialFields(t *testing.T) {
	// Arrange
	environ := map[string]string{
		"GIT_PROXY_SERVER_PORT": "9090",
	}

	// Act
	ports, err := ResolvePorts(environ)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9090, ports.Server)
	assert.Equal(t, 8443, ports.HTTPSServer)
	assert.Equal(t, 3000, ports.UI)
}

func TestResolvePorts_InvalidInteger(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"server letters", "GIT_PROXY_SERVER_PORT", "abc"},
		{"https float", "GIT_PROXY_HTTPS_SERVER_PORT", "8443.5"},
		{"ui with spaces", "GIT_PROXY_UI_PORT", " 3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			ports, err := ResolvePorts(map[string]string{tt.key: tt.val})

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEnvironmentParse)
			assert.Contains(t, err.Error(), "parse error")
			assert.Equal(t, Ports{}, ports, "no default may be substituted")
		})
	}
}

// TestResolvePorts_EmptyValueUsesDefault covers a variable that is exported
// with an empty value: it is treated as unset.
func TestResolvePorts_EmptyValueUsesDefault(t *testing.T) {
	ports, err := ResolvePorts(map[string]string{"GIT_PROXY_SERVER_PORT": ""})

	require.NoError(t, err)
	assert.Equal(t, 8000, ports.Server)
}

func TestResolvePorts_ProcessEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("GIT_PROXY_SERVER_PORT", "9090")
	t.Setenv("GIT_PROXY_HTTPS_SERVER_PORT", "")
	t.Setenv("GIT_PROXY_UI_PORT", "")

	// Act
	ports, err := ResolvePorts(nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 9090, ports.Server)
	assert.Equal(t, 8443, ports.HTTPSServer)
	assert.Equal(t, 3000, ports.UI)
}

func TestResolvePorts_ProcessEnvironmentInvalid(t *testing.T) {
	t.Setenv("GIT_PROXY_SERVER_PORT", "abc")

	_, err := ResolvePorts(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnvironmentParse)
}
