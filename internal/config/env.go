// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Ports holds the network ports resolved from the process environment.
//
// Env:
//   - GIT_PROXY_SERVER_PORT        (default 8000)
//   - GIT_PROXY_HTTPS_SERVER_PORT  (default 8443)
//   - GIT_PROXY_UI_PORT            (default 3000)
type Ports struct {
	// Server is the plain HTTP port of the git proxy.
	Server int `env:"GIT_PROXY_SERVER_PORT" envDefault:"8000"`

	// HTTPSServer is the TLS port of the git proxy.
	HTTPSServer int `env:"GIT_PROXY_HTTPS_SERVER_PORT" envDefault:"8443"`

	// UI is the port of the UI service.
	UI int `env:"GIT_PROXY_UI_PORT" envDefault:"3000"`
}

// ResolvePorts reads [Ports] from environ, or from the process environment
// when environ is nil.
//
// A variable that is set to something other than an integer fails the
// resolution with [ErrEnvironmentParse]; the default is used only when the
// variable is unset or empty.
func ResolvePorts(environ map[string]string) (Ports, error) {
	var ports Ports
	if err := parseEnv(&ports, environ); err != nil {
		return Ports{}, err
	}

	return ports, nil
}

// parseEnv populates cfg using the caarlos0/env library. Struct fields are
// mapped via their `env` and `envDefault` tags.
func parseEnv(cfg any, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("%w: error getting env configs: %w", ErrEnvironmentParse, err)
	}

	return nil
}
