// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/git-proxy/internal/logger"
)

const (
	minPort = 1
	maxPort = 65535
)

// validate checks that the merged [Startup] can be used to open sockets and
// locate the settings document.
func (s *Startup) validate() error {
	for _, p := range []struct {
		name string
		port int
	}{
		{"GIT_PROXY_SERVER_PORT", s.Ports.Server},
		{"GIT_PROXY_HTTPS_SERVER_PORT", s.Ports.HTTPSServer},
		{"GIT_PROXY_UI_PORT", s.Ports.UI},
	} {
		if p.port < minPort || p.port > maxPort {
			return fmt.Errorf("%w: %s=%d", ErrInvalidPort, p.name, p.port)
		}
	}

	if s.ConfigFile == "" {
		return ErrEmptyConfigPath
	}

	return nil
}

// Validate performs the lightweight check on the file named by ConfigFile:
// it must exist and contain syntactically valid JSON.
//
// This is not schema validation. A document with the wrong structure passes
// as long as it parses; use validators.SchemaValidator for the full check.
func (cfg *Configuration) Validate(log *logger.Logger) error {
	return CheckFile(cfg.ConfigFile, log)
}

// CheckFile is the lightweight existence and syntax check used by
// [Configuration.Validate]. A missing file yields [ErrConfigFileMissing]
// naming path; unparsable content yields [ErrConfigParse].
func CheckFile(path string, log *logger.Logger) error {
	document, err := readConfigFile(path)
	if err != nil {
		return err
	}

	var v any
	if err = decodeDocument(document, &v); err != nil {
		return fmt.Errorf("error checking %s: %w", path, err)
	}

	log.Info().Str("file", path).Msgf("%s is valid", path)
	return nil
}
