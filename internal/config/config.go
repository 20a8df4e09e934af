// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "math"

const (
	// DefaultConfigFile is the settings document read when no path is given.
	DefaultConfigFile = "proxy.config.json"

	// DefaultSessionMaxAgeHours applies when the document omits sessionMaxAgeHours.
	DefaultSessionMaxAgeHours = 12

	// MaxSessionMaxAgeHours is the largest accepted sessionMaxAgeHours.
	MaxSessionMaxAgeHours = math.MaxInt32

	sslKeyPath  = "../certs/key.pem"
	sslCertPath = "../certs/cert.pem"
)

// Options is an opaque JSON object attached to a discriminated entry.
//
// Its legal shape is decided by the owner of the entry's type tag, so the
// loader keeps it verbatim. Values are the JSON tagged union as decoded with
// json.Decoder.UseNumber: nil, bool, json.Number, string, []any and
// map[string]any.
type Options map[string]any

// Configuration is the typed view of the proxy settings document.
//
// It is built once during startup by [Load] or [LoadFile] and is treated as
// read-only afterwards. Collections are never nil after loading.
type Configuration struct {
	// ProxyURL is the upstream git host the proxy forwards to.
	ProxyURL string `json:"proxyUrl"`

	// CookieSecret signs session cookies of the UI service.
	CookieSecret string `json:"cookieSecret"`

	// SessionMaxAgeHours is the UI session lifetime. Always positive.
	SessionMaxAgeHours int `json:"sessionMaxAgeHours"`

	API               Options `json:"api"`
	CommitConfig      Options `json:"commitConfig"`
	AttestationConfig Options `json:"attestationConfig"`
	Domains           Options `json:"domains"`

	// PrivateOrganizations lists organizations whose repositories are
	// never proxied.
	PrivateOrganizations []string `json:"privateOrganizations"`

	URLShortener   string `json:"urlShortener"`
	ContactEmail   string `json:"contactEmail"`
	CSRFProtection bool   `json:"csrfProtection"`

	// Plugins holds plugin module names in load order.
	Plugins []string `json:"plugins"`

	AuthorisedList []AuthorisedRepo         `json:"authorisedList"`
	Sink           []DatabaseSink           `json:"sink"`
	Authentication []AuthenticationProvider `json:"authentication"`
	TempPassword   TempPasswordPolicy       `json:"tempPassword"`

	// ConfigFile is the path the configuration was read from. It is not part
	// of the document.
	ConfigFile string `json:"-"`
}

// AuthorisedRepo identifies one repository permitted through the proxy.
type AuthorisedRepo struct {
	Project string `json:"project"`
	Name    string `json:"name"`
	URL     string `json:"url"`
}

// DatabaseSink is a destination for audit data. Options and Params are
// interpreted by the backend registered for Type.
type DatabaseSink struct {
	Type             string  `json:"type"`
	Enabled          bool    `json:"enabled"`
	ConnectionString string  `json:"connectionString"`
	Options          Options `json:"options"`
	Params           Options `json:"params"`
}

// AuthenticationProvider is an identity backend selected by Type.
type AuthenticationProvider struct {
	Type    string  `json:"type"`
	Enabled bool    `json:"enabled"`
	Options Options `json:"options"`
}

// TempPasswordPolicy controls whether one-time passwords are emailed.
type TempPasswordPolicy struct {
	SendEmail   bool    `json:"sendEmail"`
	EmailConfig Options `json:"emailConfig"`
}

// SSLKeyPath returns the TLS private key location. It does not depend on
// any loaded field.
func (cfg *Configuration) SSLKeyPath() string {
	return sslKeyPath
}

// SSLCertPath returns the TLS certificate location. It does not depend on
// any loaded field.
func (cfg *Configuration) SSLCertPath() string {
	return sslCertPath
}

// Database returns the first enabled sink in declaration order.
func (cfg *Configuration) Database() (DatabaseSink, error) {
	for _, sink := range cfg.Sink {
		if sink.Enabled {
			return sink, nil
		}
	}

	return DatabaseSink{}, ErrNoEnabledSink
}

// EnabledAuthentication returns the enabled providers in declaration order.
func (cfg *Configuration) EnabledAuthentication() []AuthenticationProvider {
	enabled := make([]AuthenticationProvider, 0, len(cfg.Authentication))
	for _, provider := range cfg.Authentication {
		if provider.Enabled {
			enabled = append(enabled, provider)
		}
	}

	return enabled
}

// PrimaryAuthentication returns the first enabled provider.
func (cfg *Configuration) PrimaryAuthentication() (AuthenticationProvider, error) {
	enabled := cfg.EnabledAuthentication()
	if len(enabled) == 0 {
		return AuthenticationProvider{}, ErrNoEnabledAuthentication
	}

	return enabled[0], nil
}
