// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the startup snapshot, the schema validator and the
// configuration loader into the git proxy's boot sequence.
//
// A run either validates the settings document and stops (validate-only
// mode) or validates it, loads it and exposes the resulting [Runtime] to
// whatever starts the listeners.
package app

import (
	"fmt"

	"github.com/MKhiriev/git-proxy/internal/config"
	"github.com/MKhiriev/git-proxy/internal/logger"
	"github.com/MKhiriev/git-proxy/internal/validators"
)

// Runtime is everything the proxy needs once the settings document has been
// accepted.
type Runtime struct {
	// Ports are the listener ports resolved from the environment.
	Ports config.Ports

	// Config is the loaded settings document. It is read-only.
	Config *config.Configuration

	// SSLKeyPath and SSLCertPath locate the TLS key pair.
	SSLKeyPath  string
	SSLCertPath string
}

// App runs the boot sequence once. After [App.Run] it exposes the schema
// violations it found and, after a successful normal start, the [Runtime].
type App struct {
	startup   *config.Startup
	validator validators.Validator
	logger    *logger.Logger

	violations []validators.Violation
	runtime    *Runtime
}

// New returns an App for startup that checks documents with validator.
// A nil startup or validator yields [ErrNilStartup] or [ErrNilValidator].
func New(startup *config.Startup, validator validators.Validator, log *logger.Logger) (*App, error) {
	if startup == nil {
		return nil, ErrNilStartup
	}
	if validator == nil {
		return nil, ErrNilValidator
	}

	return &App{
		startup:   startup,
		validator: validator,
		logger:    log.WithComponent("app"),
	}, nil
}

// Run executes the boot sequence selected by the startup snapshot.
func (a *App) Run() error {
	a.logger.Debug().
		Int("server_port", a.startup.Ports.Server).
		Int("https_server_port", a.startup.Ports.HTTPSServer).
		Int("ui_port", a.startup.Ports.UI).
		Str("config_file", a.startup.ConfigFile).
		Bool("validate_only", a.startup.ValidateOnly).
		Msg("received startup config")

	if a.startup.ValidateOnly {
		return a.validate()
	}

	return a.start()
}

// validate runs the lightweight file check and then the schema check.
func (a *App) validate() error {
	path := a.startup.ConfigFile

	if err := config.CheckFile(path, a.logger); err != nil {
		return err
	}

	if err := a.checkSchema(path); err != nil {
		return err
	}

	a.logger.Info().Str("file", path).Msg("configuration is valid")
	return nil
}

// start validates the document against the schema and, once it is accepted,
// loads it into a [Runtime].
func (a *App) start() error {
	path := a.startup.ConfigFile

	if err := a.checkSchema(path); err != nil {
		return err
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	a.runtime = &Runtime{
		Ports:       a.startup.Ports,
		Config:      cfg,
		SSLKeyPath:  cfg.SSLKeyPath(),
		SSLCertPath: cfg.SSLCertPath(),
	}

	a.logger.Info().
		Str("file", path).
		Int("sinks", len(cfg.Sink)).
		Int("authentication_providers", len(cfg.Authentication)).
		Int("authorised_repos", len(cfg.AuthorisedList)).
		Msg("configuration loaded")

	return nil
}

func (a *App) checkSchema(path string) error {
	valid, violations, err := a.validator.Validate(path)
	if err != nil {
		return fmt.Errorf("error validating configuration: %w", err)
	}

	a.violations = violations
	if !valid {
		return fmt.Errorf("%w: %s has %d violation(s)", ErrInvalidConfiguration, path, len(violations))
	}

	return nil
}

// Violations returns the schema violations found by the last [App.Run].
func (a *App) Violations() []validators.Violation {
	return a.violations
}

// Runtime returns the snapshot produced by a successful normal-mode run.
func (a *App) Runtime() (*Runtime, error) {
	if a.runtime == nil {
		return nil, ErrNotStarted
	}
	return a.runtime, nil
}
