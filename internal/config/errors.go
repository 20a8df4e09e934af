package config

import "errors"

// Errors returned while resolving the environment, building the startup
// settings and loading the settings document.
var (
	// ErrEnvironmentParse indicates a port variable that is set but is not
	// an integer. No default is substituted.
	ErrEnvironmentParse = errors.New("invalid environment value")
	// ErrInvalidPort indicates a resolved port outside 1..65535.
	ErrInvalidPort = errors.New("port out of range")
	// ErrEmptyConfigPath indicates the settings document path resolved to "".
	ErrEmptyConfigPath = errors.New("config file path is empty")

	// ErrConfigFileMissing indicates the settings document does not exist.
	ErrConfigFileMissing = errors.New("config file missing")
	// ErrConfigParse indicates the settings document is not syntactically
	// valid JSON.
	ErrConfigParse = errors.New("config file is not valid JSON")
	// ErrConfigBind indicates valid JSON whose values do not fit the
	// configuration field types (for example a string where a list is expected).
	ErrConfigBind = errors.New("config document does not match configuration shape")
	// ErrInvalidSessionMaxAge indicates a sessionMaxAgeHours that is not positive.
	ErrInvalidSessionMaxAge = errors.New("sessionMaxAgeHours must be a positive integer")

	// ErrNoEnabledSink is returned by Configuration.Database when no sink is enabled.
	ErrNoEnabledSink = errors.New("no enabled sink configured")
	// ErrNoEnabledAuthentication is returned when no authentication provider is enabled.
	ErrNoEnabledAuthentication = errors.New("no enabled authentication provider configured")
)
