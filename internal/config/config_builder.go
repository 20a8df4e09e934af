package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Startup is the process-wide snapshot resolved before any socket is opened
// or any settings document is read. It is built once by [GetStartup] and
// passed explicitly to the components that need it.
type Startup struct {
	// Ports are the listener ports resolved from the environment.
	Ports Ports

	// ConfigFile is the settings document to validate and load.
	ConfigFile string

	// ValidateOnly requests a validation run instead of a normal start.
	ValidateOnly bool
}

type startupBuilder struct {
	layers  []*Startup
	environ map[string]string
	err     error
}

func newStartupBuilder() *startupBuilder {
	return &startupBuilder{
		layers: make([]*Startup, 0, 3),
	}
}

// GetStartup resolves the [Startup] snapshot from the following sources,
// later sources overriding non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables (ports)
//  3. Command-line flags
//
// Any port variable that is set but not an integer fails the whole build.
func GetStartup(flags Flags) (*Startup, error) {
	return newStartupBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		build()
}

func (b *startupBuilder) build() (*Startup, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building startup config: %w", b.err)
	}

	startup := new(Startup)
	for _, layer := range b.layers {
		if err := mergo.Merge(startup, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging startup configs: %w", err)
		}
	}

	if err := startup.validate(); err != nil {
		return nil, err
	}

	return startup, nil
}

func (b *startupBuilder) withDefaults() *startupBuilder {
	b.layers = append(b.layers, &Startup{ConfigFile: DefaultConfigFile})
	return b
}

func (b *startupBuilder) withEnv() *startupBuilder {
	ports, err := ResolvePorts(b.environ)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, &Startup{Ports: ports})
	return b
}

func (b *startupBuilder) withFlags(flags Flags) *startupBuilder {
	if flags.configFileSet && flags.ConfigFile == "" {
		b.err = errors.Join(b.err, fmt.Errorf("%w: --config was given an empty value", ErrEmptyConfigPath))
		return b
	}

	b.layers = append(b.layers, &Startup{
		ConfigFile:   flags.ConfigFile,
		ValidateOnly: flags.Validate,
	})
	return b
}
