package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the command-line options that feed [GetStartup].
type Flags struct {
	// ConfigFile overrides the settings document path.
	ConfigFile string

	// Validate requests a validation run instead of a normal start.
	Validate bool

	// configFileSet records that --config was given on the command line,
	// so that an explicit empty path is not mistaken for an absent one.
	configFileSet bool
}

// BindFlags registers the startup flags on fs.
//
// Flags:
//
//	-c/--config   settings document path
//	-v/--validate validate the settings document and exit
func BindFlags(fs *pflag.FlagSet, flags *Flags) {
	flags.ConfigFile = DefaultConfigFile
	fs.VarP(configFileValue{flags}, "config", "c", "path to the proxy settings document")
	fs.BoolVarP(&flags.Validate, "validate", "v", false, "check the settings document and exit without starting")
}

// configFileValue is the pflag.Value behind --config.
type configFileValue struct {
	flags *Flags
}

func (v configFileValue) String() string {
	if v.flags == nil {
		return ""
	}
	return v.flags.ConfigFile
}

func (v configFileValue) Set(path string) error {
	v.flags.ConfigFile = path
	v.flags.configFileSet = true
	return nil
}

func (v configFileValue) Type() string {
	return "string"
}
