// Package config derives the runtime configuration of the git proxy.
//
// It covers three concerns:
//   - the listener ports, resolved once from the environment with fixed
//     defaults ([ResolvePorts]);
//   - the startup snapshot merging defaults, environment and flags
//     ([GetStartup]);
//   - the typed settings document with its discriminated sink and
//     authentication entries ([Load], [LoadFile]) and the lightweight
//     existence/syntax check ([CheckFile]).
//
// Schema validation of the settings document lives in package validators.
package config
