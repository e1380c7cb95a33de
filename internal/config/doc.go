// Package config provides the run configuration for pepscan.
//
// All configuration is immutable after process start: defaults are defined
// as constants, optionally overridden by a .pepscan YAML file and CLI flags,
// and the resulting Config is passed explicitly into every scan handler.
// There is no global mutable state.
//
// The package also holds the expected-status registry: the allow-list of raw
// PEP status strings, grouped by the abbreviation shown in the PEP index.
package config
