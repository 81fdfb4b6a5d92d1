// Package config loads and validates the iotcore configuration.
//
// Configuration is layered: hardcoded defaults, then the YAML file,
// then IOTCORE_* environment variables. The resulting Config object is
// constructed once at startup and passed by reference to the components
// that need it; there is no ambient global configuration state.
package config
