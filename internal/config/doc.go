// Package config loads, normalizes, and validates onboard configuration.
//
// Configuration is read from a TOML file with environment variable overrides
// for credentials, so the tool can run from cron with nothing but env vars
// set. Defaults are placeholders; a run against them fails downstream with
// clear errors rather than at load time.
package config
