// Package logging builds slog loggers for onboard.
//
// Runs log to stdout and, when a log directory is configured, to an
// append-only onboard.log so unattended cron runs leave a trail. Handlers
// support text and json formats with consistent field names.
package logging
