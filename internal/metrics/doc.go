// Package metrics appends one JSON line per workflow run to a metrics log.
// The log is append-only; nothing in onboard reads it back.
package metrics
