// Package history persists per-run workflow outcomes in SQLite so
// `onboard history` can show what unattended runs did. The NDJSON metrics
// log remains the machine-readable record; this store exists for operators.
package history
