// Package preflight runs environment checks before a live onboarding run.
// Checks are informational: a failed check is reported and logged but never
// blocks the run, which is expected to fail downstream with clear errors.
package preflight
