// Package workflow sequences one onboarding run: fetch the roster, process
// each employee through email, announcement, and checklist steps with
// per-employee failure isolation, then record metrics and history.
//
// Processing is strictly sequential. The only shared state across employees
// is the pair of counters owned by the runner, so there is no locking.
package workflow
