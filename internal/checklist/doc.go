// Package checklist builds and persists the fixed six-task onboarding
// checklist created for each new employee.
package checklist
