// Package roster defines the employee record and the rules that decide
// whether a spreadsheet row belongs in an onboarding run.
package roster
