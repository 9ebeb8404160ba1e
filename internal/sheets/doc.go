// Package sheets reads the onboarding roster from the Google Sheets
// values API and filters it to employees starting soon.
package sheets
