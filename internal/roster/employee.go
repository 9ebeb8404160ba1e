package roster

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the start date format expected in the roster sheet.
const DateLayout = "2006-01-02"

// Employee is one roster row. Records are read-only once parsed; every run
// re-fetches fresh rows, so there is no identity beyond the field values.
type Employee struct {
	Name       string
	Email      string
	Department string
	StartDate  string
	Manager    string
}

// ParseRow builds an Employee from a raw sheet row. Rows with fewer than
// five populated cells are rejected.
func ParseRow(row []string) (Employee, bool) {
	if len(row) < 5 {
		return Employee{}, false
	}
	fields := make([]string, 5)
	for i := 0; i < 5; i++ {
		fields[i] = strings.TrimSpace(row[i])
		if fields[i] == "" {
			return Employee{}, false
		}
	}
	return Employee{
		Name:       fields[0],
		Email:      fields[1],
		Department: fields[2],
		StartDate:  fields[3],
		Manager:    fields[4],
	}, true
}

// StartsWithin reports whether dateStr parses as YYYY-MM-DD and falls
// between today and today+days, inclusive on both ends. Unparseable dates
// are out of window rather than errors; the sheet is hand-edited and a
// typo'd row should be skipped, not fail the run.
func StartsWithin(dateStr string, today time.Time, days int) bool {
	start, err := time.Parse(DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return false
	}
	delta := daysBetween(today, start)
	return delta >= 0 && delta <= days
}

// daysBetween counts calendar days from a to b, ignoring time of day.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

var departmentCaser = cases.Title(language.Und)

// CanonicalDepartment normalizes department capitalization for rendering in
// announcements and email, so "engineering" and "ENGINEERING" read the same.
func CanonicalDepartment(department string) string {
	return departmentCaser.String(strings.TrimSpace(department))
}
