package checklist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"onboard/internal/roster"
)

// Task statuses at creation time. No further transitions are modeled; the
// checklist file is written once and handed off to HR tooling.
const (
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// Task is one checklist entry.
type Task struct {
	Name   string `json:"task"`
	Status string `json:"status"`
	Owner  string `json:"owner"`
}

// Checklist is the onboarding task list derived for one employee.
type Checklist struct {
	Employee string `json:"employee"`
	Created  string `json:"created"`
	Tasks    []Task `json:"tasks"`
}

// Build assembles the fixed task list for an employee. The welcome email
// task's status reflects whether the send actually succeeded; the meeting
// task is owned by the employee's manager.
func Build(emp roster.Employee, emailSent bool, now time.Time) Checklist {
	emailStatus := StatusPending
	if emailSent {
		emailStatus = StatusCompleted
	}
	return Checklist{
		Employee: emp.Name,
		Created:  now.Format(time.RFC3339),
		Tasks: []Task{
			{Name: "Send welcome email", Status: emailStatus, Owner: "HR"},
			{Name: "Prepare workspace", Status: StatusPending, Owner: "Facilities"},
			{Name: "Setup IT accounts", Status: StatusPending, Owner: "IT"},
			{Name: "Schedule first day meeting", Status: StatusPending, Owner: emp.Manager},
			{Name: "Assign buddy/mentor", Status: StatusPending, Owner: "HR"},
			{Name: "Order business cards", Status: StatusPending, Owner: "Marketing"},
		},
	}
}

// Filename derives the checklist file name from an employee name: lowered,
// spaces replaced with underscores. Employees whose names normalize to the
// same value overwrite each other's files.
func Filename(employeeName string) string {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(employeeName), " ", "_"))
	return fmt.Sprintf("checklist_%s.json", normalized)
}

// Write persists the checklist under dir, overwriting any existing file for
// the same normalized name, and returns the written path.
func (c Checklist) Write(dir string) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode checklist: %w", err)
	}
	path := filepath.Join(dir, Filename(c.Employee))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write checklist %s: %w", path, err)
	}
	return path, nil
}

// Load reads a persisted checklist back from disk.
func Load(path string) (Checklist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Checklist{}, fmt.Errorf("read checklist %s: %w", path, err)
	}
	var c Checklist
	if err := json.Unmarshal(data, &c); err != nil {
		return Checklist{}, fmt.Errorf("decode checklist %s: %w", path, err)
	}
	return c, nil
}
