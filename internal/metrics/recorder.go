package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Record summarizes one workflow run.
type Record struct {
	Timestamp          string  `json:"timestamp"`
	RunID              string  `json:"run_id,omitempty"`
	EmployeesProcessed int     `json:"employees_processed"`
	SuccessCount       int     `json:"success_count"`
	SuccessRate        float64 `json:"success_rate"`
	WorkflowDuration   string  `json:"workflow_duration"`
}

// SuccessRate computes succeeded/processed, returning 0 for an empty run.
func SuccessRate(succeeded, processed int) float64 {
	if processed <= 0 {
		return 0
	}
	return float64(succeeded) / float64(processed)
}

// Recorder appends run records to a newline-delimited JSON file.
type Recorder struct {
	path string
}

// NewRecorder builds a recorder writing to the given file path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Path returns the metrics log location.
func (r *Recorder) Path() string { return r.path }

// Log appends one record for a completed run. Write failures are returned
// to the caller; there is no local recovery.
func (r *Recorder) Log(runID string, processed, succeeded int, duration time.Duration, now time.Time) error {
	record := Record{
		Timestamp:          now.Format(time.RFC3339),
		RunID:              runID,
		EmployeesProcessed: processed,
		SuccessCount:       succeeded,
		SuccessRate:        SuccessRate(succeeded, processed),
		WorkflowDuration:   duration.Round(time.Millisecond).String(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode metrics record: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create metrics directory: %w", err)
		}
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open metrics log: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append metrics record: %w", err)
	}
	return nil
}
