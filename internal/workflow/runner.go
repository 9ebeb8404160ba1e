package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"onboard/internal/checklist"
	"onboard/internal/config"
	"onboard/internal/history"
	"onboard/internal/logging"
	"onboard/internal/mailer"
	"onboard/internal/metrics"
	"onboard/internal/roster"
	"onboard/internal/slack"
)

// Source yields the employees an onboarding run should process.
type Source interface {
	NewEmployees(ctx context.Context, today time.Time) ([]roster.Employee, error)
}

// HistoryRecorder persists per-run outcomes. Recording is best-effort; a
// failure is logged and never fails the run.
type HistoryRecorder interface {
	RecordRun(ctx context.Context, run history.Run) error
}

// Summary reports what one run did.
type Summary struct {
	RunID       string
	Processed   int
	Succeeded   int
	SuccessRate float64
	Duration    time.Duration
	FetchErr    error
}

// Runner executes the onboarding workflow.
type Runner struct {
	cfg       *config.Config
	logger    *slog.Logger
	source    Source
	mail      mailer.Service
	notifier  slack.Service
	recorder  *metrics.Recorder
	historyDB HistoryRecorder
	clock     func() time.Time
	newRunID  func() string
}

// Option configures optional Runner behavior.
type Option func(*Runner)

// WithClock overrides the runner's time source (used in tests).
func WithClock(clock func() time.Time) Option {
	return func(r *Runner) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithRunID overrides run ID generation (used in tests).
func WithRunID(gen func() string) Option {
	return func(r *Runner) {
		if gen != nil {
			r.newRunID = gen
		}
	}
}

// NewRunner constructs a workflow runner. The history recorder may be nil
// when no store is available.
func NewRunner(
	cfg *config.Config,
	logger *slog.Logger,
	source Source,
	mail mailer.Service,
	notifier slack.Service,
	recorder *metrics.Recorder,
	historyDB HistoryRecorder,
	opts ...Option,
) *Runner {
	r := &Runner{
		cfg:       cfg,
		logger:    logging.NewComponentLogger(logger, "workflow"),
		source:    source,
		mail:      mail,
		notifier:  notifier,
		recorder:  recorder,
		historyDB: historyDB,
		clock:     time.Now,
		newRunID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one onboarding pass. A fetch failure is logged and treated
// as an empty batch; the returned error is reserved for the metrics write,
// which has no boundary around it.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	runID := r.newRunID()
	started := r.clock()
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))

	logger.Info("starting onboarding workflow")

	employees, fetchErr := r.source.NewEmployees(ctx, started)
	if fetchErr != nil {
		logger.Error("roster fetch failed; treating as empty batch", logging.Error(fetchErr))
	} else {
		logger.Info("fetched roster", logging.Int("new_employees", len(employees)))
	}

	if len(employees) == 0 {
		// An empty batch terminates without metrics. A failed fetch still
		// leaves a history row so operators can tell it apart from a quiet
		// week on the roster.
		finished := r.clock()
		summary := Summary{RunID: runID, Duration: finished.Sub(started), FetchErr: fetchErr}
		if fetchErr != nil {
			r.recordHistory(ctx, logger, started, finished, summary)
		} else {
			logger.Info("no new employees found")
		}
		return summary, nil
	}

	processed := 0
	succeeded := 0
	for _, emp := range employees {
		processed++
		if r.processEmployee(ctx, logger, emp) {
			succeeded++
		}
	}

	finished := r.clock()
	summary := Summary{
		RunID:       runID,
		Processed:   processed,
		Succeeded:   succeeded,
		SuccessRate: metrics.SuccessRate(succeeded, processed),
		Duration:    finished.Sub(started),
		FetchErr:    fetchErr,
	}

	r.recordHistory(ctx, logger, started, finished, summary)

	if err := r.recorder.Log(runID, processed, succeeded, summary.Duration, finished); err != nil {
		logger.Error("metrics write failed", logging.Error(err))
		return summary, fmt.Errorf("record metrics: %w", err)
	}

	logger.Info("workflow completed",
		logging.Int("processed", processed),
		logging.Int("succeeded", succeeded),
		logging.Float64("success_rate", summary.SuccessRate),
		logging.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// processEmployee runs the three onboarding steps for one employee and
// reports whether both notification channels succeeded. Any panic or
// checklist failure is contained here so the batch continues.
func (r *Runner) processEmployee(ctx context.Context, logger *slog.Logger, emp roster.Employee) (success bool) {
	empLogger := logger.With(logging.String(logging.FieldEmployee, emp.Name))
	empLogger.Info("processing onboarding")

	defer func() {
		if rec := recover(); rec != nil {
			empLogger.Error("onboarding step panicked; continuing with next employee",
				logging.Any("panic", rec))
			success = false
		}
	}()

	emailSent := true
	if err := r.mail.SendWelcome(ctx, emp); err != nil {
		emailSent = false
		empLogger.Error("welcome email failed",
			logging.String(logging.FieldStep, "email"),
			logging.Error(err))
	} else {
		empLogger.Info("welcome email sent", logging.String(logging.FieldStep, "email"))
	}

	chatSent := true
	if err := r.notifier.AnnounceHire(ctx, emp); err != nil {
		chatSent = false
		empLogger.Error("team announcement failed",
			logging.String(logging.FieldStep, "announce"),
			logging.Error(err))
	} else {
		empLogger.Info("team announced", logging.String(logging.FieldStep, "announce"))
	}

	list := checklist.Build(emp, emailSent, r.clock())
	if path, err := list.Write(r.cfg.Paths.ChecklistDir); err != nil {
		empLogger.Error("checklist write failed",
			logging.String(logging.FieldStep, "checklist"),
			logging.Error(err))
	} else {
		empLogger.Info("checklist created",
			logging.String(logging.FieldStep, "checklist"),
			logging.String("path", path))
	}

	if emailSent && chatSent {
		empLogger.Info("onboarding succeeded")
		return true
	}
	return false
}

func (r *Runner) recordHistory(ctx context.Context, logger *slog.Logger, started, finished time.Time, summary Summary) {
	if r.historyDB == nil {
		return
	}
	fetchError := ""
	if summary.FetchErr != nil {
		fetchError = summary.FetchErr.Error()
	}
	run := history.Run{
		RunID:       summary.RunID,
		StartedAt:   started,
		FinishedAt:  finished,
		Processed:   summary.Processed,
		Succeeded:   summary.Succeeded,
		SuccessRate: summary.SuccessRate,
		FetchError:  fetchError,
	}
	if err := r.historyDB.RecordRun(ctx, run); err != nil {
		logger.Warn("history record failed", logging.Error(err))
	}
}
