package contract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vaxcheck/internal/contract/tracer"
	"vaxcheck/pkg/testutil"
)

// CheckResult records the outcome of one check.
type CheckResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Passed reports whether the check succeeded.
func (r CheckResult) Passed() bool { return r.Err == nil }

// Report is the outcome of a full suite run.
type Report struct {
	RunID    uuid.UUID
	Started  time.Time
	Duration time.Duration
	Results  []CheckResult
}

// Passed reports whether every check in the run passed.
func (r *Report) Passed() bool {
	return r.Failed() == 0
}

// Failed returns the number of failed checks.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Runner executes the suite sequentially against one deployment. Checks
// share the default citizen, so running them concurrently would race on
// upstream state.
type Runner struct {
	api    APIClient
	checks []Check
	logger *slog.Logger
	tracer tracer.Tracer
}

// RunnerOption configures the Runner.
type RunnerOption func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithTracer sets the runner's tracer.
func WithTracer(t tracer.Tracer) RunnerOption {
	return func(r *Runner) {
		r.tracer = t
	}
}

// WithChecks overrides the default check list.
func WithChecks(checks []Check) RunnerOption {
	return func(r *Runner) {
		r.checks = checks
	}
}

// NewRunner creates a Runner over the full Suite by default.
func NewRunner(api APIClient, opts ...RunnerOption) *Runner {
	r := &Runner{
		api:    api,
		checks: Suite(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: tracer.Noop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every check in order. Upstream state for the default citizen
// is reset before each check so earlier checks cannot leak reservations into
// later ones.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{RunID: uuid.New(), Started: time.Now()}
	r.logger.Info("starting conformance run",
		"run_id", report.RunID,
		"checks", len(r.checks),
	)

	for _, check := range r.checks {
		result := r.runCheck(ctx, check)
		report.Results = append(report.Results, result)

		if result.Passed() {
			r.logger.Info("check passed",
				"run_id", report.RunID,
				"check", check.Name,
				"duration_ms", result.Duration.Milliseconds(),
			)
		} else {
			r.logger.Error("check failed",
				"run_id", report.RunID,
				"check", check.Name,
				"error", result.Err,
			)
		}
	}

	report.Duration = time.Since(report.Started)
	return report
}

func (r *Runner) runCheck(ctx context.Context, check Check) CheckResult {
	ctx, span := r.tracer.Start(ctx, "contract.check",
		tracer.Attribute{Key: "check", Value: check.Name},
	)
	start := time.Now()

	err := r.reset(ctx)
	if err == nil {
		err = check.Run(ctx, r.api)
	}

	span.End(err)
	return CheckResult{Name: check.Name, Err: err, Duration: time.Since(start)}
}

// reset deletes the default citizen's registration. The upstream answer for
// an unknown citizen does not matter; only transport failures do.
func (r *Runner) reset(ctx context.Context) error {
	if _, err := r.api.DeleteRegistration(ctx, testutil.DefaultCitizenID); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	return nil
}
