package doctor

import "time"

// Check is a single diagnostic. Run never fails; problems are reported
// through the result's Status.
type Check interface {
	Name() string
	Category() string
	Run() *CheckResult
}

// Runner runs checks in registration order.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner creates a runner with the given checks.
func NewRunner(checks ...Check) *Runner {
	return &Runner{
		checks: append(make([]Check, 0, len(checks)), checks...),
		now:    time.Now,
	}
}

// AddCheck appends c to the run.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every check once and tallies the results.
func (r *Runner) Run() *DoctorReport {
	start := r.now().UTC()
	report := &DoctorReport{
		Timestamp: start,
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		if result == nil {
			result = &CheckResult{
				Name:     check.Name(),
				Category: check.Category(),
				Status:   SeverityError,
				Message:  "check returned no result",
			}
		}
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	report.Duration = r.now().UTC().Sub(start)
	return report
}

// DoctorReport is the outcome of a diagnostic run.
type DoctorReport struct {
	Timestamp time.Time      `json:"timestamp"`
	Duration  time.Duration  `json:"duration_ns"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors returns true if any check has SeverityError.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings returns true if any check has SeverityWarning.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// Worst returns the highest severity in the report, or SeverityPass for an
// empty one.
func (r *DoctorReport) Worst() Severity {
	switch {
	case r.HasErrors():
		return SeverityError
	case r.HasWarnings():
		return SeverityWarning
	case r.Summary.Info > 0:
		return SeverityInfo
	default:
		return SeverityPass
	}
}

// Problems returns the warning and error results in run order.
func (r *DoctorReport) Problems() []*CheckResult {
	var out []*CheckResult
	for _, res := range r.Results {
		if res.Status.IsProblem() {
			out = append(out, res)
		}
	}
	return out
}
