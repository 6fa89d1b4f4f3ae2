package integrity

import (
	"fmt"
	"time"

	"demo-server/feature/integrity/checks"

	"github.com/samber/lo"
)

// Summary counts check results by status.
type Summary struct {
	Total       int    `json:"total" example:"9"`
	Passed      int    `json:"passed" example:"8"`
	Failed      int    `json:"failed" example:"1"`
	Warnings    int    `json:"warnings" example:"0"`
	SuccessRate string `json:"success_rate" example:"88.9%"`
}

// Report is the combined outcome of a deployment check run.
type Report struct {
	Timestamp time.Time       `json:"timestamp"`
	BaseDir   string          `json:"base_dir"`
	Checks    []checks.Result `json:"checks"`
	Summary   Summary         `json:"summary"`
}

// OK reports whether no check failed. Warnings do not fail a report.
func (r *Report) OK() bool {
	return r.Summary.Failed == 0
}

// Failures returns the failed checks in run order.
func (r *Report) Failures() []checks.Result {
	return lo.Filter(r.Checks, func(c checks.Result, _ int) bool {
		return c.Status == checks.StatusFail
	})
}

func summarize(results []checks.Result) Summary {
	counts := lo.CountValuesBy(results, func(c checks.Result) checks.Status {
		return c.Status
	})

	s := Summary{
		Total:    len(results),
		Passed:   counts[checks.StatusPass],
		Failed:   counts[checks.StatusFail],
		Warnings: counts[checks.StatusWarn],
	}
	if s.Total > 0 {
		s.SuccessRate = fmt.Sprintf("%.1f%%", float64(s.Passed)/float64(s.Total)*100)
	} else {
		s.SuccessRate = "0.0%"
	}
	return s
}
