package report

import (
	"log/slog"

	"github.com/amishk599/jobpulse/internal/model"
)

// Ensure LogReporter implements model.Reporter.
var _ model.Reporter = (*LogReporter)(nil)

// LogReporter writes recommended postings to the given logger as structured messages.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a reporter that logs each posting via slog.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs the match count, then each posting with title, company,
// location and applicants when known.
// Returns nil (stdout logging does not fail).
func (r *LogReporter) Report(total int, postings []model.Posting) error {
	r.logger.Info("matching jobs", "total", total, "shown", len(postings))
	for _, p := range postings {
		args := []any{"title", p.Title, "company", p.Company, "location", p.Location, "function", p.Function}
		if p.Applicants != nil {
			args = append(args, "applicants", *p.Applicants)
		}
		r.logger.Info("recommended job", args...)
	}
	return nil
}
