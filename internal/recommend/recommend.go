package recommend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amishk599/jobpulse/internal/filter"
	"github.com/amishk599/jobpulse/internal/model"
)

// DefaultLimit is how many matching postings are shown.
const DefaultLimit = 10

// NoMatchMessage is shown when a query matches nothing.
const NoMatchMessage = "Sorry, no matching jobs found. Try adjusting your preferences."

// Result is the outcome of one recommendation query.
type Result struct {
	Total    int             // postings that matched before the cap
	Postings []model.Posting // first Limit matches in table order
	Message  string          // set only when nothing matched
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return r.Total == 0
}

// Recommender owns the query pipeline over one loaded table:
// filter → cap → report.
type Recommender struct {
	table    *model.Table
	limit    int
	reporter model.Reporter
	logger   *slog.Logger
}

// NewRecommender creates a recommender wired with its dependencies.
// limit <= 0 uses DefaultLimit.
func NewRecommender(table *model.Table, limit int, reporter model.Reporter, logger *slog.Logger) *Recommender {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Recommender{
		table:    table,
		limit:    limit,
		reporter: reporter,
		logger:   logger,
	}
}

// Recommend runs one query. Postings keep their original table order; there
// is no ranking.
func (r *Recommender) Recommend(ctx context.Context, c filter.Criteria) (Result, error) {
	f := filter.NewCriteriaFilter(c)
	if err := r.table.Require(f.RequiredColumns()...); err != nil {
		return Result{}, fmt.Errorf("recommending: %w", err)
	}

	var res Result
	for _, p := range r.table.Rows {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("recommending: %w", ctx.Err())
		}
		if !f.Match(p) {
			continue
		}
		res.Total++
		if len(res.Postings) < r.limit {
			res.Postings = append(res.Postings, p)
		}
	}
	if res.Empty() {
		res.Message = NoMatchMessage
	}

	if err := r.reporter.Report(res.Total, res.Postings); err != nil {
		return Result{}, fmt.Errorf("recommending: reporting: %w", err)
	}

	r.logger.Debug("recommended jobs",
		"skills", c.Skills,
		"location", c.Location,
		"function", c.Function,
		"matched", res.Total,
		"shown", len(res.Postings),
	)

	return res, nil
}

// Limit returns the display cap.
func (r *Recommender) Limit() int {
	return r.limit
}
