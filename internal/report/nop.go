package report

import "github.com/amishk599/jobpulse/internal/model"

// NopReporter discards results. Used by surfaces that render the Result
// themselves (TUI, HTTP).
type NopReporter struct{}

func NewNopReporter() *NopReporter { return &NopReporter{} }

func (r *NopReporter) Report(total int, postings []model.Posting) error { return nil }
