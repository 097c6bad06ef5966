package filter

import (
	"strings"

	"github.com/amishk599/jobpulse/internal/model"
)

// Criteria is the raw user input for a recommendation query.
type Criteria struct {
	Skills   string // comma-separated keywords
	Location string
	Function string
}

// IsEmpty reports whether no filter would be applied.
func (c Criteria) IsEmpty() bool {
	return len(ParseSkills(c.Skills)) == 0 &&
		strings.TrimSpace(c.Location) == "" &&
		strings.TrimSpace(c.Function) == ""
}

// ParseSkills splits a comma-separated list into trimmed, lowercased
// keywords. Blank entries are dropped.
func ParseSkills(raw string) []string {
	var keywords []string
	for _, kw := range strings.Split(raw, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// CriteriaFilter matches postings against skills, location and job function.
// Matching is case-insensitive substring containment. Each part that is
// empty passes all postings; the parts that are set are ANDed.
type CriteriaFilter struct {
	skills   []string
	location string
	function string
}

// NewCriteriaFilter normalizes c into a filter.
func NewCriteriaFilter(c Criteria) *CriteriaFilter {
	return &CriteriaFilter{
		skills:   ParseSkills(c.Skills),
		location: strings.ToLower(strings.TrimSpace(c.Location)),
		function: strings.ToLower(strings.TrimSpace(c.Function)),
	}
}

// Match returns true if any skill keyword occurs in the title or the job
// function, the location contains the location input, and the job function
// contains the function input.
func (f *CriteriaFilter) Match(p model.Posting) bool {
	titleLower := strings.ToLower(p.Title)
	functionLower := strings.ToLower(p.Function)

	if len(f.skills) > 0 {
		matched := false
		for _, kw := range f.skills {
			if strings.Contains(titleLower, kw) || strings.Contains(functionLower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.location != "" && !strings.Contains(strings.ToLower(p.Location), f.location) {
		return false
	}

	if f.function != "" && !strings.Contains(functionLower, f.function) {
		return false
	}

	return true
}

// RequiredColumns lists the columns the active parts of the filter read.
func (f *CriteriaFilter) RequiredColumns() []string {
	var cols []string
	if len(f.skills) > 0 {
		cols = append(cols, model.ColTitle, model.ColFunction)
	}
	if f.location != "" {
		cols = append(cols, model.ColLocation)
	}
	if f.function != "" && len(f.skills) == 0 {
		cols = append(cols, model.ColFunction)
	}
	return cols
}
