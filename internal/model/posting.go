package model

import (
	"context"
	"strconv"
)

// Column names as they appear in the job data header.
const (
	ColTitle          = "job_title"
	ColCompany        = "company_name"
	ColLocation       = "location"
	ColSeniority      = "seniority_level"
	ColEmploymentType = "employment_type"
	ColFunction       = "job_function"
	ColIndustry       = "industry"
	ColPosted         = "posted"
	ColApplicants     = "applicants_num"
)

// DisplayColumns is the column subset shown for recommended jobs.
var DisplayColumns = []string{
	ColTitle, ColCompany, ColLocation, ColSeniority, ColEmploymentType,
	ColFunction, ColIndustry, ColPosted, ColApplicants,
}

// Unified representation of one row of the job data file.
type Posting struct {
	Title          string
	Company        string
	Location       string
	Seniority      string
	EmploymentType string
	Function       string
	Industry       string
	Posted         string
	Applicants     *int              // nullable, extracted from free text
	Extra          map[string]string // columns outside the known set, kept for export
}

// Field returns the textual value of column for this posting. Applicants is
// returned in its normalized form, empty when null.
func (p Posting) Field(column string) string {
	switch column {
	case ColTitle:
		return p.Title
	case ColCompany:
		return p.Company
	case ColLocation:
		return p.Location
	case ColSeniority:
		return p.Seniority
	case ColEmploymentType:
		return p.EmploymentType
	case ColFunction:
		return p.Function
	case ColIndustry:
		return p.Industry
	case ColPosted:
		return p.Posted
	case ColApplicants:
		if p.Applicants == nil {
			return ""
		}
		return strconv.Itoa(*p.Applicants)
	default:
		return p.Extra[column]
	}
}

// Table is the in-memory job data. It is read-only once loaded.
type Table struct {
	Columns []string  // header order as read from the source
	Rows    []Posting // file order
}

// HasColumn reports whether the source header contained column.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Require returns a *ColumnError (wrapping ErrMissingColumn) for the first
// column absent from the header.
func (t *Table) Require(columns ...string) error {
	for _, c := range columns {
		if !t.HasColumn(c) {
			return &ColumnError{Column: c}
		}
	}
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// TableSource loads a job table from some backing file.
type TableSource interface {
	LoadTable(ctx context.Context) (*Table, error)
}

// PostingFilter decides whether a posting matches the user's criteria.
type PostingFilter interface {
	Match(p Posting) bool
}

// Reporter presents recommended postings to the user.
type Reporter interface {
	Report(total int, postings []Posting) error
}
