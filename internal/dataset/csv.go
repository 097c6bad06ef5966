package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amishk599/jobpulse/internal/model"
)

// Ensure CSVSource implements model.TableSource.
var _ model.TableSource = (*CSVSource)(nil)

// ErrEmptyFile is returned when the source has no header line.
var ErrEmptyFile = errors.New("no columns to parse from file")

// ErrDuplicateColumn is returned when a header names the same column twice.
var ErrDuplicateColumn = errors.New("duplicate column")

// CSVSource reads the job table from a comma-delimited file with a header row.
type CSVSource struct {
	path string
}

// NewCSVSource returns a source reading the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// LoadTable reads the whole file into memory.
func (s *CSVSource) LoadTable(_ context.Context) (*model.Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	table, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return table, nil
}

// ReadCSV parses a header row followed by data records. Short records are
// padded with empty values; records longer than the header and repeated
// header names are errors.
// The applicants column, when present, is normalized with ParseApplicants.
func ReadCSV(r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	seen := make(map[string]int, len(header))
	for i, col := range header {
		if j, ok := seen[col]; ok {
			return nil, fmt.Errorf("header columns %d and %d are both %q: %w", j+1, i+1, col, ErrDuplicateColumn)
		}
		seen[col] = i
	}

	table := &model.Table{Columns: header}
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing record: %w", err)
		}
		line++
		if len(record) > len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(record))
		}
		table.Rows = append(table.Rows, NewPosting(header, record))
	}
	return table, nil
}

// NewPosting maps a record onto a Posting using the header for column names.
// Missing trailing values are treated as empty.
func NewPosting(header, record []string) model.Posting {
	var p model.Posting
	for i, col := range header {
		var v string
		if i < len(record) {
			v = record[i]
		}
		switch col {
		case model.ColTitle:
			p.Title = v
		case model.ColCompany:
			p.Company = v
		case model.ColLocation:
			p.Location = v
		case model.ColSeniority:
			p.Seniority = v
		case model.ColEmploymentType:
			p.EmploymentType = v
		case model.ColFunction:
			p.Function = v
		case model.ColIndustry:
			p.Industry = v
		case model.ColPosted:
			p.Posted = v
		case model.ColApplicants:
			p.Applicants = ParseApplicants(v)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]string)
			}
			p.Extra[col] = v
		}
	}
	return p
}
