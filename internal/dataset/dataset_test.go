package dataset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amishk599/jobpulse/internal/model"
)

const sampleCSV = `job_title,company_name,location,seniority_level,employment_type,job_function,industry,posted,applicants_num,job_url
Data Analyst,Acme,"New York, NY",Entry level,Full-time,Analyst,Finance,2 days ago,116 applicants,https://example.com/1
Software Engineer,Beta,Remote,Internship,Internship,Engineering,Software,1 week ago,Be among the first 25 applicants,https://example.com/2
Sales Associate,Acme,Boston,Associate,Full-time,Sales,Retail,3 days ago,applicants,https://example.com/3
`

func TestParseApplicants(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"123 applicants", intPtr(123)},
		{"Be among the first 25 applicants", intPtr(25)},
		{"Over 200 applicants, 5 new", intPtr(200)},
		{"42", intPtr(42)},
		{"applicants", nil},
		{"", nil},
		{"99999999999999999999999 applicants", nil},
	}
	for _, tt := range tests {
		got := ParseApplicants(tt.in)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseApplicants(%q) = %d, want nil", tt.in, *got)
		case tt.want != nil && got == nil:
			t.Errorf("ParseApplicants(%q) = nil, want %d", tt.in, *tt.want)
		case tt.want != nil && *got != *tt.want:
			t.Errorf("ParseApplicants(%q) = %d, want %d", tt.in, *got, *tt.want)
		}
	}
}

func intPtr(n int) *int { return &n }

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(table.Columns) != 10 {
		t.Fatalf("Columns = %v", table.Columns)
	}
	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}

	first := table.Rows[0]
	if first.Title != "Data Analyst" || first.Location != "New York, NY" {
		t.Errorf("row 0 = %+v", first)
	}
	if first.Applicants == nil || *first.Applicants != 116 {
		t.Errorf("row 0 applicants = %v, want 116", first.Applicants)
	}
	if first.Extra["job_url"] != "https://example.com/1" {
		t.Errorf("row 0 job_url = %q", first.Extra["job_url"])
	}
	if table.Rows[2].Applicants != nil {
		t.Errorf("row 2 applicants = %d, want nil", *table.Rows[2].Applicants)
	}
}

func TestReadCSV_ShortRecordPadded(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("job_title,company_name,location\nAnalyst,Acme\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table.Rows[0].Location != "" || table.Rows[0].Company != "Acme" {
		t.Errorf("row 0 = %+v", table.Rows[0])
	}
}

func TestReadCSV_LongRecordRejected(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("job_title\nAnalyst,extra\n"))
	if err == nil {
		t.Fatal("expected error for record longer than header")
	}
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Fatalf("err = %v, want ErrEmptyFile", err)
	}
}

func TestReadCSV_StripsBOM(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("\ufeffjob_title\nAnalyst\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if !table.HasColumn(model.ColTitle) || table.Rows[0].Title != "Analyst" {
		t.Errorf("table = %+v", table)
	}
}

func TestCSVSource_MissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := src.LoadTable(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExportReloadsSameShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_data.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	table, err := NewCSVSource(path).LoadTable(context.Background())
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	reloaded, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV(export): %v", err)
	}
	if reloaded.Len() != table.Len() {
		t.Errorf("reloaded rows = %d, want %d", reloaded.Len(), table.Len())
	}
	if strings.Join(reloaded.Columns, ",") != strings.Join(table.Columns, ",") {
		t.Errorf("reloaded columns = %v, want %v", reloaded.Columns, table.Columns)
	}
	if reloaded.Rows[0].Location != "New York, NY" {
		t.Errorf("quoted field lost: %q", reloaded.Rows[0].Location)
	}
	if reloaded.Rows[1].Applicants == nil || *reloaded.Rows[1].Applicants != 25 {
		t.Errorf("reloaded applicants = %v, want 25", reloaded.Rows[1].Applicants)
	}
}

func TestExportKeepsEmptySingleColumnRows(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("job_title\nAnalyst\n\"\"\nClerk\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("loaded rows = %d, want 3", table.Len())
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "job_title\nAnalyst\n\"\"\nClerk\n"
	if buf.String() != want {
		t.Errorf("export = %q, want %q", buf.String(), want)
	}

	reloaded, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV(export): %v", err)
	}
	if reloaded.Len() != table.Len() {
		t.Errorf("row count changed: %d -> %d", table.Len(), reloaded.Len())
	}
	if reloaded.Rows[1].Title != "" || reloaded.Rows[2].Title != "Clerk" {
		t.Errorf("reloaded titles = %q, %q", reloaded.Rows[1].Title, reloaded.Rows[2].Title)
	}
}

func TestReadCSV_DuplicateColumnRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"extra column", "job_title,note,note\nAnalyst,a,b\n"},
		{"known column", "job_title,company_name,job_title\nAnalyst,Acme,Clerk\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			if !errors.Is(err, ErrDuplicateColumn) {
				t.Fatalf("err = %v, want ErrDuplicateColumn", err)
			}
		})
	}
}

func TestWriteCSV_NormalizesApplicants(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("job_title,applicants_num\nAnalyst,116 applicants\nClerk,applicants\n"))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "job_title,applicants_num\nAnalyst,116\nClerk,\n"
	if buf.String() != want {
		t.Errorf("WriteCSV() = %q, want %q", buf.String(), want)
	}
}

func TestExportFile(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	path := filepath.Join(t.TempDir(), DefaultExportName)
	if err := ExportFile(path, table); err != nil {
		t.Fatalf("ExportFile: %v", err)
	}
	reloaded, err := NewCSVSource(path).LoadTable(context.Background())
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if reloaded.Len() != table.Len() || len(reloaded.Columns) != len(table.Columns) {
		t.Errorf("reloaded %d rows / %d columns, want %d / %d",
			reloaded.Len(), len(reloaded.Columns), table.Len(), len(table.Columns))
	}
}
