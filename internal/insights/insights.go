package insights

import (
	"sort"

	"github.com/amishk599/jobpulse/internal/model"
)

// Count is the number of rows holding one distinct value of a column.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Frequencies counts rows per distinct non-empty value of column, most
// frequent first. Ties keep the order in which values first appear.
func Frequencies(t *model.Table, column string) ([]Count, error) {
	if err := t.Require(column); err != nil {
		return nil, err
	}

	index := make(map[string]int)
	var counts []Count
	for _, p := range t.Rows {
		v := p.Field(column)
		if v == "" {
			continue
		}
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, Count{Value: v})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}

// Top returns at most the first n counts.
func Top(counts []Count, n int) []Count {
	if n >= 0 && len(counts) > n {
		return counts[:n]
	}
	return counts
}

// Summary holds the headline metrics of the dashboard.
type Summary struct {
	TotalJobs       int     `json:"total_jobs"`
	UniqueCompanies int     `json:"unique_companies"`
	AvgApplicants   float64 `json:"avg_applicants"`
}

// Summarize computes row count, distinct non-empty companies and the mean of
// the applicants column over non-null values (0 when every value is null).
func Summarize(t *model.Table) (Summary, error) {
	if err := t.Require(model.ColCompany, model.ColApplicants); err != nil {
		return Summary{}, err
	}

	companies := make(map[string]struct{})
	var sum float64
	var n int
	for _, p := range t.Rows {
		if p.Company != "" {
			companies[p.Company] = struct{}{}
		}
		if p.Applicants != nil {
			sum += float64(*p.Applicants)
			n++
		}
	}

	s := Summary{
		TotalJobs:       t.Len(),
		UniqueCompanies: len(companies),
	}
	if n > 0 {
		s.AvgApplicants = sum / float64(n)
	}
	return s, nil
}
