package dataset

import (
	"regexp"
	"strconv"
)

var digitRunRegex = regexp.MustCompile(`\d+`)

// ParseApplicants extracts the first run of digits from free text such as
// "116 applicants". Text without digits, or a run too large for an int,
// yields nil. It never fails.
func ParseApplicants(text string) *int {
	run := digitRunRegex.FindString(text)
	if run == "" {
		return nil
	}
	n, err := strconv.Atoi(run)
	if err != nil {
		return nil
	}
	return &n
}
