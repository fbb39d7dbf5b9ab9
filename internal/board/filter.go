// Package board holds the job board's in-memory state: the immutable record
// set, the active filter criteria and the pure filter/search over them.
package board

import (
	"strings"

	"github.com/pilibhitjob/PilibhitJob/internal/domain"
)

// Filter narrows jobs by category, then by search text. The result keeps
// input order and never aliases jobs.
func Filter(jobs []domain.JobRecord, c domain.FilterCriteria) []domain.JobRecord {
	out := make([]domain.JobRecord, 0, len(jobs))
	needle := strings.ToLower(c.SearchText)

	for _, j := range jobs {
		if !c.IsAll() && strings.TrimSpace(j.Type) != c.Category {
			continue
		}
		if needle != "" && !matchesSearch(j, needle) {
			continue
		}
		out = append(out, j)
	}
	return out
}

func matchesSearch(j domain.JobRecord, needle string) bool {
	for _, field := range []string{j.JobTitle, j.Company, j.Description, j.Location, j.Type} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Categories returns "All" followed by each distinct trimmed type in order of
// first occurrence. Blank types get no control.
func Categories(jobs []domain.JobRecord) []string {
	seen := map[string]bool{}
	out := []string{domain.CategoryAll}
	for _, j := range jobs {
		t := strings.TrimSpace(j.Type)
		if t == "" || t == domain.CategoryAll || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
