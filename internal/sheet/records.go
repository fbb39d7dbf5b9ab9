package sheet

import (
	"strings"

	"github.com/pilibhitjob/PilibhitJob/internal/domain"
)

// Canonical keys produced by NormalizeKey for the sheet's columns.
const (
	KeyJobTitle    = "jobTitle"
	KeyCompany     = "company"
	KeyType        = "type"
	KeyLocation    = "location"
	KeySalary      = "salary"
	KeyDescription = "description"
	KeyApplyLink   = "applyLink"
	KeyStatus      = "status"
)

// headerTitle is what a re-parsed header row's title cell normalizes to.
const headerTitle = "jobtitle"

// Valid reports whether a row can become a JobRecord.
func Valid(r Row) bool {
	t := strings.TrimSpace(r[KeyJobTitle])
	return t != "" && strings.ToLower(t) != headerTitle
}

// ToRecord maps a row onto the typed record. Absent cells become "".
func ToRecord(r Row) domain.JobRecord {
	return domain.JobRecord{
		JobTitle:    r[KeyJobTitle],
		Company:     r[KeyCompany],
		Type:        r[KeyType],
		Location:    r[KeyLocation],
		Salary:      r[KeySalary],
		Description: r[KeyDescription],
		ApplyLink:   r[KeyApplyLink],
		Status:      r[KeyStatus],
	}
}

// Records converts rows to records, dropping rows without a usable title.
func Records(rows []Row) []domain.JobRecord {
	out := make([]domain.JobRecord, 0, len(rows))
	for _, r := range rows {
		if !Valid(r) {
			continue
		}
		out = append(out, ToRecord(r))
	}
	return out
}

// Load is Parse followed by Records.
func Load(raw string) []domain.JobRecord {
	return Records(Parse(raw))
}
