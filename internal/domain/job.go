package domain

import "strings"

const (
	// CategoryAll is the sentinel category that matches every record.
	CategoryAll = "All"

	StatusActive  = "Active"
	StatusExpired = "Expired"
	StatusFilled  = "Filled"
)

// JobRecord is one normalized row of the published job sheet.
type JobRecord struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Salary      string `json:"salary,omitempty"`
	Description string `json:"description"`
	ApplyLink   string `json:"applyLink"`
	Status      string `json:"status,omitempty"`
}

// EffectiveStatus returns the trimmed status, or StatusActive when the sheet left it blank.
func (j JobRecord) EffectiveStatus() string {
	s := strings.TrimSpace(j.Status)
	if s == "" {
		return StatusActive
	}
	return s
}

// Closed reports whether the listing no longer accepts applications.
func (j JobRecord) Closed() bool {
	switch j.EffectiveStatus() {
	case StatusExpired, StatusFilled:
		return true
	}
	return false
}

// FilterCriteria is the category + free-text pair driving the visible subset.
type FilterCriteria struct {
	Category   string `json:"category"`
	SearchText string `json:"searchText"`
}

// DefaultCriteria matches every record.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Category: CategoryAll}
}

// IsAll reports whether the category stage is a no-op.
func (c FilterCriteria) IsAll() bool {
	return c.Category == "" || c.Category == CategoryAll
}
