// Package render maps job records to presentation units and HTML.
package render

import (
	"strings"

	"github.com/pilibhitjob/PilibhitJob/internal/domain"
)

const (
	descriptionLimit = 100
	ellipsis         = "..."
	salaryFallback   = "Competitive"
	openApplyLabel   = "Apply Now"
)

// Icon is a category indicator. Values are icon-font classes the page styles.
type Icon string

const (
	IconHome      Icon = "fa-home"
	IconKeyboard  Icon = "fa-keyboard"
	IconPhone     Icon = "fa-phone"
	IconBriefcase Icon = "fa-briefcase"
)

// iconRules are tested in order; first match wins.
var iconRules = []struct {
	needle string
	icon   Icon
}{
	{"wfh", IconHome},
	{"data entry", IconKeyboard},
	{"telecalling", IconPhone},
}

// Card is one rendered listing.
type Card struct {
	Title       string `json:"title"`
	Tooltip     string `json:"tooltip"`
	Company     string `json:"company"`
	Category    string `json:"category"`
	Icon        Icon   `json:"icon"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Closed      bool   `json:"closed"`
	ApplyLabel  string `json:"applyLabel"`
	ApplyURL    string `json:"applyUrl,omitempty"`
}

// IconFor picks the category indicator for a type token.
func IconFor(category string) Icon {
	c := strings.ToLower(category)
	for _, r := range iconRules {
		if strings.Contains(c, r.needle) {
			return r.icon
		}
	}
	return IconBriefcase
}

// Truncate keeps the first 100 characters and always appends "...".
func Truncate(s string) string {
	r := []rune(s)
	if len(r) > descriptionLimit {
		r = r[:descriptionLimit]
	}
	return string(r) + ellipsis
}

// NewCard renders one record.
func NewCard(j domain.JobRecord) Card {
	c := Card{
		Title:       j.JobTitle,
		Tooltip:     j.JobTitle,
		Company:     j.Company,
		Category:    j.Type,
		Icon:        IconFor(j.Type),
		Location:    j.Location,
		Salary:      j.Salary,
		Description: Truncate(j.Description),
		Status:      j.EffectiveStatus(),
		Closed:      j.Closed(),
	}
	if strings.TrimSpace(c.Salary) == "" {
		c.Salary = salaryFallback
	}
	if c.Closed {
		c.ApplyLabel = "Application " + c.Status
	} else {
		c.ApplyLabel = openApplyLabel
		c.ApplyURL = j.ApplyLink
	}
	return c
}

// Cards renders records in order.
func Cards(jobs []domain.JobRecord) []Card {
	out := make([]Card, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewCard(j))
	}
	return out
}
