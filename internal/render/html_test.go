package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/pilibhitjob/PilibhitJob/internal/domain"
	"github.com/pilibhitjob/PilibhitJob/internal/render"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func readyPage() render.PageData {
	jobs := []domain.JobRecord{
		{JobTitle: "Typist", Company: "Acme", Type: "Data Entry", ApplyLink: "https://apply.example/typist"},
		{JobTitle: "Caller", Company: "Beta", Type: "Telecalling", Status: "Expired", ApplyLink: "https://apply.example/caller"},
	}
	return render.PageData{
		Title:      "Jobs",
		State:      render.StateReady,
		Categories: []string{"All", "Data Entry", "Telecalling"},
		Criteria:   domain.DefaultCriteria(),
		Cards:      render.Cards(jobs),
		Total:      2,
	}
}

func TestResults_ApplyControls(t *testing.T) {
	var buf bytes.Buffer
	if err := render.Results(&buf, readyPage()); err != nil {
		t.Fatalf("Results: %v", err)
	}
	doc := parseDoc(t, buf.String())

	cards := doc.Find(`[data-role="card"]`)
	if cards.Length() != 2 {
		t.Fatalf("cards = %d, want 2", cards.Length())
	}

	open := cards.Eq(0).Find(`a[data-role="apply"]`)
	if href, _ := open.Attr("href"); href != "https://apply.example/typist" {
		t.Errorf("open href = %q", href)
	}
	if target, _ := open.Attr("target"); target != "_blank" {
		t.Errorf("open target = %q", target)
	}
	if !cards.Eq(0).Find(`[data-role="status-badge"]`).HasClass("status-active") {
		t.Error("open card badge should be active")
	}

	closed := cards.Eq(1)
	if closed.Find(`a[data-role="apply"]`).Length() != 0 {
		t.Error("closed card must not render a link")
	}
	btn := closed.Find(`button[data-role="apply"]`)
	if _, disabled := btn.Attr("disabled"); !disabled {
		t.Error("closed card button should be disabled")
	}
	if got := strings.TrimSpace(btn.Text()); got != "Application Expired" {
		t.Errorf("closed label = %q", got)
	}
	if !closed.Find(`[data-role="status-badge"]`).HasClass("status-closed") {
		t.Error("closed card badge should be closed")
	}

	if _, hidden := doc.Find(`[data-role="no-results"]`).Attr("hidden"); !hidden {
		t.Error("no-results indicator should be hidden when results exist")
	}
}

func TestResults_NoResultsIndicator(t *testing.T) {
	d := readyPage()
	d.Cards = nil
	d.NoResults = true

	var buf bytes.Buffer
	if err := render.Results(&buf, d); err != nil {
		t.Fatalf("Results: %v", err)
	}
	doc := parseDoc(t, buf.String())
	if doc.Find(`[data-role="card"]`).Length() != 0 {
		t.Error("expected no cards")
	}
	if _, hidden := doc.Find(`[data-role="no-results"]`).Attr("hidden"); hidden {
		t.Error("no-results indicator should be visible")
	}
}

func TestResults_EscapesContentAndUnsafeLinks(t *testing.T) {
	d := readyPage()
	d.Cards = render.Cards([]domain.JobRecord{
		{JobTitle: "<script>alert(1)</script>", ApplyLink: "javascript:alert(1)"},
	})

	var buf bytes.Buffer
	if err := render.Results(&buf, d); err != nil {
		t.Fatalf("Results: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Error("title was not escaped")
	}
	doc := parseDoc(t, buf.String())
	if href, _ := doc.Find(`a[data-role="apply"]`).Attr("href"); strings.HasPrefix(href, "javascript:") {
		t.Errorf("unsafe href survived: %q", href)
	}
}

func TestFilterBar_ActiveCategory(t *testing.T) {
	d := readyPage()
	d.Criteria = domain.FilterCriteria{Category: "Telecalling", SearchText: "call"}

	var buf bytes.Buffer
	if err := render.FilterBar(&buf, d); err != nil {
		t.Fatalf("FilterBar: %v", err)
	}
	doc := parseDoc(t, buf.String())
	active := doc.Find(`[data-role="filter"].active`)
	if active.Length() != 1 || strings.TrimSpace(active.Text()) != "Telecalling" {
		t.Fatalf("active filter = %q (n=%d)", active.Text(), active.Length())
	}
	first := doc.Find(`[data-role="filter"]`).First()
	if href, _ := first.Attr("href"); href != "?q=call" {
		t.Errorf("All href = %q, want ?q=call", href)
	}
}

func TestPage_States(t *testing.T) {
	tests := []struct {
		name string
		data render.PageData
		role string
	}{
		{"loading", render.PageData{Title: "Jobs", State: render.StateLoading}, "loading"},
		{"error", render.PageData{Title: "Jobs", State: render.StateError, Error: "HTTP error! status: 404", Guidance: "Check the sheet URL."}, "error"},
		{"ready", readyPage(), "results"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := render.Page(&buf, tt.data); err != nil {
				t.Fatalf("Page: %v", err)
			}
			doc := parseDoc(t, buf.String())
			if doc.Find(`[data-role="`+tt.role+`"]`).Length() != 1 {
				t.Errorf("missing %s block", tt.role)
			}
			if tt.name == "error" {
				if doc.Find(`[data-role="results"]`).Length() != 0 {
					t.Error("error page must not render results")
				}
				if !strings.Contains(doc.Find(`[data-role="error"]`).Text(), "HTTP error! status: 404") {
					t.Error("error message not shown verbatim")
				}
			}
		})
	}
}

func TestQueryHref(t *testing.T) {
	tests := []struct {
		c    domain.FilterCriteria
		want string
	}{
		{domain.DefaultCriteria(), "?"},
		{domain.FilterCriteria{Category: "WFH"}, "?category=WFH"},
		{domain.FilterCriteria{Category: "Data Entry", SearchText: "a&b"}, "?category=Data+Entry&q=a%26b"},
	}
	for _, tt := range tests {
		if got := render.QueryHref(tt.c); got != tt.want {
			t.Errorf("QueryHref(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestPage_ScriptDropsStaleRefreshes(t *testing.T) {
	var buf bytes.Buffer
	if err := render.Page(&buf, readyPage()); err != nil {
		t.Fatal(err)
	}
	var script string
	parseDoc(t, buf.String()).Find("script").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "function refresh()") {
			script = s.Text()
		}
	})
	if script == "" {
		t.Fatal("refresh script missing")
	}
	// Both fragments land together, and only for the latest refresh.
	for _, want := range []string{"var mine = ++seq;", "if (mine !== seq) { return; }", "Promise.all("} {
		if !strings.Contains(script, want) {
			t.Errorf("refresh script missing %q", want)
		}
	}
}
