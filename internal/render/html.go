package render

import (
	"html/template"
	"io"
	"net/url"

	"github.com/pilibhitjob/PilibhitJob/internal/domain"
)

// Board states as exposed to templates.
const (
	StateLoading = "loading"
	StateReady   = "ready"
	StateError   = "error"
)

// FilterControl is one selectable category button.
type FilterControl struct {
	Label  string
	Href   string
	Active bool
}

// PageData is everything the board templates need.
type PageData struct {
	Title      string
	State      string
	Error      string
	Guidance   string
	Categories []string
	Criteria   domain.FilterCriteria
	Cards      []Card
	Total      int
	NoResults  bool
	LoadedAgo  string
}

// Filters builds the category controls, "All" active when no category is selected.
func (d PageData) Filters() []FilterControl {
	active := d.Criteria.Category
	if d.Criteria.IsAll() {
		active = domain.CategoryAll
	}
	out := make([]FilterControl, 0, len(d.Categories))
	for _, c := range d.Categories {
		out = append(out, FilterControl{
			Label:  c,
			Href:   QueryHref(domain.FilterCriteria{Category: c, SearchText: d.Criteria.SearchText}),
			Active: c == active,
		})
	}
	return out
}

// QueryHref encodes criteria as a relative page URL.
func QueryHref(c domain.FilterCriteria) string {
	v := url.Values{}
	if !c.IsAll() {
		v.Set("category", c.Category)
	}
	if c.SearchText != "" {
		v.Set("q", c.SearchText)
	}
	if len(v) == 0 {
		return "?"
	}
	return "?" + v.Encode()
}

var tmpl = template.Must(template.New("board").Parse(boardTemplates))

// Page writes the full board document.
func Page(w io.Writer, d PageData) error {
	return tmpl.ExecuteTemplate(w, "page", d)
}

// Results writes the results container contents plus the no-results indicator.
func Results(w io.Writer, d PageData) error {
	return tmpl.ExecuteTemplate(w, "results", d)
}

// FilterBar writes the filter controls.
func FilterBar(w io.Writer, d PageData) error {
	return tmpl.ExecuteTemplate(w, "filters", d)
}

const boardTemplates = `
{{define "card"}}<article class="job-card{{if .Closed}} job-closed{{end}}" data-role="card">
  <div class="job-head">
    <i class="fa {{.Icon}}" data-role="category-icon"></i>
    <h3 class="job-title" title="{{.Tooltip}}">{{.Title}}</h3>
    <span class="badge status-{{if .Closed}}closed{{else}}active{{end}}" data-role="status-badge">{{.Status}}</span>
  </div>
  <p class="job-company">{{.Company}}</p>
  <span class="badge category" data-role="category-badge">{{.Category}}</span>
  <ul class="job-meta">
    <li data-role="location">{{.Location}}</li>
    <li data-role="salary">{{.Salary}}</li>
  </ul>
  <p class="job-desc" data-role="description">{{.Description}}</p>
  {{if .Closed}}<button class="apply-btn disabled" data-role="apply" disabled>{{.ApplyLabel}}</button>
  {{else}}<a class="apply-btn" data-role="apply" href="{{.ApplyURL}}" target="_blank" rel="noopener noreferrer">{{.ApplyLabel}}</a>
  {{end}}</article>
{{end}}

{{define "results"}}{{range .Cards}}{{template "card" .}}{{end}}
{{if .NoResults}}<div class="no-results" data-role="no-results">No jobs match your filters.</div>
{{else}}<div class="no-results" data-role="no-results" hidden>No jobs match your filters.</div>
{{end}}
{{end}}

{{define "filters"}}{{range .Filters}}<a class="filter-btn{{if .Active}} active{{end}}" data-role="filter" data-category="{{.Label}}" href="{{.Href}}">{{.Label}}</a>
{{end}}{{end}}

{{define "error"}}<div class="board-error" data-role="error">
  <p><strong>Could not load jobs:</strong> {{.Error}}</p>
  <p>{{.Guidance}}</p>
</div>
{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/static/board.css">
</head>
<body>
<main class="board" data-state="{{.State}}">
  <h1>{{.Title}}</h1>
  {{if eq .State "loading"}}<div class="board-loading" data-role="loading">Loading jobs...</div>
  <script>
  new EventSource("/events").onmessage = function (e) {
    var m = JSON.parse(e.data);
    if (m.data && m.data.state && m.data.state !== "loading") { location.reload(); }
  };
  </script>
  {{else if eq .State "error"}}{{template "error" .}}
  {{else}}
  <form class="board-search" method="get" action="/">
    {{if not .Criteria.IsAll}}<input type="hidden" name="category" value="{{.Criteria.Category}}">{{end}}
    <input type="search" name="q" data-role="search" placeholder="Search jobs..." value="{{.Criteria.SearchText}}" autocomplete="off">
  </form>
  <nav class="board-filters" data-role="filters">{{template "filters" .}}</nav>
  <p class="board-meta">{{.Total}} jobs{{if .LoadedAgo}} · updated {{.LoadedAgo}}{{end}}</p>
  <section class="board-results" data-role="results">{{template "results" .}}</section>
  {{end}}
</main>
<script>
(function () {
  var results = document.querySelector('[data-role="results"]');
  var filters = document.querySelector('[data-role="filters"]');
  var search = document.querySelector('[data-role="search"]');
  if (!results || !filters || !search) { return; }
  var category = {{.Criteria.Category}} || "All";
  function qs() {
    var p = new URLSearchParams();
    if (category !== "All") { p.set("category", category); }
    if (search.value) { p.set("q", search.value); }
    return p.toString();
  }
  var seq = 0;
  function refresh() {
    var q = qs();
    var mine = ++seq;
    history.replaceState(null, "", q ? "?" + q : location.pathname);
    Promise.all([
      fetch("/board/results?" + q).then(function (r) { return r.text(); }),
      fetch("/board/filters?" + q).then(function (r) { return r.text(); })
    ]).then(function (parts) {
      // A newer refresh started while this one was in flight.
      if (mine !== seq) { return; }
      results.innerHTML = parts[0];
      filters.innerHTML = parts[1];
    });
  }
  filters.addEventListener("click", function (e) {
    var a = e.target.closest('[data-role="filter"]');
    if (!a) { return; }
    e.preventDefault();
    category = a.getAttribute("data-category");
    refresh();
  });
  search.addEventListener("input", refresh);
  search.form.addEventListener("submit", function (e) { e.preventDefault(); refresh(); });
})();
</script>
</body>
</html>
{{end}}
`
