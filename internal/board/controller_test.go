package board_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pilibhitjob/PilibhitJob/internal/board"
	"github.com/pilibhitjob/PilibhitJob/internal/domain"
)

const sheetCSV = "Job Title,Company,Type,Location,Salary,Description,Apply Link,Status\n" +
	"Typist,Acme Corp,WFH,Pilibhit,,Typing from home,https://apply.example/1,\n" +
	"Caller,Beta,Telecalling,Bareilly,9000,Outbound calls,https://apply.example/2,Expired\n" +
	",Nobody,WFH,Nowhere,,,,\n" +
	"Operator,Gamma,Data Entry,Pilibhit,12000,Excel work,https://apply.example/3,Active\n"

type stubFetcher struct {
	body string
	err  error
	url  string
}

func (s *stubFetcher) FetchCSV(_ context.Context, url string) (string, error) {
	s.url = url
	return s.body, s.err
}

type recorder struct {
	mu     sync.Mutex
	events []board.Event
}

func (r *recorder) observe(e board.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) kinds() []board.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []board.EventKind
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func loaded(t *testing.T) *board.Controller {
	t.Helper()
	c := board.New(&stubFetcher{body: sheetCSV}, "https://sheet.example/csv")
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c
}

func TestLoad_Ready(t *testing.T) {
	f := &stubFetcher{body: sheetCSV}
	c := board.New(f, "https://sheet.example/csv")
	if c.State() != board.StateLoading {
		t.Fatalf("initial state = %v", c.State())
	}

	rec := &recorder{}
	c.Subscribe(rec.observe)

	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.url != "https://sheet.example/csv" {
		t.Errorf("fetched url = %q", f.url)
	}
	if c.State() != board.StateReady {
		t.Fatalf("state = %v, want ready", c.State())
	}
	if n := len(c.Jobs()); n != 3 {
		t.Errorf("jobs = %d, want 3 (blank title dropped)", n)
	}
	cats := c.Categories()
	if len(cats) != 4 || cats[0] != domain.CategoryAll {
		t.Errorf("categories = %v", cats)
	}
	if c.Criteria().Category != domain.CategoryAll {
		t.Errorf("initial category = %q", c.Criteria().Category)
	}
	if c.LoadedAt().IsZero() {
		t.Error("LoadedAt not set")
	}

	kinds := rec.kinds()
	if len(kinds) != 2 || kinds[0] != board.EventLoading || kinds[1] != board.EventReady {
		t.Errorf("events = %v", kinds)
	}
}

func TestLoad_FetchFailure(t *testing.T) {
	fetchErr := errors.New("HTTP error! status: 500")
	c := board.New(&stubFetcher{err: fetchErr}, "u")

	rec := &recorder{}
	c.Subscribe(rec.observe)

	if err := c.Load(context.Background()); !errors.Is(err, fetchErr) {
		t.Fatalf("Load err = %v", err)
	}
	v := c.Current()
	if v.State != board.StateError || v.Error != "HTTP error! status: 500" {
		t.Errorf("view = %+v", v)
	}
	if v.Guidance == "" {
		t.Error("error view lacks guidance")
	}
	if len(v.Cards) != 0 || v.NoResults {
		t.Error("error view must not carry results")
	}
	if kinds := rec.kinds(); kinds[len(kinds)-1] != board.EventError {
		t.Errorf("last event = %v", kinds)
	}
}

func TestLoad_EmptyDataset(t *testing.T) {
	for _, body := range []string{"", "Job Title,Company\n", "Job Title\nJobTitle\n,\n"} {
		c := board.New(&stubFetcher{body: body}, "u")
		err := c.Load(context.Background())
		if !errors.Is(err, board.ErrEmptyDataset) {
			t.Errorf("body %q: err = %v", body, err)
			continue
		}
		if got := c.Current().Error; got != "No valid job data found after parsing." {
			t.Errorf("error text = %q", got)
		}
	}
}

func TestLoad_OnlyOnce(t *testing.T) {
	c := loaded(t)
	if err := c.Load(context.Background()); !errors.Is(err, board.ErrNotLoading) {
		t.Fatalf("second Load err = %v", err)
	}

	failed := board.New(&stubFetcher{err: errors.New("boom")}, "u")
	_ = failed.Load(context.Background())
	if err := failed.Load(context.Background()); !errors.Is(err, board.ErrNotLoading) {
		t.Fatalf("retry after error = %v", err)
	}
	if failed.State() != board.StateError {
		t.Errorf("state = %v, want error", failed.State())
	}
}

func TestController_CriteriaUpdates(t *testing.T) {
	c := loaded(t)
	rec := &recorder{}
	c.Subscribe(rec.observe)

	v := c.SelectCategory("WFH")
	if len(v.Cards) != 1 || v.Cards[0].Title != "Typist" || v.NoResults {
		t.Fatalf("WFH view = %+v", v)
	}

	v = c.Search("zzz")
	if len(v.Cards) != 0 || !v.NoResults {
		t.Fatalf("search view = %+v", v)
	}
	if got := c.Criteria(); got.Category != "WFH" || got.SearchText != "zzz" {
		t.Errorf("criteria = %+v", got)
	}

	v = c.SetCriteria(domain.FilterCriteria{})
	if len(v.Cards) != 3 || v.NoResults || v.Criteria.Category != domain.CategoryAll {
		t.Fatalf("reset view = %+v", v)
	}

	if n := len(rec.kinds()); n != 3 {
		t.Errorf("criteria events = %d, want 3", n)
	}
}

func TestController_ViewForIsPure(t *testing.T) {
	c := loaded(t)
	cr := domain.FilterCriteria{Category: "All", SearchText: "pilibhit"}

	a := c.ViewFor(cr)
	b := c.ViewFor(cr)
	if len(a.Cards) != 2 || len(b.Cards) != 2 {
		t.Fatalf("cards = %d / %d", len(a.Cards), len(b.Cards))
	}
	for i := range a.Cards {
		if a.Cards[i] != b.Cards[i] {
			t.Errorf("card %d differs", i)
		}
	}
	if c.Criteria() != domain.DefaultCriteria() {
		t.Errorf("ViewFor changed controller criteria: %+v", c.Criteria())
	}
}

func TestController_RenderedCards(t *testing.T) {
	c := loaded(t)
	v := c.ViewFor(domain.FilterCriteria{Category: "Telecalling"})
	if len(v.Cards) != 1 {
		t.Fatalf("cards = %d", len(v.Cards))
	}
	card := v.Cards[0]
	if !card.Closed || card.ApplyLabel != "Application Expired" || card.ApplyURL != "" {
		t.Errorf("expired card = %+v", card)
	}

	typist := c.ViewFor(domain.FilterCriteria{Category: "WFH"}).Cards[0]
	if typist.Closed || typist.Status != "Active" || typist.Salary != "Competitive" {
		t.Errorf("typist card = %+v", typist)
	}
}

func TestView_Page(t *testing.T) {
	c := loaded(t)
	d := c.Current().Page("Jobs")
	if d.State != "ready" || d.Title != "Jobs" || d.LoadedAgo == "" {
		t.Errorf("page data = %+v", d)
	}
}
