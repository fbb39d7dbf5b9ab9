package board

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/pilibhitjob/PilibhitJob/internal/domain"
	"github.com/pilibhitjob/PilibhitJob/internal/render"
	"github.com/pilibhitjob/PilibhitJob/internal/sheet"
)

var (
	// ErrEmptyDataset is the failure when no valid record survives parsing.
	// The text is shown to users verbatim.
	ErrEmptyDataset = errors.New("No valid job data found after parsing.")

	// ErrNotLoading is returned by Load once the board has left Loading.
	ErrNotLoading = errors.New("board: load already attempted")
)

// DefaultGuidance accompanies every error block.
const DefaultGuidance = "Please verify that the job sheet is published to the web as CSV and that the configured source URL is correct."

type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateReady:
		return render.StateReady
	case StateError:
		return render.StateError
	default:
		return render.StateLoading
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Fetcher retrieves the raw CSV text.
type Fetcher interface {
	FetchCSV(ctx context.Context, url string) (string, error)
}

// Controller owns the record set and the active criteria. The record set is
// written once by Load and is read-only afterwards.
type Controller struct {
	url      string
	fetcher  Fetcher
	guidance string

	mu         sync.RWMutex
	started    bool
	state      State
	err        error
	jobs       []domain.JobRecord
	categories []string
	criteria   domain.FilterCriteria
	loadedAt   time.Time

	obsMu     sync.Mutex
	observers []Observer
}

type Option func(*Controller)

// WithGuidance replaces the static text shown under error messages.
func WithGuidance(s string) Option {
	return func(c *Controller) {
		if strings.TrimSpace(s) != "" {
			c.guidance = s
		}
	}
}

func New(f Fetcher, url string, opts ...Option) *Controller {
	c := &Controller{
		url:      url,
		fetcher:  f,
		guidance: DefaultGuidance,
		state:    StateLoading,
		criteria: domain.DefaultCriteria(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Load fetches and parses the sheet, moving the board to Ready or Error.
// It runs at most once; there is no retry.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrNotLoading
	}
	c.started = true
	c.mu.Unlock()

	c.notify(EventLoading, c.Current())

	jobs, err := c.fetchJobs(ctx)

	c.mu.Lock()
	if err != nil {
		c.state = StateError
		c.err = err
	} else {
		c.state = StateReady
		c.jobs = jobs
		c.categories = Categories(jobs)
		c.loadedAt = time.Now().UTC()
	}
	c.mu.Unlock()

	if err != nil {
		log.Printf("[board] load failed url=%s err=%v", c.url, err)
		c.notify(EventError, c.Current())
		return err
	}
	log.Printf("[board] ready records=%d categories=%d", len(jobs), len(c.Categories())-1)
	c.notify(EventReady, c.Current())
	return nil
}

func (c *Controller) fetchJobs(ctx context.Context) ([]domain.JobRecord, error) {
	raw, err := c.fetcher.FetchCSV(ctx, c.url)
	if err != nil {
		return nil, err
	}
	jobs := sheet.Load(raw)
	if len(jobs) == 0 {
		return nil, ErrEmptyDataset
	}
	return jobs, nil
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Err is the failure that moved the board to Error, if any.
func (c *Controller) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Jobs returns a copy of the full record set.
func (c *Controller) Jobs() []domain.JobRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.JobRecord(nil), c.jobs...)
}

// Categories returns "All" plus the distinct categories, or nil before Ready.
func (c *Controller) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.categories...)
}

func (c *Controller) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

func (c *Controller) Criteria() domain.FilterCriteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.criteria
}

// SelectCategory keeps the search text and replaces the category.
func (c *Controller) SelectCategory(category string) View {
	return c.update(func(cr *domain.FilterCriteria) { cr.Category = category })
}

// Search keeps the category and replaces the search text.
func (c *Controller) Search(text string) View {
	return c.update(func(cr *domain.FilterCriteria) { cr.SearchText = text })
}

// SetCriteria replaces both parts of the criteria.
func (c *Controller) SetCriteria(next domain.FilterCriteria) View {
	return c.update(func(cr *domain.FilterCriteria) { *cr = next })
}

func (c *Controller) update(fn func(*domain.FilterCriteria)) View {
	c.mu.Lock()
	fn(&c.criteria)
	c.criteria = normalizeCriteria(c.criteria)
	v := c.viewLocked(c.criteria)
	c.mu.Unlock()

	c.notify(EventCriteria, v)
	return v
}

// Current renders the controller's own criteria.
func (c *Controller) Current() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewLocked(c.criteria)
}

// ViewFor renders arbitrary criteria without touching controller state.
func (c *Controller) ViewFor(cr domain.FilterCriteria) View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.viewLocked(normalizeCriteria(cr))
}

func (c *Controller) viewLocked(cr domain.FilterCriteria) View {
	v := View{
		State:    c.state,
		Guidance: c.guidance,
		Criteria: cr,
		LoadedAt: c.loadedAt,
	}
	switch c.state {
	case StateError:
		v.Error = c.err.Error()
	case StateReady:
		matches := Filter(c.jobs, cr)
		v.Categories = append([]string(nil), c.categories...)
		v.Cards = render.Cards(matches)
		v.Total = len(c.jobs)
		v.NoResults = len(matches) == 0
	}
	return v
}

func normalizeCriteria(cr domain.FilterCriteria) domain.FilterCriteria {
	if cr.Category == "" {
		cr.Category = domain.CategoryAll
	}
	return cr
}
