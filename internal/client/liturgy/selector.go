package liturgy

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/client/client"
	"github.com/dmitrijs2005/ejcdigital/internal/client/loader"
	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
)

// State of the selector. StateIdle means a valid date is selected but no
// fetch has been started for it yet.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// View is what the liturgy page renders.
type View struct {
	Date     Date
	State    State
	Document *models.LiturgyDocument
	Message  string
	Cycle    uint64
}

// page is the payload of one liturgy cycle: the date it loads and the
// document, once fetched.
type page struct {
	date Date
	doc  *models.LiturgyDocument
}

// Selector owns the selected date and the liturgy load cycle.
type Selector struct {
	provider client.LiturgyClient
	now      func() time.Time
	log      logging.Logger
	cycle    *loader.Cycle[page]

	mu      sync.Mutex
	date    Date
	started bool
}

// Option configures a Selector.
type Option func(*Selector)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Selector) { s.now = now }
}

// NewSelector returns a selector in StateIdle on today's date.
func NewSelector(provider client.LiturgyClient, log logging.Logger, opts ...Option) *Selector {
	s := &Selector{
		provider: provider,
		now:      time.Now,
		log:      log.With("component", "liturgy"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cycle = loader.New[page]("liturgia", log)
	s.date = DateOf(s.now())
	return s
}

// OnChange forwards every applied cycle snapshot as a View.
func (s *Selector) OnChange(fn func(View)) {
	s.cycle.OnChange(func(snap loader.Snapshot[page]) {
		fn(s.view(snap))
	})
}

// SetDate parses input, selects the date and starts loading it. Invalid
// input leaves the selection and state untouched.
func (s *Selector) SetDate(ctx context.Context, input string) (<-chan struct{}, error) {
	d, err := ParseDate(input)
	if err != nil {
		return nil, err
	}
	return s.Select(ctx, d), nil
}

// Select selects d and starts loading it.
func (s *Selector) Select(ctx context.Context, d Date) <-chan struct{} {
	s.mu.Lock()
	s.date = d
	s.started = true
	s.mu.Unlock()

	s.log.Info(ctx, "date selected", "date", d.String())
	return s.load(ctx, d)
}

// Today resets the selection to the clock's current date and loads it.
func (s *Selector) Today(ctx context.Context) <-chan struct{} {
	return s.Select(ctx, DateOf(s.now()))
}

// Retry re-issues the request for the selected date.
func (s *Selector) Retry(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	d := s.date
	s.started = true
	s.mu.Unlock()

	s.log.Info(ctx, "retrying", "date", d.String())
	return s.load(ctx, d)
}

func (s *Selector) load(ctx context.Context, d Date) <-chan struct{} {
	_, done := s.cycle.Start(ctx, page{date: d}, func(ctx context.Context) (page, error) {
		doc, err := s.provider.Liturgy(ctx, d.In(time.UTC))
		return page{date: d, doc: doc}, err
	})
	return done
}

// Date returns the selected date.
func (s *Selector) Date() Date {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// View returns the current page state.
func (s *Selector) View() View {
	return s.view(s.cycle.Snapshot())
}

// view takes Date from the snapshot's own payload, so a document is always
// shown under the date it was fetched for.
func (s *Selector) view(snap loader.Snapshot[page]) View {
	s.mu.Lock()
	v := View{Date: s.date, Cycle: snap.ID}
	started := s.started
	s.mu.Unlock()

	if !started {
		v.State = StateIdle
		return v
	}
	if snap.ID > 0 {
		v.Date = snap.Data.date
	}
	switch snap.State {
	case loader.StateReady:
		v.State = StateReady
		v.Document = snap.Data.doc
	case loader.StateError:
		v.State = StateError
		v.Message = snap.Message
	default:
		v.State = StateLoading
	}
	return v
}
