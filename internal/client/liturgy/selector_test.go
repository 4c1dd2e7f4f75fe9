package liturgy

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/client/client"
	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider answers each request with the requested date as the
// celebration. Requests for dates in hold block until released.
type fakeProvider struct {
	mu    sync.Mutex
	calls []time.Time
	hold  map[string]chan struct{}
}

func (f *fakeProvider) Liturgy(ctx context.Context, date time.Time) (*models.LiturgyDocument, error) {
	f.mu.Lock()
	f.calls = append(f.calls, date)
	ch := f.hold[date.Format(time.DateOnly)]
	f.mu.Unlock()

	if ch != nil {
		<-ch
	}
	return &models.LiturgyDocument{Celebration: date.Format(time.DateOnly)}, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewSelector_IdleOnToday(t *testing.T) {
	now := time.Date(2025, time.March, 9, 15, 0, 0, 0, time.UTC)
	s := NewSelector(&fakeProvider{}, logging.Discard(), WithClock(fixedClock(now)))

	v := s.View()
	assert.Equal(t, StateIdle, v.State)
	assert.Equal(t, Date{Year: 2025, Month: time.March, Day: 9}, v.Date)
}

func TestSetDate_LoadsDocument(t *testing.T) {
	p := &fakeProvider{}
	s := NewSelector(p, logging.Discard())

	done, err := s.SetDate(context.Background(), "01/06/2025")
	require.NoError(t, err)
	<-done

	v := s.View()
	assert.Equal(t, StateReady, v.State)
	require.NotNil(t, v.Document)
	assert.Equal(t, "2025-06-01", v.Document.Celebration)
	assert.Equal(t, "2025-06-01", v.Date.String())
}

func TestSetDate_InvalidKeepsSelection(t *testing.T) {
	now := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	p := &fakeProvider{}
	s := NewSelector(p, logging.Discard(), WithClock(fixedClock(now)))

	_, err := s.SetDate(context.Background(), "amanhã")
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, StateIdle, s.View().State)
	assert.Equal(t, "2025-03-09", s.Date().String())
	assert.Empty(t, p.calls)
}

func TestToday_ResetsToClock(t *testing.T) {
	now := time.Date(2025, time.March, 9, 22, 0, 0, 0, time.UTC)
	p := &fakeProvider{}
	s := NewSelector(p, logging.Discard(), WithClock(fixedClock(now)))

	done, err := s.SetDate(context.Background(), "2025-01-01")
	require.NoError(t, err)
	<-done

	<-s.Today(context.Background())

	v := s.View()
	assert.Equal(t, "2025-03-09", v.Date.String())
	assert.Equal(t, "2025-03-09", v.Document.Celebration)
}

func TestSelector_StaleResultIsDiscarded(t *testing.T) {
	releaseA := make(chan struct{})
	p := &fakeProvider{hold: map[string]chan struct{}{"2025-06-01": releaseA}}
	s := NewSelector(p, logging.Discard())
	ctx := context.Background()

	doneA, err := s.SetDate(ctx, "2025-06-01")
	require.NoError(t, err)
	doneB, err := s.SetDate(ctx, "2025-06-02")
	require.NoError(t, err)

	<-doneB
	close(releaseA)
	<-doneA

	v := s.View()
	assert.Equal(t, StateReady, v.State)
	assert.Equal(t, "2025-06-02", v.Document.Celebration)
	assert.Equal(t, "2025-06-02", v.Date.String())
}

func TestSelector_ServerErrorThenRetry(t *testing.T) {
	var (
		mu      sync.Mutex
		queries []string
		fail    = true
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		queries = append(queries, r.URL.RequestURI())
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":"25/12/2025","liturgia":"Natal do Senhor","cor":"Branco","leituras":{}}`))
	}))
	defer srv.Close()

	provider := client.NewHTTPLiturgyClient(srv.URL, srv.Client(), logging.Discard())
	s := NewSelector(provider, logging.Discard())
	ctx := context.Background()

	done, err := s.SetDate(ctx, "2025-12-25")
	require.NoError(t, err)
	<-done

	v := s.View()
	assert.Equal(t, StateError, v.State)
	assert.Contains(t, v.Message, "500")
	assert.Nil(t, v.Document)

	mu.Lock()
	fail = false
	mu.Unlock()

	<-s.Retry(ctx)

	v = s.View()
	assert.Equal(t, StateReady, v.State)
	assert.Equal(t, "Natal do Senhor", v.Document.Celebration)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, queries, 2)
	assert.Equal(t, "/v2/?dia=25&mes=12&ano=2025", queries[0])
	assert.Equal(t, queries[0], queries[1])
}

func TestOnChange_ReportsViews(t *testing.T) {
	s := NewSelector(&fakeProvider{}, logging.Discard())

	var (
		mu     sync.Mutex
		states []State
	)
	s.OnChange(func(v View) {
		mu.Lock()
		states = append(states, v.State)
		mu.Unlock()
	})

	done, err := s.SetDate(context.Background(), "2025-06-01")
	require.NoError(t, err)
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateLoading, StateReady}, states)
}

// hookHandler runs fn for every record logged through it.
type hookHandler struct {
	fn func(slog.Record)
}

func (h hookHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h hookHandler) Handle(_ context.Context, r slog.Record) error {
	h.fn(r)
	return nil
}

func (h hookHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h hookHandler) WithGroup(string) slog.Handler      { return h }

func TestOnChange_DocumentAlwaysMatchesDate(t *testing.T) {
	releaseA := make(chan struct{})
	p := &fakeProvider{hold: map[string]chan struct{}{"2025-06-01": releaseA}}

	var doneA <-chan struct{}
	// Finish the 2025-06-01 load while the 2025-06-02 selection is in
	// progress, before its cycle has begun.
	hook := hookHandler{fn: func(r slog.Record) {
		if r.Message != "date selected" {
			return
		}
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == "date" && a.Value.String() == "2025-06-02" {
				close(releaseA)
				<-doneA
				return false
			}
			return true
		})
	}}
	s := NewSelector(p, logging.NewSlogLogger(slog.New(hook)))

	var (
		mu    sync.Mutex
		views []View
	)
	s.OnChange(func(v View) {
		mu.Lock()
		views = append(views, v)
		mu.Unlock()
	})

	ctx := context.Background()
	var err error
	doneA, err = s.SetDate(ctx, "2025-06-01")
	require.NoError(t, err)
	doneB, err := s.SetDate(ctx, "2025-06-02")
	require.NoError(t, err)
	<-doneB

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, views)
	for _, v := range views {
		if v.Document != nil {
			assert.Equal(t, v.Date.String(), v.Document.Celebration, "view %+v", v)
		}
	}
	last := views[len(views)-1]
	assert.Equal(t, StateReady, last.State)
	assert.Equal(t, "2025-06-02", last.Date.String())
	assert.Equal(t, "2025-06-02", last.Document.Celebration)
}
