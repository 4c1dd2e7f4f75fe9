package loader

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/google/uuid"
)

// State of a cycle.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Snapshot is what a page renders. In StateError, Data holds whatever the
// cycle still managed to fetch.
type Snapshot[T any] struct {
	ID      uint64
	State   State
	Data    T
	Err     error
	Message string
}

// Fetch produces the data of one cycle.
type Fetch[T any] func(ctx context.Context) (T, error)

// Cycle tracks the newest load of one page. The zero value is not usable;
// create one with New.
type Cycle[T any] struct {
	name string
	log  logging.Logger

	mu       sync.Mutex
	snap     Snapshot[T]
	onChange func(Snapshot[T])
}

// New returns a cycle in StateLoading with id 0. name appears in logs.
func New[T any](name string, log logging.Logger) *Cycle[T] {
	return &Cycle[T]{
		name: name,
		log:  log.With("component", "loader", "page", name),
		snap: Snapshot[T]{State: StateLoading},
	}
}

// OnChange registers fn to receive every applied snapshot. fn runs with no
// lock held.
func (c *Cycle[T]) OnChange(fn func(Snapshot[T])) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Begin starts a new cycle, resets the snapshot to StateLoading and returns
// the new cycle id. Any earlier cycle becomes stale.
func (c *Cycle[T]) Begin() uint64 {
	var zero T
	return c.begin(zero)
}

func (c *Cycle[T]) begin(seed T) uint64 {
	c.mu.Lock()
	c.snap = Snapshot[T]{ID: c.snap.ID + 1, State: StateLoading, Data: seed}
	snap, fn := c.snap, c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
	return snap.ID
}

// Commit applies the result of cycle id. It returns false, leaving the
// snapshot untouched, when id is not the newest cycle.
func (c *Cycle[T]) Commit(id uint64, data T, err error) bool {
	c.mu.Lock()
	if id != c.snap.ID {
		newest := c.snap.ID
		c.mu.Unlock()
		c.log.Debug(context.Background(), "discarding stale result", "cycle", id, "newest", newest)
		return false
	}

	c.snap.Data = data
	if err != nil {
		c.snap.State = StateError
		c.snap.Err = err
		c.snap.Message = Message(err)
	} else {
		c.snap.State = StateReady
		c.snap.Err = nil
		c.snap.Message = ""
	}
	snap, fn := c.snap, c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
	return true
}

// Start begins a cycle whose loading snapshot carries seed as Data and runs
// fetch in its own goroutine. The returned channel is closed once the result
// was committed or discarded. A newer cycle never cancels ctx of an older
// one.
func (c *Cycle[T]) Start(ctx context.Context, seed T, fetch Fetch[T]) (uint64, <-chan struct{}) {
	id := c.begin(seed)
	done := make(chan struct{})

	go func() {
		defer close(done)
		c.resolve(ctx, id, fetch)
	}()

	return id, done
}

// Run begins a cycle, waits for fetch and returns the snapshot afterwards.
// When a newer cycle started meanwhile, the returned snapshot is the newer
// one's.
func (c *Cycle[T]) Run(ctx context.Context, fetch Fetch[T]) Snapshot[T] {
	id := c.Begin()
	c.resolve(ctx, id, fetch)
	return c.Snapshot()
}

func (c *Cycle[T]) resolve(ctx context.Context, id uint64, fetch Fetch[T]) {
	log := c.log.With("cycle", id, "trace_id", uuid.NewString())
	log.Debug(ctx, "cycle started")

	data, err := fetch(ctx)
	if err != nil {
		log.Warn(ctx, "cycle failed", "error", err)
	}
	if c.Commit(id, data, err) {
		log.Debug(ctx, "cycle applied")
	}
}

// Snapshot returns the current state.
func (c *Cycle[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}
