// Package session owns the authenticated-user record: it is the only place
// that answers "is somebody logged in" and the only writer of the persisted
// session key.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/client/repositories/kv"
	"github.com/dmitrijs2005/ejcdigital/internal/client/storage"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
)

// Key is the storage key the session is persisted under.
const Key = "ejc_user"

// Store is the persistence the manager needs. Atomic runs fn against a
// repository whose writes become visible together or not at all.
type Store interface {
	Atomic(ctx context.Context, fn func(ctx context.Context, repo kv.Repository) error) error
}

// SQLStore is a Store over the local SQLite database.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Atomic(ctx context.Context, fn func(ctx context.Context, repo kv.Repository) error) error {
	return storage.WithTx(ctx, s.db, func(ctx context.Context, tx storage.DBTX) error {
		return fn(ctx, kv.NewSQLiteRepository(tx))
	})
}

// Manager holds the current session in memory and mirrors it to the Store.
type Manager struct {
	store Store
	log   logging.Logger

	mu      sync.RWMutex
	current *models.UserSession
}

func NewManager(store Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log.With("component", "session")}
}

// Current returns a deep copy of the logged-in user, or nil.
func (m *Manager) Current() *models.UserSession {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current.Clone()
}

// LoggedIn reports whether a session is held.
func (m *Manager) LoggedIn() bool {
	return m.Current() != nil
}

// Restore loads the persisted session. A value that does not decode into a
// session object is deleted and treated as absent; the returned error is
// reserved for storage failures.
func (m *Manager) Restore(ctx context.Context) (*models.UserSession, error) {
	var restored *models.UserSession

	err := m.store.Atomic(ctx, func(ctx context.Context, repo kv.Repository) error {
		raw, err := repo.Get(ctx, Key)
		if err != nil {
			return err
		}
		if raw == nil {
			return nil
		}

		var s models.UserSession
		if err := json.Unmarshal(raw, &s); err != nil {
			m.log.Warn(ctx, "discarding malformed session", "error", err)
			return repo.Delete(ctx, Key)
		}
		restored = &s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	m.mu.Lock()
	m.current = restored
	m.mu.Unlock()

	if restored != nil {
		m.log.Info(ctx, "session restored", "user_id", restored.ID)
	}
	return m.Current(), nil
}

// Save persists s and makes it the current session, replacing any previous
// one. The in-memory value changes only after the write succeeded.
func (m *Manager) Save(ctx context.Context, s *models.UserSession) error {
	if s == nil {
		return fmt.Errorf("save session: nil session")
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	err = m.store.Atomic(ctx, func(ctx context.Context, repo kv.Repository) error {
		return repo.Set(ctx, Key, raw)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	saved := s.Clone()
	m.mu.Lock()
	m.current = saved
	m.mu.Unlock()

	m.log.Info(ctx, "session saved", "user_id", s.ID)
	return nil
}

// Clear forgets the session in memory and removes the persisted key. The
// in-memory value is dropped even when the delete fails.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	err := m.store.Atomic(ctx, func(ctx context.Context, repo kv.Repository) error {
		return repo.Delete(ctx, Key)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.log.Info(ctx, "session cleared")
	return nil
}
