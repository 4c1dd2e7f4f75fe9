package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
)

// fakeFixtures implements client.FixtureClient for unit tests.
type fakeFixtures struct {
	mu sync.Mutex

	UsersRet   []models.Credential
	UsersErr   error
	MembersRet []models.Member
	MembersErr error
	EventsRet  []models.Event
	EventsErr  error
	RelicsRet  []models.Relic
	RelicsErr  error

	UsersCalls int
}

func (f *fakeFixtures) Users(context.Context) ([]models.Credential, error) {
	f.mu.Lock()
	f.UsersCalls++
	f.mu.Unlock()
	return f.UsersRet, f.UsersErr
}

func (f *fakeFixtures) Members(context.Context) ([]models.Member, error) {
	return f.MembersRet, f.MembersErr
}

func (f *fakeFixtures) Events(context.Context) ([]models.Event, error) {
	return f.EventsRet, f.EventsErr
}

func (f *fakeFixtures) Relics(context.Context) ([]models.Relic, error) {
	return f.RelicsRet, f.RelicsErr
}

// fakeSessions records what the auth flow writes.
type fakeSessions struct {
	Saved    []*models.UserSession
	SaveErr  error
	Cleared  int
	ClearErr error
}

func (f *fakeSessions) Save(_ context.Context, s *models.UserSession) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	c := *s
	f.Saved = append(f.Saved, &c)
	return nil
}

func (f *fakeSessions) Clear(context.Context) error {
	f.Cleared++
	return f.ClearErr
}
