// Package models defines the client-side data shapes: the persisted user
// session, the fixture documents and the liturgy provider document.
package models

import (
	"encoding/json"
	"slices"
	"time"
)

// Role is the member's function in the group.
type Role string

const (
	RoleParticipant Role = "Participante"
	RoleServer      Role = "Servidor"
	RoleCoordinator Role = "Coordenador"
)

// TeamHistory is one past team assignment.
type TeamHistory struct {
	Team string `json:"team"`
	Year int    `json:"year"`
}

// UnlockedRelic records when the user earned a relic. UnlockedAt is kept as
// the fixture wrote it; see ParseTimestamp.
type UnlockedRelic struct {
	ID         string `json:"id"`
	UnlockedAt string `json:"unlockedAt"`
}

// Time returns the parsed unlock time, or the zero time when it is unparseable.
func (r UnlockedRelic) Time() time.Time {
	t, _ := ParseTimestamp(r.UnlockedAt)
	return t
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp accepts RFC 3339 timestamps, naive date-times and plain
// dates. Zone-less values are read as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, err
}

// UserSession is the authenticated identity kept for the app's lifetime. It
// never holds a password.
//
// Fields the credential record carries beyond the known profile (an e-mail
// address, for example) are kept in Extra and written back verbatim.
type UserSession struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Nickname    string          `json:"nickname"`
	Role        Role            `json:"role"`
	CurrentTeam string          `json:"currentTeam"`
	Points      int             `json:"points"`
	PhotoURL    string          `json:"photoUrl"`
	History     []TeamHistory   `json:"history"`
	Relics      []UnlockedRelic `json:"relics"`

	Extra map[string]json.RawMessage `json:"-"`
}

// DisplayName prefers the nickname, then the name.
func (s *UserSession) DisplayName() string {
	if s.Nickname != "" {
		return s.Nickname
	}
	if s.Name != "" {
		return s.Name
	}
	return "Jovem"
}

// Clone returns a deep copy of s: History, Relics and Extra are not shared
// with the original.
func (s *UserSession) Clone() *UserSession {
	if s == nil {
		return nil
	}
	c := *s
	c.History = slices.Clone(s.History)
	c.Relics = slices.Clone(s.Relics)
	if s.Extra != nil {
		c.Extra = make(map[string]json.RawMessage, len(s.Extra))
		for k, v := range s.Extra {
			c.Extra[k] = slices.Clone(v)
		}
	}
	return &c
}

// Credential is a users.json record: an e-mail, a plaintext password and the
// profile that becomes the session on a successful match.
type Credential struct {
	Email    string
	Password string
	Profile  UserSession
}
