package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when a record is valid JSON but not an object.
var ErrNotObject = errors.New("expected a JSON object")

var profileKeys = map[string]struct{}{
	"id": {}, "name": {}, "nickname": {}, "role": {}, "currentTeam": {},
	"points": {}, "photoUrl": {}, "history": {}, "relics": {},
}

const passwordKey = "password"

// MarshalJSON writes the known profile fields plus Extra. A "password" key
// in Extra is never written.
func (s UserSession) MarshalJSON() ([]byte, error) {
	type plain UserSession
	known, err := json.Marshal(plain(s))
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return known, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		if k == passwordKey {
			continue
		}
		if _, isKnown := profileKeys[k]; isKnown {
			continue
		}
		fields[k] = v
	}
	return json.Marshal(fields)
}

// UnmarshalJSON reads the known profile fields and keeps every other key,
// except "password", in Extra.
func (s *UserSession) UnmarshalJSON(b []byte) error {
	if t := bytes.TrimSpace(b); len(t) == 0 || t[0] != '{' {
		return ErrNotObject
	}

	type plain UserSession
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	p.Extra = nil
	for k, v := range fields {
		if k == passwordKey {
			continue
		}
		if _, isKnown := profileKeys[k]; isKnown {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]json.RawMessage)
		}
		p.Extra[k] = v
	}

	*s = UserSession(p)
	return nil
}

// UnmarshalJSON splits a users.json record into the credential pair and the
// password-free profile.
func (c *Credential) UnmarshalJSON(b []byte) error {
	if t := bytes.TrimSpace(b); len(t) == 0 || t[0] != '{' {
		return ErrNotObject
	}

	var secret struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := json.Unmarshal(b, &secret); err != nil {
		return err
	}

	var profile UserSession
	if err := json.Unmarshal(b, &profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	c.Email, c.Password = "", ""
	if secret.Email != nil {
		c.Email = *secret.Email
	}
	if secret.Password != nil {
		c.Password = *secret.Password
	}
	c.Profile = profile
	return nil
}
