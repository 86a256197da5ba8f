// Package session keeps per-client state server-side, keyed by a random id
// that travels in a signed cookie. The state is the logged-in user, if any,
// and the identity the client holds on each board it visited.
package session

import (
	"ideate/internal/identity"
)

// User is the logged-in account as remembered by the session.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Session struct {
	id         string
	retired    string
	user       *User
	identities map[string]identity.Identity
	modified   bool
}

var _ identity.Session = (*Session)(nil)

// New returns an empty anonymous session. It gets an id when first saved.
func New() *Session {
	return &Session{identities: map[string]identity.Identity{}}
}

// User returns the logged-in user, or nil for an anonymous session.
func (s *Session) User() *User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// ID returns the session id, or "" if the session was never saved.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) UserID() (string, bool) {
	if s.user == nil {
		return "", false
	}
	return s.user.ID, true
}

func (s *Session) Identity(boardCode string) (identity.Identity, bool) {
	id, ok := s.identities[boardCode]
	return id, ok
}

func (s *Session) SetIdentity(boardCode string, id identity.Identity) {
	s.identities[boardCode] = id
	s.modified = true
}

// ClearIdentity forgets the identity held on one board.
func (s *Session) ClearIdentity(boardCode string) {
	if _, ok := s.identities[boardCode]; !ok {
		return
	}
	delete(s.identities, boardCode)
	s.modified = true
}

// Identities returns a copy of the board code to identity mapping.
func (s *Session) Identities() map[string]identity.Identity {
	out := make(map[string]identity.Identity, len(s.identities))
	for k, v := range s.identities {
		out[k] = v
	}
	return out
}

// Login attaches u to the session and drops every board identity, so all
// later board actions are attributed to the account. The session is saved
// under a new id.
func (s *Session) Login(u User) {
	s.rotate()
	s.user = &u
	s.identities = map[string]identity.Identity{}
	s.modified = true
}

// Logout detaches the user and drops every board identity. The old id stops
// resolving once the session is saved.
func (s *Session) Logout() {
	s.rotate()
	s.user = nil
	s.identities = map[string]identity.Identity{}
	s.modified = true
}

// Modified reports whether the session changed since it was loaded.
func (s *Session) Modified() bool {
	return s.modified
}

func (s *Session) rotate() {
	if s.id == "" {
		return
	}
	if s.retired == "" {
		s.retired = s.id
	}
	s.id = ""
}
