package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"ideate/internal/identity"
	"ideate/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// CookieName is the cookie that carries the session token.
	CookieName = "ideate_session"
	// TokenHeader echoes the session token for clients that do not keep cookies.
	TokenHeader = "X-Session-Token"
	// DefaultMaxAge is how long a session lives.
	DefaultMaxAge = 30 * 24 * time.Hour
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Backend persists session state. Find returns nil for an unknown id or one
// that expired at or before now.
type Backend interface {
	Find(ctx context.Context, id string, now time.Time) (*model.Session, error)
	Save(ctx context.Context, s *model.Session) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type state struct {
	User       *User                        `json:"usr,omitempty"`
	Identities map[string]identity.Identity `json:"ids,omitempty"`
}

// Store keeps session state in a Backend and hands clients an HS256-signed
// token naming the session id.
type Store struct {
	backend Backend
	secret  []byte
	maxAge  time.Duration
	secure  bool
	now     func() time.Time
	newID   func() string
}

func NewStore(backend Backend, secret string, maxAge time.Duration, secure bool) *Store {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Store{
		backend: backend,
		secret:  []byte(secret),
		maxAge:  maxAge,
		secure:  secure,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (st *Store) MaxAge() time.Duration { return st.maxAge }

func (st *Store) Secure() bool { return st.secure }

// Encode signs a token for the session id.
func (st *Store) Encode(id string) (string, error) {
	now := st.now()
	c := jwt.RegisteredClaims{
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(st.maxAge)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(st.secret)
}

// Decode verifies a token and returns the session id it names.
func (st *Store) Decode(tokenStr string) (string, error) {
	var c jwt.RegisteredClaims
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return st.secret, nil
	}
	token, err := jwt.ParseWithClaims(tokenStr, &c, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(st.now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if c.ID == "" {
		return "", ErrInvalidClaims
	}
	return c.ID, nil
}

// Load returns the session named by the request cookie or, failing that,
// by an "Authorization: Bearer" header. A missing, tampered or expired
// token, or one whose session is gone, yields a fresh anonymous session.
func (st *Store) Load(ctx context.Context, r *http.Request) *Session {
	var tokenStr string
	if cookie, err := r.Cookie(CookieName); err == nil {
		tokenStr = cookie.Value
	} else if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenStr = parts[1]
		}
	}
	if tokenStr == "" {
		return New()
	}

	id, err := st.Decode(tokenStr)
	if err != nil {
		return New()
	}

	rec, err := st.backend.Find(ctx, id, st.now())
	if err != nil {
		log.Printf("⚠️ Failed to load session: %v", err)
		return New()
	}
	if rec == nil {
		return New()
	}

	var data state
	if err := json.Unmarshal([]byte(rec.Data), &data); err != nil {
		log.Printf("⚠️ Discarding unreadable session %s: %v", id, err)
		return New()
	}
	if data.User != nil && data.User.ID == "" {
		return New()
	}

	s := New()
	s.id = rec.ID
	s.user = data.User
	for board, ident := range data.Identities {
		s.identities[board] = ident
	}
	return s
}

// Save persists the session, assigning an id on first save, and returns a
// fresh token for it. A session id retired by Login or Logout is deleted.
func (st *Store) Save(ctx context.Context, s *Session) (string, error) {
	if s.retired != "" {
		if err := st.backend.Delete(ctx, s.retired); err != nil {
			return "", fmt.Errorf("delete retired session: %w", err)
		}
		s.retired = ""
	}
	if s.id == "" {
		s.id = st.newID()
	}

	data, err := json.Marshal(state{User: s.user, Identities: s.identities})
	if err != nil {
		return "", err
	}
	rec := &model.Session{
		ID:        s.id,
		Data:      string(data),
		ExpiresAt: st.now().Add(st.maxAge),
	}
	if err := st.backend.Save(ctx, rec); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	tokenStr, err := st.Encode(s.id)
	if err != nil {
		return "", err
	}
	s.modified = false
	return tokenStr, nil
}

// Prune deletes expired sessions.
func (st *Store) Prune(ctx context.Context) (int64, error) {
	return st.backend.DeleteExpired(ctx, st.now())
}
