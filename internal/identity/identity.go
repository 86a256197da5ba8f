// Package identity assigns every visitor of a board a stable identity
// scoped to that board and to the visitor's session.
package identity

import (
	"context"
	"log"
	"math/rand/v2"
	"strconv"
)

// Kind records how an identity was obtained.
type Kind string

const (
	// KindExplicit is a value supplied by the caller, e.g. a board's moderator at creation.
	KindExplicit Kind = "explicit"
	// KindUser is the durable id of a logged-in user.
	KindUser Kind = "user"
	// KindAnonymous is a value taken from the board's visitor counter.
	KindAnonymous Kind = "anonymous"
	// KindFallback is a random value used when the counter could not be incremented.
	// It is unique with high probability only.
	KindFallback Kind = "fallback"
)

// Fallback identities are drawn from [fallbackBase, fallbackBase+fallbackSpan).
const (
	fallbackBase = 1000000
	fallbackSpan = 999999999
)

type Identity struct {
	Value string `json:"v"`
	Kind  Kind   `json:"k"`
}

// Degraded reports whether the identity is a best-effort fallback.
func (i Identity) Degraded() bool {
	return i.Kind == KindFallback
}

func (i Identity) String() string {
	return i.Value
}

// Session is the per-client state identities are kept in.
type Session interface {
	Identity(boardCode string) (Identity, bool)
	SetIdentity(boardCode string, id Identity)
	UserID() (string, bool)
}

// Counter increments a board's anonymous visitor count and returns the new value.
// The increment must be atomic in the store.
type Counter interface {
	IncrementAnonymousCount(ctx context.Context, boardCode string) (int64, error)
}

// Assigner holds no state of its own; identities live in sessions and
// counters live in the store.
type Assigner struct {
	counter  Counter
	fallback func() int64
}

func NewAssigner(counter Counter) *Assigner {
	return &Assigner{
		counter:  counter,
		fallback: randomFallback,
	}
}

func randomFallback() int64 {
	return fallbackBase + rand.Int64N(fallbackSpan)
}

// EnsureIdentifier gives the session an identity for the board unless it
// already holds one. In order of preference the identity is the explicit
// value, the logged-in user's id, or the next value of the board counter.
// When the counter fails a random value is used and the failure is logged.
func (a *Assigner) EnsureIdentifier(ctx context.Context, s Session, boardCode string, explicit *string) Identity {
	if id, ok := s.Identity(boardCode); ok {
		return id
	}

	var id Identity
	switch userID, loggedIn := s.UserID(); {
	case explicit != nil:
		id = Identity{Value: *explicit, Kind: KindExplicit}
	case loggedIn:
		id = Identity{Value: userID, Kind: KindUser}
	default:
		id = a.anonymous(ctx, boardCode)
	}

	s.SetIdentity(boardCode, id)
	return id
}

// GetIdentifier returns the session's identity for the board, assigning one
// first if needed. It never fails.
func (a *Assigner) GetIdentifier(ctx context.Context, s Session, boardCode string) Identity {
	return a.EnsureIdentifier(ctx, s, boardCode, nil)
}

func (a *Assigner) anonymous(ctx context.Context, boardCode string) Identity {
	count, err := a.counter.IncrementAnonymousCount(ctx, boardCode)
	if err != nil {
		value := a.fallback()
		log.Printf("⚠️  Visitor counter for board %s unavailable, using fallback identity %d: %v", boardCode, value, err)
		return Identity{Value: strconv.FormatInt(value, 10), Kind: KindFallback}
	}
	return Identity{Value: strconv.FormatInt(count, 10), Kind: KindAnonymous}
}
