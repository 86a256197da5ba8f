package identity_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"ideate/internal/identity"
	"ideate/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) IncrementAnonymousCount(ctx context.Context, boardCode string) (int64, error) {
	args := m.Called(ctx, boardCode)
	return args.Get(0).(int64), args.Error(1)
}

// boardCounter behaves like the database counter of a set of boards.
type boardCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newBoardCounter() *boardCounter {
	return &boardCounter{counts: map[string]int64{}}
}

func (c *boardCounter) IncrementAnonymousCount(_ context.Context, boardCode string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[boardCode]++
	return c.counts[boardCode], nil
}

func TestGetIdentifier_IsIdempotent(t *testing.T) {
	counter := new(MockCounter)
	counter.On("IncrementAnonymousCount", mock.Anything, "ABC123").Return(int64(7), nil).Once()
	assigner := identity.NewAssigner(counter)
	s := session.New()

	first := assigner.GetIdentifier(context.Background(), s, "ABC123")
	second := assigner.GetIdentifier(context.Background(), s, "ABC123")

	assert.Equal(t, "7", first.Value)
	assert.Equal(t, identity.KindAnonymous, first.Kind)
	assert.Equal(t, first, second)
	counter.AssertExpectations(t)
	counter.AssertNumberOfCalls(t, "IncrementAnonymousCount", 1)
}

func TestGetIdentifier_DistinctAnonymousSessions(t *testing.T) {
	counter := newBoardCounter()
	assigner := identity.NewAssigner(counter)

	a := assigner.GetIdentifier(context.Background(), session.New(), "ABC123")
	b := assigner.GetIdentifier(context.Background(), session.New(), "ABC123")

	assert.NotEqual(t, a.Value, b.Value)
	assert.Equal(t, int64(2), counter.counts["ABC123"])
}

func TestGetIdentifier_VisitScenario(t *testing.T) {
	counter := newBoardCounter()
	assigner := identity.NewAssigner(counter)
	ctx := context.Background()
	sessionA, sessionB := session.New(), session.New()

	assert.Equal(t, int64(0), counter.counts["ABC123"])

	a := assigner.GetIdentifier(ctx, sessionA, "ABC123")
	assert.Equal(t, "1", a.Value)
	assert.Equal(t, int64(1), counter.counts["ABC123"])

	b := assigner.GetIdentifier(ctx, sessionB, "ABC123")
	assert.Equal(t, "2", b.Value)
	assert.Equal(t, int64(2), counter.counts["ABC123"])

	again := assigner.GetIdentifier(ctx, sessionA, "ABC123")
	assert.Equal(t, "1", again.Value)
	assert.Equal(t, int64(2), counter.counts["ABC123"])
}

func TestGetIdentifier_ScopedPerBoard(t *testing.T) {
	counter := newBoardCounter()
	assigner := identity.NewAssigner(counter)
	s := session.New()

	first := assigner.GetIdentifier(context.Background(), s, "ABC123")
	other := assigner.GetIdentifier(context.Background(), s, "XYZ789")

	assert.Equal(t, "1", first.Value)
	assert.Equal(t, "1", other.Value)
	assert.Equal(t, int64(1), counter.counts["ABC123"])
	assert.Equal(t, int64(1), counter.counts["XYZ789"])
}

func TestEnsureIdentifier_ExplicitValue(t *testing.T) {
	counter := new(MockCounter)
	assigner := identity.NewAssigner(counter)
	s := session.New()
	moderator := "0"

	id := assigner.EnsureIdentifier(context.Background(), s, "ABC123", &moderator)

	assert.Equal(t, identity.Identity{Value: "0", Kind: identity.KindExplicit}, id)
	counter.AssertNotCalled(t, "IncrementAnonymousCount", mock.Anything, mock.Anything)
}

func TestEnsureIdentifier_ExplicitValueDoesNotOverrideExisting(t *testing.T) {
	counter := newBoardCounter()
	assigner := identity.NewAssigner(counter)
	s := session.New()
	override := "99"

	first := assigner.GetIdentifier(context.Background(), s, "ABC123")
	second := assigner.EnsureIdentifier(context.Background(), s, "ABC123", &override)

	assert.Equal(t, first, second)
}

func TestEnsureIdentifier_LoggedInUser(t *testing.T) {
	counter := new(MockCounter)
	assigner := identity.NewAssigner(counter)
	s := session.New()
	s.Login(session.User{ID: "user-1", Name: "alice"})

	id := assigner.GetIdentifier(context.Background(), s, "ABC123")

	assert.Equal(t, identity.Identity{Value: "user-1", Kind: identity.KindUser}, id)
	counter.AssertNotCalled(t, "IncrementAnonymousCount", mock.Anything, mock.Anything)
}

func TestGetIdentifier_LoginReplacesAnonymousIdentity(t *testing.T) {
	counter := newBoardCounter()
	assigner := identity.NewAssigner(counter)
	s := session.New()

	anon := assigner.GetIdentifier(context.Background(), s, "ABC123")
	require.Equal(t, identity.KindAnonymous, anon.Kind)

	s.Login(session.User{ID: "user-1", Name: "alice"})
	afterLogin := assigner.GetIdentifier(context.Background(), s, "ABC123")
	assert.Equal(t, identity.Identity{Value: "user-1", Kind: identity.KindUser}, afterLogin)

	s.Logout()
	afterLogout := assigner.GetIdentifier(context.Background(), s, "ABC123")
	assert.Equal(t, identity.KindAnonymous, afterLogout.Kind)
	assert.Equal(t, "2", afterLogout.Value)
}

func TestGetIdentifier_FallbackOnCounterError(t *testing.T) {
	counter := new(MockCounter)
	counter.On("IncrementAnonymousCount", mock.Anything, "ABC123").Return(int64(0), errors.New("connection refused")).Once()
	assigner := identity.NewAssigner(counter)
	assigner.SetFallback(func() int64 { return 1234567 })
	s := session.New()

	id := assigner.GetIdentifier(context.Background(), s, "ABC123")

	assert.Equal(t, "1234567", id.Value)
	assert.True(t, id.Degraded())

	// The degraded identity sticks for the rest of the session.
	again := assigner.GetIdentifier(context.Background(), s, "ABC123")
	assert.Equal(t, id, again)
	counter.AssertExpectations(t)
}

func TestRandomFallback_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := identity.RandomFallback()
		assert.GreaterOrEqual(t, v, int64(1000000))
		assert.Less(t, v, int64(1000000+999999999))
	}
}

func TestGetIdentifier_ConcurrentVisitorsGetDistinctIdentities(t *testing.T) {
	counter := newBoardCounter()
	assigner := identity.NewAssigner(counter)

	const visitors = 50
	values := make([]string, visitors)
	var wg sync.WaitGroup
	for i := 0; i < visitors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i] = assigner.GetIdentifier(context.Background(), session.New(), "ABC123").Value
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, v := range values {
		assert.False(t, seen[v], "identity %s assigned twice", v)
		seen[v] = true
	}
	assert.Equal(t, int64(visitors), counter.counts["ABC123"])
}

func TestIdentity_Degraded(t *testing.T) {
	assert.False(t, identity.Identity{Value: "1", Kind: identity.KindAnonymous}.Degraded())
	assert.False(t, identity.Identity{Value: "u", Kind: identity.KindUser}.Degraded())
	assert.True(t, identity.Identity{Value: "1000001", Kind: identity.KindFallback}.Degraded())
}
