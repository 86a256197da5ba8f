package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ideate/internal/boardcode"
	"ideate/internal/handler"
	"ideate/internal/identity"
	"ideate/internal/live"
	"ideate/internal/middleware"
	"ideate/internal/model"
	"ideate/internal/repository"
	"ideate/internal/session"
	"ideate/internal/session/sessiontest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) SaveBoard(ctx context.Context, userID uuid.UUID, boardCode string) error {
	args := m.Called(ctx, userID, boardCode)
	return args.Error(0)
}

func (m *MockUserRepository) UnsaveBoard(ctx context.Context, userID uuid.UUID, boardCode string) error {
	args := m.Called(ctx, userID, boardCode)
	return args.Error(0)
}

func (m *MockUserRepository) SavedBoards(ctx context.Context, userID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, userID)
	codes := args.Get(0)
	if codes == nil {
		return nil, args.Error(1)
	}
	return codes.([]string), args.Error(1)
}

type MockBoardStore struct {
	mock.Mock
}

func (m *MockBoardStore) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardStore) FindByCode(ctx context.Context, code string) (*model.Board, error) {
	args := m.Called(ctx, code)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardStore) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoardStore) FindByModerator(ctx context.Context, moderatorID string) ([]model.Board, error) {
	args := m.Called(ctx, moderatorID)
	boards := args.Get(0)
	if boards == nil {
		return nil, args.Error(1)
	}
	return boards.([]model.Board), args.Error(1)
}

func (m *MockBoardStore) UpdateName(ctx context.Context, code, name string) error {
	args := m.Called(ctx, code, name)
	return args.Error(0)
}

func (m *MockBoardStore) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockIdeaStore struct {
	mock.Mock
}

func (m *MockIdeaStore) Create(ctx context.Context, idea *model.Idea) error {
	args := m.Called(ctx, idea)
	return args.Error(0)
}

func (m *MockIdeaStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	args := m.Called(ctx, id)
	idea := args.Get(0)
	if idea == nil {
		return nil, args.Error(1)
	}
	return idea.(*model.Idea), args.Error(1)
}

func (m *MockIdeaStore) ListByBoard(ctx context.Context, boardCode string) ([]model.Idea, error) {
	args := m.Called(ctx, boardCode)
	ideas := args.Get(0)
	if ideas == nil {
		return nil, args.Error(1)
	}
	return ideas.([]model.Idea), args.Error(1)
}

func (m *MockIdeaStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIdeaStore) AddUpvote(ctx context.Context, ideaID uuid.UUID, voterID string) error {
	args := m.Called(ctx, ideaID, voterID)
	return args.Error(0)
}

func (m *MockIdeaStore) RemoveUpvote(ctx context.Context, ideaID uuid.UUID, voterID string) error {
	args := m.Called(ctx, ideaID, voterID)
	return args.Error(0)
}

func (m *MockIdeaStore) SetFlag(ctx context.Context, ideaID uuid.UUID, flagged bool) error {
	args := m.Called(ctx, ideaID, flagged)
	return args.Error(0)
}

func (m *MockIdeaStore) UpdateExplanation(ctx context.Context, ideaID uuid.UUID, explanation string) error {
	args := m.Called(ctx, ideaID, explanation)
	return args.Error(0)
}

type MockNoteStore struct {
	mock.Mock
}

func (m *MockNoteStore) Create(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	args := m.Called(ctx, id)
	note := args.Get(0)
	if note == nil {
		return nil, args.Error(1)
	}
	return note.(*model.Note), args.Error(1)
}

func (m *MockNoteStore) ListByIdeaAndCreator(ctx context.Context, ideaID uuid.UUID, creatorID string) ([]model.Note, error) {
	args := m.Called(ctx, ideaID, creatorID)
	notes := args.Get(0)
	if notes == nil {
		return nil, args.Error(1)
	}
	return notes.([]model.Note), args.Error(1)
}

func (m *MockNoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) IncrementAnonymousCount(ctx context.Context, boardCode string) (int64, error) {
	args := m.Called(ctx, boardCode)
	return args.Get(0).(int64), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ev live.Event) {
	m.Called(ev)
}

func (m *MockPublisher) CloseBoard(board string) {
	m.Called(board)
}

// queuedCodes is a boardcode.Source that spells out queued codes and
// then repeats the first symbol.
type queuedCodes struct {
	mu      sync.Mutex
	pending []int
}

func (q *queuedCodes) push(codes ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, code := range codes {
		for i := 0; i < len(code); i++ {
			q.pending = append(q.pending, strings.IndexByte(boardcode.Alphabet, code[i]))
		}
	}
}

func (q *queuedCodes) IntN(int) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) == 0 {
		return 0
	}
	v := q.pending[0]
	q.pending = q.pending[1:]
	return v
}

const testSecret = "test-secret"

type testEnv struct {
	router  *gin.Engine
	store   *session.Store
	codes   *queuedCodes
	users   *MockUserRepository
	boards  *MockBoardStore
	ideas   *MockIdeaStore
	notes   *MockNoteStore
	counter *MockCounter
	hub     *MockPublisher
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, handler.RegisterValidations())

	env := &testEnv{
		store:   session.NewStore(sessiontest.NewBackend(), testSecret, time.Hour, false),
		codes:   &queuedCodes{},
		users:   new(MockUserRepository),
		boards:  new(MockBoardStore),
		ideas:   new(MockIdeaStore),
		notes:   new(MockNoteStore),
		counter: new(MockCounter),
		hub:     new(MockPublisher),
	}
	env.hub.On("Publish", mock.Anything).Maybe()
	env.hub.On("CloseBoard", mock.Anything).Maybe()

	allocator := boardcode.NewAllocator(boardcode.NewGenerator(env.codes), env.boards, 3, repository.IsDuplicateKey)
	assigner := identity.NewAssigner(env.counter)

	boardHandler := handler.NewBoardHandler(env.boards, env.ideas, allocator, assigner, env.hub)
	ideaHandler := handler.NewIdeaHandler(env.boards, env.ideas, assigner, env.hub)
	noteHandler := handler.NewNoteHandler(env.boards, env.ideas, env.notes, assigner)
	userHandler := handler.NewUserHandler(env.users, env.boards)

	r := gin.New()
	r.Use(middleware.Sessions(env.store))

	b := r.Group("/board")
	b.POST("/boards", boardHandler.Create)
	b.GET("/boards/validate/:code", boardHandler.Validate)
	b.GET("/boards/:code", boardHandler.Get)
	b.DELETE("/boards/:code", boardHandler.Delete)
	b.GET("/boards/:code/moderator", boardHandler.IsModerator)
	b.PUT("/boards/:code/name", boardHandler.Rename)
	b.POST("/boards/:code/ideas", ideaHandler.Create)
	b.DELETE("/boards/:code/ideas/:ideaId", ideaHandler.Delete)
	b.GET("/boards/:code/ideas/:ideaId/owner", ideaHandler.IsOwner)
	b.PUT("/boards/:code/ideas/:ideaId/upvote", ideaHandler.Upvote)
	b.DELETE("/boards/:code/ideas/:ideaId/upvote", ideaHandler.RemoveUpvote)
	b.PUT("/boards/:code/ideas/:ideaId/flag", ideaHandler.Flag)
	b.DELETE("/boards/:code/ideas/:ideaId/flag", ideaHandler.Unflag)
	b.PUT("/boards/:code/ideas/:ideaId/explanation", ideaHandler.Explain)
	b.GET("/boards/:code/ideas/:ideaId/notes", noteHandler.List)
	b.POST("/boards/:code/ideas/:ideaId/notes", noteHandler.Create)
	b.DELETE("/boards/:code/ideas/:ideaId/notes/:noteId", noteHandler.Delete)

	u := r.Group("/users")
	u.POST("/register", userHandler.Register)
	u.POST("/login", userHandler.Login)
	u.POST("/logout", userHandler.Logout)
	u.GET("/session", userHandler.Session)
	u.GET("/boards", userHandler.Boards)
	u.PUT("/boards/:code", userHandler.SaveBoard)
	u.DELETE("/boards/:code", userHandler.UnsaveBoard)

	env.router = r
	return env
}

// client replays the session cookie between requests like a browser.
type client struct {
	env    *testEnv
	cookie *http.Cookie
}

func (e *testEnv) newClient() *client {
	return &client{env: e}
}

// loggedInClient starts from a session that is already logged in.
func (e *testEnv) loggedInClient(t *testing.T, userID, name string) *client {
	t.Helper()
	s := session.New()
	s.Login(session.User{ID: userID, Name: name})
	token, err := e.store.Save(context.Background(), s)
	require.NoError(t, err)
	return &client{env: e, cookie: &http.Cookie{Name: session.CookieName, Value: token}}
}

func (cl *client) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.cookie != nil {
		req.AddCookie(cl.cookie)
	}

	resp := httptest.NewRecorder()
	cl.env.router.ServeHTTP(resp, req)

	for _, c := range resp.Result().Cookies() {
		if c.Name == session.CookieName {
			cl.cookie = c
		}
	}
	return resp
}

func (cl *client) session(t *testing.T) *session.Session {
	t.Helper()
	if cl.cookie == nil {
		return session.New()
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cl.cookie)
	return cl.env.store.Load(context.Background(), req)
}

func (cl *client) identity(t *testing.T, board string) (identity.Identity, bool) {
	t.Helper()
	return cl.session(t).Identity(board)
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body
}
