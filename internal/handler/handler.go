package handler

import (
	"context"
	"errors"
	"net/http"

	"ideate/internal/boardcode"
	"ideate/internal/identity"
	"ideate/internal/live"
	"ideate/internal/middleware"
	"ideate/internal/model"
	"ideate/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BoardStore interface {
	Create(ctx context.Context, board *model.Board) error
	FindByCode(ctx context.Context, code string) (*model.Board, error)
	FindByModerator(ctx context.Context, moderatorID string) ([]model.Board, error)
	UpdateName(ctx context.Context, code, name string) error
	Delete(ctx context.Context, code string) error
}

type IdeaStore interface {
	Create(ctx context.Context, idea *model.Idea) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Idea, error)
	ListByBoard(ctx context.Context, boardCode string) ([]model.Idea, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddUpvote(ctx context.Context, ideaID uuid.UUID, voterID string) error
	RemoveUpvote(ctx context.Context, ideaID uuid.UUID, voterID string) error
	SetFlag(ctx context.Context, ideaID uuid.UUID, flagged bool) error
	UpdateExplanation(ctx context.Context, ideaID uuid.UUID, explanation string) error
}

type NoteStore interface {
	Create(ctx context.Context, note *model.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Note, error)
	ListByIdeaAndCreator(ctx context.Context, ideaID uuid.UUID, creatorID string) ([]model.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CodeAllocator reserves a fresh board code by running create with
// candidate codes until one is stored.
type CodeAllocator interface {
	Create(ctx context.Context, create func(code string) error) (string, error)
}

// IdentityAssigner resolves who the caller is on a board.
type IdentityAssigner interface {
	EnsureIdentifier(ctx context.Context, s identity.Session, boardCode string, explicit *string) identity.Identity
	GetIdentifier(ctx context.Context, s identity.Session, boardCode string) identity.Identity
}

// Publisher fans board events out to live subscribers.
type Publisher interface {
	Publish(ev live.Event)
	CloseBoard(board string)
}

// respond saves the session, which has to happen before the body is written.
func respond(c *gin.Context, status int, body gin.H) {
	middleware.SaveSession(c)
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, msg string) {
	respond(c, status, gin.H{"success": false, "error": msg})
}

// loadBoard validates the :code parameter and fetches the board. It
// answers the request itself and returns false when the board is unusable.
func loadBoard(c *gin.Context, boards BoardStore) (*model.Board, bool) {
	code := c.Param("code")
	if err := boardcode.Validate(code); err != nil {
		fail(c, http.StatusBadRequest, "Invalid board code")
		return nil, false
	}

	board, err := boards.FindByCode(c.Request.Context(), code)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to retrieve board")
		return nil, false
	}
	if board == nil {
		fail(c, http.StatusNotFound, "Board not found")
		return nil, false
	}
	return board, true
}

// loadIdea fetches the :ideaId idea and checks it belongs to board.
func loadIdea(c *gin.Context, ideas IdeaStore, board *model.Board) (*model.Idea, bool) {
	ideaID, err := uuid.Parse(c.Param("ideaId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid idea ID format")
		return nil, false
	}

	idea, err := ideas.GetByID(c.Request.Context(), ideaID)
	if err != nil && !errors.Is(err, repository.ErrIdeaNotFound) {
		fail(c, http.StatusInternalServerError, "Failed to retrieve idea")
		return nil, false
	}
	if idea == nil || idea.BoardCode != board.Code {
		fail(c, http.StatusNotFound, "Idea not found")
		return nil, false
	}
	return idea, true
}
