package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"ideate/internal/boardcode"
	"ideate/internal/live"
	"ideate/internal/middleware"
	"ideate/internal/model"
	"ideate/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boards     BoardStore
	ideas      IdeaStore
	allocator  CodeAllocator
	identities IdentityAssigner
	hub        Publisher
}

func NewBoardHandler(boards BoardStore, ideas IdeaStore, allocator CodeAllocator, identities IdentityAssigner, hub Publisher) *BoardHandler {
	return &BoardHandler{
		boards:     boards,
		ideas:      ideas,
		allocator:  allocator,
		identities: identities,
		hub:        hub,
	}
}

type CreateBoardRequest struct {
	Name string `json:"name" binding:"omitempty,max=100"`
}

type RenameBoardRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type BoardResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func newBoardResponse(b *model.Board) BoardResponse {
	return BoardResponse{
		Code:      b.Code,
		Name:      b.Name,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// Create godoc
// @Summary      Create a board
// @Description  Creates a board under a fresh code. The caller becomes its moderator.
// @Tags         Boards
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBoardRequest  false  "Board name"
// @Success      201      {object}  map[string]interface{}
// @Failure      500      {object}  map[string]interface{}
// @Failure      503      {object}  map[string]interface{}
// @Router       /board/boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	// The body is optional.
	var req CreateBoardRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			fail(c, http.StatusBadRequest, "Invalid request")
			return
		}
	}

	ctx := c.Request.Context()
	s := middleware.CurrentSession(c)

	moderatorID := model.AnonymousModerator
	if userID, ok := s.UserID(); ok {
		moderatorID = userID
	}

	code, err := h.allocator.Create(ctx, func(code string) error {
		name := req.Name
		if name == "" {
			name = code
		}
		return h.boards.Create(ctx, &model.Board{
			Code:        code,
			Name:        name,
			ModeratorID: moderatorID,
		})
	})
	if errors.Is(err, boardcode.ErrCodeSpaceExhausted) {
		log.Printf("❌ Board code allocation exhausted: %v", err)
		fail(c, http.StatusServiceUnavailable, "No board code available, try again")
		return
	}
	if err != nil {
		log.Printf("❌ Failed to create board: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to create board")
		return
	}

	// The code may belong to a deleted board this session visited before.
	s.ClearIdentity(code)
	h.identities.EnsureIdentifier(ctx, s, code, &moderatorID)

	respond(c, http.StatusCreated, gin.H{"success": true, "id": code})
}

// Get godoc
// @Summary      Get a board's ideas
// @Tags         Boards
// @Produce      json
// @Param        code  path      string  true  "Board code"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /board/boards/{code} [get]
func (h *BoardHandler) Get(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	h.identities.GetIdentifier(ctx, middleware.CurrentSession(c), board.Code)

	ideas, err := h.ideas.ListByBoard(ctx, board.Code)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to retrieve ideas")
		return
	}

	response := make([]IdeaResponse, len(ideas))
	for i := range ideas {
		response[i] = newIdeaResponse(&ideas[i])
	}

	respond(c, http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"board": newBoardResponse(board),
			"ideas": response,
		},
	})
}

// Validate reports whether a board exists under the given code.
func (h *BoardHandler) Validate(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	respond(c, http.StatusOK, gin.H{"success": true, "board": newBoardResponse(board)})
}

func (h *BoardHandler) IsModerator(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}

	id := h.identities.GetIdentifier(c.Request.Context(), middleware.CurrentSession(c), board.Code)
	respond(c, http.StatusOK, gin.H{"success": true, "is_user_moderator": board.IsModerator(id.Value)})
}

func (h *BoardHandler) Rename(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	id := h.identities.GetIdentifier(ctx, middleware.CurrentSession(c), board.Code)
	if !board.IsModerator(id.Value) {
		fail(c, http.StatusForbidden, "Only the moderator can rename this board")
		return
	}

	var req RenameBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	err := h.boards.UpdateName(ctx, board.Code, req.Name)
	if errors.Is(err, repository.ErrBoardNotFound) {
		fail(c, http.StatusNotFound, "Board not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to rename board")
		return
	}

	h.hub.Publish(live.Event{Type: live.TypeBoardRenamed, Board: board.Code, Data: gin.H{"name": req.Name}})
	respond(c, http.StatusOK, gin.H{"success": true})
}

// Delete removes a board with all of its ideas and disconnects its live subscribers.
func (h *BoardHandler) Delete(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	s := middleware.CurrentSession(c)
	id := h.identities.GetIdentifier(ctx, s, board.Code)
	if !board.IsModerator(id.Value) {
		fail(c, http.StatusForbidden, "Only the moderator can delete this board")
		return
	}

	err := h.boards.Delete(ctx, board.Code)
	if errors.Is(err, repository.ErrBoardNotFound) {
		fail(c, http.StatusNotFound, "Board not found")
		return
	}
	if err != nil {
		log.Printf("❌ Failed to delete board %s: %v", board.Code, err)
		fail(c, http.StatusInternalServerError, "Failed to delete board")
		return
	}

	h.hub.Publish(live.Event{Type: live.TypeBoardDeleted, Board: board.Code})
	h.hub.CloseBoard(board.Code)
	s.ClearIdentity(board.Code)

	respond(c, http.StatusOK, gin.H{"success": true})
}
