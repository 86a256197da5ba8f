package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"ideate/internal/identity"
	"ideate/internal/live"
	"ideate/internal/middleware"
	"ideate/internal/model"
	"ideate/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/unicode/norm"
)

type IdeaHandler struct {
	boards     BoardStore
	ideas      IdeaStore
	identities IdentityAssigner
	hub        Publisher
}

func NewIdeaHandler(boards BoardStore, ideas IdeaStore, identities IdentityAssigner, hub Publisher) *IdeaHandler {
	return &IdeaHandler{
		boards:     boards,
		ideas:      ideas,
		identities: identities,
		hub:        hub,
	}
}

type CreateIdeaRequest struct {
	Text        string  `json:"text"`
	Explanation *string `json:"explanation"`
}

type ExplainIdeaRequest struct {
	Explanation string `json:"explanation"`
}

type IdeaResponse struct {
	ID          string  `json:"id"`
	Content     string  `json:"content"`
	Explanation *string `json:"explanation,omitempty"`
	Upvotes     int     `json:"upvotes"`
	Flagged     bool    `json:"flagged"`
	CreatedAt   string  `json:"created_at"`
}

func newIdeaResponse(idea *model.Idea) IdeaResponse {
	return IdeaResponse{
		ID:          idea.ID.String(),
		Content:     idea.Content,
		Explanation: idea.Explanation,
		Upvotes:     idea.UpvoteCount,
		Flagged:     idea.Flagged,
		CreatedAt:   idea.CreatedAt.Format(time.RFC3339),
	}
}

// boundedText normalizes s to NFC and checks its length in characters.
func boundedText(s string, lo, hi int) (string, bool) {
	s = norm.NFC.String(s)
	n := utf8.RuneCountInString(s)
	return s, n >= lo && n <= hi
}

// target resolves the board, the caller's identity on it and the idea
// named in the path.
func (h *IdeaHandler) target(c *gin.Context) (*model.Board, identity.Identity, *model.Idea, bool) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return nil, identity.Identity{}, nil, false
	}
	id := h.identities.GetIdentifier(c.Request.Context(), middleware.CurrentSession(c), board.Code)
	idea, ok := loadIdea(c, h.ideas, board)
	if !ok {
		return nil, identity.Identity{}, nil, false
	}
	return board, id, idea, true
}

// Create godoc
// @Summary      Post an idea
// @Tags         Ideas
// @Accept       json
// @Produce      json
// @Param        code     path      string             true  "Board code"
// @Param        request  body      CreateIdeaRequest  true  "Idea"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Failure      404      {object}  map[string]interface{}
// @Router       /board/boards/{code}/ideas [post]
func (h *IdeaHandler) Create(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	id := h.identities.GetIdentifier(ctx, middleware.CurrentSession(c), board.Code)

	var req CreateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}

	content, ok := boundedText(req.Text, model.MinIdeaContentLen, model.MaxIdeaContentLen)
	if !ok {
		fail(c, http.StatusBadRequest, fmt.Sprintf("Limit ideas to %d characters", model.MaxIdeaContentLen))
		return
	}

	idea := &model.Idea{
		BoardCode: board.Code,
		CreatorID: id.Value,
		Content:   content,
	}
	if req.Explanation != nil && *req.Explanation != "" {
		explanation, ok := boundedText(*req.Explanation, model.MinExplanationLen, model.MaxExplanationLen)
		if !ok {
			fail(c, http.StatusBadRequest, fmt.Sprintf("Limit explanations to %d characters", model.MaxExplanationLen))
			return
		}
		idea.Explanation = &explanation
	}

	if err := h.ideas.Create(ctx, idea); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create idea")
		return
	}

	response := newIdeaResponse(idea)
	h.hub.Publish(live.Event{Type: live.TypeIdeaCreated, Board: board.Code, Data: response})
	respond(c, http.StatusCreated, gin.H{"success": true, "idea": response})
}

func (h *IdeaHandler) IsOwner(c *gin.Context) {
	_, id, idea, ok := h.target(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, gin.H{"success": true, "is_user_owner": idea.CreatorID == id.Value})
}

// Delete removes an idea. Only its creator or the board moderator may do so.
func (h *IdeaHandler) Delete(c *gin.Context) {
	board, id, idea, ok := h.target(c)
	if !ok {
		return
	}
	if idea.CreatorID != id.Value && !board.IsModerator(id.Value) {
		fail(c, http.StatusForbidden, "You don't have permission to delete this idea")
		return
	}

	if err := h.ideas.Delete(c.Request.Context(), idea.ID); err != nil {
		h.writeError(c, err, "Failed to delete idea")
		return
	}

	h.hub.Publish(live.Event{Type: live.TypeIdeaDeleted, Board: board.Code, Data: gin.H{"id": idea.ID.String()}})
	respond(c, http.StatusOK, gin.H{"success": true})
}

func (h *IdeaHandler) Upvote(c *gin.Context) {
	board, id, idea, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.ideas.AddUpvote(c.Request.Context(), idea.ID, id.Value); err != nil {
		h.writeError(c, err, "Failed to upvote idea")
		return
	}

	h.hub.Publish(live.Event{Type: live.TypeIdeaUpvoted, Board: board.Code, Data: gin.H{"id": idea.ID.String()}})
	respond(c, http.StatusOK, gin.H{"success": true})
}

func (h *IdeaHandler) RemoveUpvote(c *gin.Context) {
	board, id, idea, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.ideas.RemoveUpvote(c.Request.Context(), idea.ID, id.Value); err != nil {
		h.writeError(c, err, "Failed to remove upvote")
		return
	}

	h.hub.Publish(live.Event{Type: live.TypeIdeaUnvoted, Board: board.Code, Data: gin.H{"id": idea.ID.String()}})
	respond(c, http.StatusOK, gin.H{"success": true})
}

// Flag marks an idea for the moderator's attention. Anyone on the board may flag.
func (h *IdeaHandler) Flag(c *gin.Context) {
	board, _, idea, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.ideas.SetFlag(c.Request.Context(), idea.ID, true); err != nil {
		h.writeError(c, err, "Failed to flag idea")
		return
	}

	h.hub.Publish(live.Event{Type: live.TypeIdeaFlagged, Board: board.Code, Data: gin.H{"id": idea.ID.String()}})
	respond(c, http.StatusOK, gin.H{"success": true})
}

// Unflag clears a flag. Moderator only.
func (h *IdeaHandler) Unflag(c *gin.Context) {
	board, id, idea, ok := h.target(c)
	if !ok {
		return
	}
	if !board.IsModerator(id.Value) {
		fail(c, http.StatusForbidden, "Only the moderator can unflag ideas")
		return
	}

	if err := h.ideas.SetFlag(c.Request.Context(), idea.ID, false); err != nil {
		h.writeError(c, err, "Failed to unflag idea")
		return
	}

	h.hub.Publish(live.Event{Type: live.TypeIdeaUnflagged, Board: board.Code, Data: gin.H{"id": idea.ID.String()}})
	respond(c, http.StatusOK, gin.H{"success": true})
}

func (h *IdeaHandler) Explain(c *gin.Context) {
	board, id, idea, ok := h.target(c)
	if !ok {
		return
	}
	if idea.CreatorID != id.Value && !board.IsModerator(id.Value) {
		fail(c, http.StatusForbidden, "You don't have permission to explain this idea")
		return
	}

	var req ExplainIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}
	explanation, ok := boundedText(req.Explanation, model.MinExplanationLen, model.MaxExplanationLen)
	if !ok {
		fail(c, http.StatusBadRequest, fmt.Sprintf("Explanations must be %d to %d characters", model.MinExplanationLen, model.MaxExplanationLen))
		return
	}

	if err := h.ideas.UpdateExplanation(c.Request.Context(), idea.ID, explanation); err != nil {
		h.writeError(c, err, "Failed to update explanation")
		return
	}

	h.hub.Publish(live.Event{
		Type:  live.TypeIdeaExplained,
		Board: board.Code,
		Data:  gin.H{"id": idea.ID.String(), "explanation": explanation},
	})
	respond(c, http.StatusOK, gin.H{"success": true})
}

func (h *IdeaHandler) writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, repository.ErrIdeaNotFound):
		fail(c, http.StatusNotFound, "Idea not found")
	case errors.Is(err, repository.ErrAlreadyUpvoted):
		fail(c, http.StatusBadRequest, "Idea already upvoted")
	case errors.Is(err, repository.ErrNotUpvoted):
		fail(c, http.StatusBadRequest, "Idea not upvoted")
	default:
		fail(c, http.StatusInternalServerError, msg)
	}
}
