package handler

import (
	"errors"
	"net/http"
	"time"

	"ideate/internal/middleware"
	"ideate/internal/model"
	"ideate/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NoteHandler serves private notes. A caller only ever sees and deletes
// the notes it wrote under its identity on the board.
type NoteHandler struct {
	boards     BoardStore
	ideas      IdeaStore
	notes      NoteStore
	identities IdentityAssigner
}

func NewNoteHandler(boards BoardStore, ideas IdeaStore, notes NoteStore, identities IdentityAssigner) *NoteHandler {
	return &NoteHandler{
		boards:     boards,
		ideas:      ideas,
		notes:      notes,
		identities: identities,
	}
}

type CreateNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

type NoteResponse struct {
	ID        string `json:"id"`
	IdeaID    string `json:"idea_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func newNoteResponse(n *model.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID.String(),
		IdeaID:    n.IdeaID.String(),
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func (h *NoteHandler) List(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	id := h.identities.GetIdentifier(ctx, middleware.CurrentSession(c), board.Code)
	idea, ok := loadIdea(c, h.ideas, board)
	if !ok {
		return
	}

	notes, err := h.notes.ListByIdeaAndCreator(ctx, idea.ID, id.Value)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to retrieve notes")
		return
	}

	response := make([]NoteResponse, len(notes))
	for i := range notes {
		response[i] = newNoteResponse(&notes[i])
	}
	respond(c, http.StatusOK, gin.H{"success": true, "notes": response})
}

func (h *NoteHandler) Create(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	id := h.identities.GetIdentifier(ctx, middleware.CurrentSession(c), board.Code)
	idea, ok := loadIdea(c, h.ideas, board)
	if !ok {
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Notes need content")
		return
	}

	note := &model.Note{
		IdeaID:    idea.ID,
		CreatorID: id.Value,
		Content:   req.Text,
	}
	if err := h.notes.Create(ctx, note); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to create note")
		return
	}

	respond(c, http.StatusCreated, gin.H{"success": true, "note": newNoteResponse(note)})
}

func (h *NoteHandler) Delete(c *gin.Context) {
	board, ok := loadBoard(c, h.boards)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	id := h.identities.GetIdentifier(ctx, middleware.CurrentSession(c), board.Code)
	idea, ok := loadIdea(c, h.ideas, board)
	if !ok {
		return
	}

	noteID, err := uuid.Parse(c.Param("noteId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid note ID format")
		return
	}

	note, err := h.notes.GetByID(ctx, noteID)
	if errors.Is(err, repository.ErrNoteNotFound) {
		fail(c, http.StatusNotFound, "Note not found")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to retrieve note")
		return
	}
	// Someone else's note is reported as missing.
	if note.IdeaID != idea.ID || note.CreatorID != id.Value {
		fail(c, http.StatusNotFound, "Note not found")
		return
	}

	if err := h.notes.Delete(ctx, note.ID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			fail(c, http.StatusNotFound, "Note not found")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	respond(c, http.StatusOK, gin.H{"success": true})
}
