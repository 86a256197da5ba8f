package handler_test

import (
	"net/http"
	"testing"

	"ideate/internal/model"
	"ideate/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotes_ListOnlyOwn(t *testing.T) {
	env := setupIdeaTest(t, 1)
	idea := env.withIdea("someone")
	env.notes.On("ListByIdeaAndCreator", mock.Anything, idea.ID, "1").Return([]model.Note{
		{ID: uuid.New(), IdeaID: idea.ID, CreatorID: "1", Content: "follow up"},
	}, nil)

	resp := env.newClient().do(t, http.MethodGet, ideaPath(idea, "/notes"), nil)

	require.Equal(t, http.StatusOK, resp.Code)
	notes := decode(t, resp)["notes"].([]any)
	require.Len(t, notes, 1)
	assert.Equal(t, "follow up", notes[0].(map[string]any)["content"])
}

func TestNotes_Create(t *testing.T) {
	env := setupIdeaTest(t, 1)
	idea := env.withIdea("someone")
	env.notes.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Note) bool {
		return n.IdeaID == idea.ID && n.CreatorID == "1" && n.Content == "ask legal"
	})).Return(nil)

	cl := env.newClient()
	resp := cl.do(t, http.MethodPost, ideaPath(idea, "/notes"), map[string]string{"text": "ask legal"})
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = cl.do(t, http.MethodPost, ideaPath(idea, "/notes"), map[string]string{"text": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	env.notes.AssertNumberOfCalls(t, "Create", 1)
}

func TestNotes_DeleteSomeoneElsesIsNotFound(t *testing.T) {
	env := setupIdeaTest(t, 1)
	idea := env.withIdea("someone")
	mine := &model.Note{ID: uuid.New(), IdeaID: idea.ID, CreatorID: "1"}
	theirs := &model.Note{ID: uuid.New(), IdeaID: idea.ID, CreatorID: "2"}
	env.notes.On("GetByID", mock.Anything, mine.ID).Return(mine, nil)
	env.notes.On("GetByID", mock.Anything, theirs.ID).Return(theirs, nil)
	env.notes.On("Delete", mock.Anything, mine.ID).Return(nil)

	cl := env.newClient()
	resp := cl.do(t, http.MethodDelete, ideaPath(idea, "/notes/"+theirs.ID.String()), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = cl.do(t, http.MethodDelete, ideaPath(idea, "/notes/"+mine.ID.String()), nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	env.notes.AssertNotCalled(t, "Delete", mock.Anything, theirs.ID)
}

func TestNotes_DeleteMissing(t *testing.T) {
	env := setupIdeaTest(t, 1)
	idea := env.withIdea("someone")
	missing := uuid.New()
	env.notes.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrNoteNotFound)

	resp := env.newClient().do(t, http.MethodDelete, ideaPath(idea, "/notes/"+missing.String()), nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
