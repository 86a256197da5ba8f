package handler

import (
	"net/http"

	"ideate/internal/middleware"
	"ideate/internal/model"
	"ideate/internal/repository"
	"ideate/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	repo   repository.UserRepositoryInterface
	boards BoardStore
}

func NewUserHandler(repo repository.UserRepositoryInterface, boards BoardStore) *UserHandler {
	return &UserHandler{repo: repo, boards: boards}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=4"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type boardURI struct {
	Code string `uri:"code" binding:"required,boardcode"`
}

// Register godoc
// @Summary      Register a user
// @Description  Creates an account and logs the session in.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Credentials"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  map[string]interface{}
// @Failure      409      {object}  map[string]interface{}
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Username must be at least 4 characters and password at least 6")
		return
	}

	ctx := c.Request.Context()
	existing, err := h.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, "DB error")
		return
	}
	if existing != nil {
		fail(c, http.StatusConflict, "Username already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Hash error")
		return
	}

	user := &model.User{
		ID:             uuid.New(),
		Username:       req.Username,
		HashedPassword: string(hash),
	}
	if err := h.repo.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			fail(c, http.StatusConflict, "Username already exists")
			return
		}
		fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	u := session.User{ID: user.ID.String(), Name: user.Username}
	middleware.CurrentSession(c).Login(u)
	respond(c, http.StatusCreated, gin.H{"success": true, "user": u})
}

// Login godoc
// @Summary      Log in
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  map[string]interface{}
// @Failure      401      {object}  map[string]interface{}
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := h.repo.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		fail(c, http.StatusInternalServerError, "DB error")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		fail(c, http.StatusUnauthorized, "Incorrect login")
		return
	}

	u := session.User{ID: user.ID.String(), Name: user.Username}
	middleware.CurrentSession(c).Login(u)
	respond(c, http.StatusOK, gin.H{"success": true, "user": u})
}

// Logout forgets the user and every board identity the session held.
func (h *UserHandler) Logout(c *gin.Context) {
	middleware.CurrentSession(c).Logout()
	respond(c, http.StatusOK, gin.H{"success": true})
}

// Session reports the logged-in user. A login whose account no longer
// exists is dropped.
func (h *UserHandler) Session(c *gin.Context) {
	s := middleware.CurrentSession(c)
	u := s.User()
	if u == nil {
		respond(c, http.StatusOK, gin.H{"success": true, "loggedIn": false})
		return
	}

	var user *model.User
	if userID, err := uuid.Parse(u.ID); err == nil {
		user, err = h.repo.GetByID(c.Request.Context(), userID)
		if err != nil {
			fail(c, http.StatusInternalServerError, "DB error")
			return
		}
	}
	if user == nil {
		s.Logout()
		respond(c, http.StatusOK, gin.H{"success": true, "loggedIn": false})
		return
	}

	respond(c, http.StatusOK, gin.H{
		"success":  true,
		"loggedIn": true,
		"user":     session.User{ID: user.ID.String(), Name: user.Username},
	})
}

// currentUserID answers 403 itself when the session is anonymous.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := middleware.CurrentSession(c).UserID()
	if !ok {
		fail(c, http.StatusForbidden, "You are not logged in. Log in or register to save a board.")
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		fail(c, http.StatusForbidden, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userID, true
}

// Boards lists the boards the user saved and the boards the user moderates.
func (h *UserHandler) Boards(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	saved, err := h.repo.SavedBoards(ctx, userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to retrieve boards")
		return
	}
	moderated, err := h.boards.FindByModerator(ctx, userID.String())
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to retrieve boards")
		return
	}

	response := make([]BoardResponse, len(moderated))
	for i := range moderated {
		response[i] = newBoardResponse(&moderated[i])
	}
	respond(c, http.StatusOK, gin.H{"success": true, "boards": saved, "moderated": response})
}

func (h *UserHandler) SaveBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var uri boardURI
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, http.StatusBadRequest, "Invalid board code")
		return
	}

	ctx := c.Request.Context()
	board, err := h.boards.FindByCode(ctx, uri.Code)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to retrieve board")
		return
	}
	if board == nil {
		fail(c, http.StatusNotFound, "Board not found")
		return
	}
	if !board.IsModerator(userID.String()) {
		fail(c, http.StatusForbidden, "Only the moderator can save this board")
		return
	}

	if err := h.repo.SaveBoard(ctx, userID, board.Code); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to save board")
		return
	}
	respond(c, http.StatusOK, gin.H{"success": true})
}

func (h *UserHandler) UnsaveBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var uri boardURI
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, http.StatusBadRequest, "Invalid board code")
		return
	}

	if err := h.repo.UnsaveBoard(c.Request.Context(), userID, uri.Code); err != nil {
		fail(c, http.StatusInternalServerError, "Failed to remove board")
		return
	}
	respond(c, http.StatusOK, gin.H{"success": true})
}
