package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Common repository errors
var (
	// ErrBoardNotFound is returned when a board is not found
	ErrBoardNotFound = errors.New("board not found")

	// ErrIdeaNotFound is returned when an idea is not found
	ErrIdeaNotFound = errors.New("idea not found")

	// ErrNoteNotFound is returned when a note is not found
	ErrNoteNotFound = errors.New("note not found")

	// ErrAlreadyUpvoted is returned when an identity upvotes the same idea twice
	ErrAlreadyUpvoted = errors.New("idea already upvoted")

	// ErrNotUpvoted is returned when removing an upvote that does not exist
	ErrNotUpvoted = errors.New("idea not upvoted")
)

const uniqueViolation = "23505"

// IsDuplicateKey reports whether err is a unique constraint violation.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
