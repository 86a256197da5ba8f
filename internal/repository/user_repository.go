package repository

import (
	"context"
	"errors"

	"ideate/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	SaveBoard(ctx context.Context, userID uuid.UUID, boardCode string) error
	UnsaveBoard(ctx context.Context, userID uuid.UUID, boardCode string) error
	SavedBoards(ctx context.Context, userID uuid.UUID) ([]string, error)
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveBoard adds a board to the user's collection. Saving twice is a no-op.
func (r *UserRepository) SaveBoard(ctx context.Context, userID uuid.UUID, boardCode string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.SavedBoard{UserID: userID, BoardCode: boardCode}).Error
}

func (r *UserRepository) UnsaveBoard(ctx context.Context, userID uuid.UUID, boardCode string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND board_code = ?", userID, boardCode).
		Delete(&model.SavedBoard{}).Error
}

// SavedBoards returns the codes of the boards in the user's collection, oldest first.
func (r *UserRepository) SavedBoards(ctx context.Context, userID uuid.UUID) ([]string, error) {
	codes := []string{}
	err := r.db.WithContext(ctx).Model(&model.SavedBoard{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("board_code", &codes).Error
	return codes, err
}
