package repository

import (
	"context"
	"errors"

	"ideate/internal/model"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *BoardRepository) FindByCode(ctx context.Context, code string) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil to indicate that the board was not found
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Board{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// FindByModerator returns the boards moderated by moderatorID, newest first.
func (r *BoardRepository) FindByModerator(ctx context.Context, moderatorID string) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Where("moderator_id = ?", moderatorID).Order("created_at DESC").Find(&boards).Error
	return boards, err
}

// IncrementAnonymousCount bumps the board's anonymous visitor counter and
// returns the new value. The read and the write are one statement.
func (r *BoardRepository) IncrementAnonymousCount(ctx context.Context, code string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Raw(
		"UPDATE boards SET anonymous_user_count = anonymous_user_count + 1 WHERE code = ? RETURNING anonymous_user_count",
		code,
	).Scan(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrBoardNotFound
	}
	return count, nil
}

func (r *BoardRepository) UpdateName(ctx context.Context, code, name string) error {
	result := r.db.WithContext(ctx).Model(&model.Board{}).Where("code = ?", code).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoardNotFound
	}
	return nil
}

// Delete removes a board together with its ideas, upvotes, notes and
// saved-board entries. The code becomes free for reuse afterwards.
func (r *BoardRepository) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ideaIDs := tx.Model(&model.Idea{}).Select("id").Where("board_code = ?", code)

		if err := tx.Where("idea_id IN (?)", ideaIDs).Delete(&model.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id IN (?)", ideaIDs).Delete(&model.Upvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_code = ?", code).Delete(&model.Idea{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_code = ?", code).Delete(&model.SavedBoard{}).Error; err != nil {
			return err
		}

		result := tx.Where("code = ?", code).Delete(&model.Board{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBoardNotFound
		}
		return nil
	})
}
