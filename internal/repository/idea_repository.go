package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ideate/internal/model"
)

type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// Create adds a new idea to the database
func (r *IdeaRepository) Create(ctx context.Context, idea *model.Idea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

// GetByID retrieves an idea by its ID
func (r *IdeaRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	var idea model.Idea
	result := r.db.WithContext(ctx).First(&idea, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, result.Error
	}
	return &idea, nil
}

// ListByBoard retrieves the ideas posted to a board, newest first
func (r *IdeaRepository) ListByBoard(ctx context.Context, boardCode string) ([]model.Idea, error) {
	var ideas []model.Idea
	result := r.db.WithContext(ctx).Where("board_code = ?", boardCode).Order("created_at DESC").Find(&ideas)
	if result.Error != nil {
		return nil, result.Error
	}
	return ideas, nil
}

// Delete removes an idea with its upvotes and notes
func (r *IdeaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("idea_id = ?", id).Delete(&model.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Where("idea_id = ?", id).Delete(&model.Upvote{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Idea{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrIdeaNotFound
		}
		return nil
	})
}

// AddUpvote records an upvote by voterID. An identity can upvote an idea at most once.
func (r *IdeaRepository) AddUpvote(ctx context.Context, ideaID uuid.UUID, voterID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.Upvote{IdeaID: ideaID, VoterID: voterID}).Error; err != nil {
			if IsDuplicateKey(err) {
				return ErrAlreadyUpvoted
			}
			return err
		}

		result := tx.Model(&model.Idea{}).
			Where("id = ?", ideaID).
			Update("upvote_count", gorm.Expr("upvote_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrIdeaNotFound
		}
		return nil
	})
}

// RemoveUpvote withdraws an upvote previously made by voterID
func (r *IdeaRepository) RemoveUpvote(ctx context.Context, ideaID uuid.UUID, voterID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("idea_id = ? AND voter_id = ?", ideaID, voterID).Delete(&model.Upvote{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotUpvoted
		}

		return tx.Model(&model.Idea{}).
			Where("id = ? AND upvote_count > 0", ideaID).
			Update("upvote_count", gorm.Expr("upvote_count - 1")).Error
	})
}

// SetFlag flags or unflags an idea
func (r *IdeaRepository) SetFlag(ctx context.Context, ideaID uuid.UUID, flagged bool) error {
	result := r.db.WithContext(ctx).Model(&model.Idea{}).
		Where("id = ?", ideaID).
		Update("flagged", flagged)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIdeaNotFound
	}
	return nil
}

// UpdateExplanation replaces the explanation of an idea
func (r *IdeaRepository) UpdateExplanation(ctx context.Context, ideaID uuid.UUID, explanation string) error {
	result := r.db.WithContext(ctx).Model(&model.Idea{}).
		Where("id = ?", ideaID).
		Update("explanation", explanation)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrIdeaNotFound
	}
	return nil
}
