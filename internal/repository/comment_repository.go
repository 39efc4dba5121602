package repository

import (
	"github.com/brewlog-app/brewlog/internal/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *models.BeanComment) error {
	return r.db.Create(comment).Error
}

// FindByRating returns a rating's comment thread oldest-first.
func (r *CommentRepository) FindByRating(ratingID string) ([]models.BeanComment, error) {
	var comments []models.BeanComment
	err := r.db.Where("rating_id = ?", ratingID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.BeanComment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
