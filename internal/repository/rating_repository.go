package repository

import (
	"errors"
	"strings"

	"github.com/brewlog-app/brewlog/internal/models"
	"gorm.io/gorm"
)

// CommentCount is one row of the batched per-rating comment aggregate.
type CommentCount struct {
	RatingID string `gorm:"column:rating_id" json:"rating_id"`
	Count    int64  `gorm:"column:count" json:"count"`
}

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) Create(rating *models.BeanRating) error {
	return r.db.Create(rating).Error
}

// FindByID returns a rating only when the caller owns it or it is public.
func (r *RatingRepository) FindByID(id, userID string) (*models.BeanRating, error) {
	var rating models.BeanRating
	err := r.db.Preload("Bean").Preload("BrewMethod").
		Where("id = ? AND (user_id = ? OR is_public = ?)", id, userID, true).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) FindAllByUser(userID string) ([]models.BeanRating, error) {
	var ratings []models.BeanRating
	err := r.db.Preload("Bean").Preload("BrewMethod").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) FindByBeanForUser(beanID, userID string) ([]models.BeanRating, error) {
	var ratings []models.BeanRating
	err := r.db.Preload("Bean").Preload("BrewMethod").
		Where("bean_id = ? AND user_id = ?", beanID, userID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) FindPublicByBean(beanID string) ([]models.BeanRating, error) {
	var ratings []models.BeanRating
	err := r.db.Preload("Bean").Preload("BrewMethod").
		Where("bean_id = ? AND is_public = ?", beanID, true).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// FindPublicRange returns one page of the global feed, newest first.
func (r *RatingRepository) FindPublicRange(limit, offset int) ([]models.BeanRating, error) {
	var ratings []models.BeanRating
	err := r.db.Preload("Bean").Preload("BrewMethod").
		Where("is_public = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&ratings).Error
	return ratings, err
}

// SearchPublic matches the term case-insensitively against the related bean
// name or the rating notes. Search results are capped and not paginated.
func (r *RatingRepository) SearchPublic(query string, limit int) ([]models.BeanRating, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var ratings []models.BeanRating
	err := r.db.Preload("Bean").Preload("BrewMethod").
		Joins("LEFT JOIN beans ON beans.id = bean_ratings.bean_id").
		Where("bean_ratings.is_public = ?", true).
		Where("LOWER(beans.name) LIKE ? OR LOWER(bean_ratings.notes) LIKE ?", pattern, pattern).
		Order("bean_ratings.created_at DESC").
		Limit(limit).
		Find(&ratings).Error
	return ratings, err
}

// FindAllForBean returns every rating of a bean regardless of owner. Used for
// the cross-user average.
func (r *RatingRepository) FindAllForBean(beanID string) ([]models.BeanRating, error) {
	var ratings []models.BeanRating
	err := r.db.Where("bean_id = ?", beanID).Find(&ratings).Error
	return ratings, err
}

// CommentCounts resolves comment totals for a set of ratings in one query
// instead of one count query per rating.
func (r *RatingRepository) CommentCounts(ratingIDs []string) ([]CommentCount, error) {
	if len(ratingIDs) == 0 {
		return nil, nil
	}

	var counts []CommentCount
	err := r.db.Model(&models.BeanComment{}).
		Select("rating_id, COUNT(*) as count").
		Where("rating_id IN ?", ratingIDs).
		Group("rating_id").
		Scan(&counts).Error
	return counts, err
}

func (r *RatingRepository) Update(rating *models.BeanRating) error {
	result := r.db.Model(&models.BeanRating{}).
		Where("id = ? AND user_id = ?", rating.ID, rating.UserID).
		Select("bean_id", "brew_method_id", "rating", "aroma", "flavor", "aftertaste",
			"acidity", "body", "balance", "notes", "is_public").
		Updates(rating)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RatingRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.BeanRating{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
