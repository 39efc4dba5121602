package services

import (
	"errors"
	"log"
	"math"

	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrNoRatings      = errors.New("bean has no ratings")
	ErrInvalidRating  = errors.New("rating must be between 0 and 5 in half-point steps")
)

// Display fallbacks applied when a joined row or profile is missing.
const (
	UnknownBean   = "Unknown Bean"
	UnknownMethod = "Unknown Method"
	AnonymousUser = "Anonymous"
)

const searchResultLimit = 20

// EnrichedRating is a rating row decorated with the joined display fields the
// base query alone cannot provide: bean and brew method names, the rater's
// profile, and the comment total.
type EnrichedRating struct {
	models.BeanRating
	BeanName       string `json:"bean_name"`
	BrewMethodName string `json:"brew_method_name"`
	UserName       string `json:"user_name"`
	UserAvatar     string `json:"user_avatar,omitempty"`
	CommentCount   int64  `json:"comment_count"`
}

// RatingInput carries user-submitted rating fields. Sub-ratings are optional
// and coerced to 0 when absent.
type RatingInput struct {
	BeanID       string
	BrewMethodID string
	Rating       float64
	Aroma        *float64
	Flavor       *float64
	Aftertaste   *float64
	Acidity      *float64
	Body         *float64
	Balance      *float64
	Notes        string
	IsPublic     bool
}

type RatingService struct {
	ratingRepo  *repository.RatingRepository
	profileRepo *repository.ProfileRepository
}

func NewRatingService(ratingRepo *repository.RatingRepository, profileRepo *repository.ProfileRepository) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		profileRepo: profileRepo,
	}
}

// GetRatings lists the current user's ratings, newest first. Owned lists only
// need the name joins, not the social decoration.
func (s *RatingService) GetRatings(userID string) ([]EnrichedRating, error) {
	if userID == "" {
		return []EnrichedRating{}, nil
	}

	ratings, err := s.ratingRepo.FindAllByUser(userID)
	if err != nil {
		log.Printf("Error fetching bean ratings: %v", err)
		return nil, err
	}
	return decorate(ratings), nil
}

func (s *RatingService) GetRatingsByBean(userID, beanID string) ([]EnrichedRating, error) {
	if userID == "" {
		return []EnrichedRating{}, nil
	}

	ratings, err := s.ratingRepo.FindByBeanForUser(beanID, userID)
	if err != nil {
		log.Printf("Error fetching bean ratings: %v", err)
		return nil, err
	}
	return decorate(ratings), nil
}

// GetPublicRatingsByBean returns the public ratings of one bean with the full
// social decoration. A failed base fetch surfaces to the caller.
func (s *RatingService) GetPublicRatingsByBean(beanID string) ([]EnrichedRating, error) {
	ratings, err := s.ratingRepo.FindPublicByBean(beanID)
	if err != nil {
		log.Printf("Error fetching public bean ratings by bean: %v", err)
		return nil, err
	}
	return s.attachSocial(decorate(ratings)), nil
}

// GetGlobalRatings returns one page of the public feed. The feed is
// decorative, so any failure collapses to an empty result instead of an
// error.
func (s *RatingService) GetGlobalRatings(limit, offset int) []EnrichedRating {
	ratings, err := s.ratingRepo.FindPublicRange(limit, offset)
	if err != nil {
		log.Printf("Error fetching global bean ratings: %v", err)
		return []EnrichedRating{}
	}
	if len(ratings) == 0 {
		return []EnrichedRating{}
	}
	return s.attachSocial(decorate(ratings))
}

// SearchGlobalRatings matches public ratings against a bean name or notes
// substring. Like the feed, failures collapse to an empty result.
func (s *RatingService) SearchGlobalRatings(query string) []EnrichedRating {
	ratings, err := s.ratingRepo.SearchPublic(query, searchResultLimit)
	if err != nil {
		log.Printf("Error searching global bean ratings: %v", err)
		return []EnrichedRating{}
	}
	if len(ratings) == 0 {
		return []EnrichedRating{}
	}
	return s.attachSocial(decorate(ratings))
}

// GetRating fetches one rating visible to the caller, either their own or a
// public one.
func (s *RatingService) GetRating(userID, id string) (*EnrichedRating, error) {
	rating, err := s.ratingRepo.FindByID(id, userID)
	if err != nil {
		log.Printf("Error fetching bean rating: %v", err)
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}

	enriched := decorate([]models.BeanRating{*rating})
	return &enriched[0], nil
}

func (s *RatingService) CreateRating(userID string, input RatingInput) (*models.BeanRating, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}
	if !validScale(input.Rating) {
		return nil, ErrInvalidRating
	}

	rating := &models.BeanRating{
		ID:           uuid.NewString(),
		UserID:       userID,
		BeanID:       input.BeanID,
		BrewMethodID: input.BrewMethodID,
		Rating:       input.Rating,
		Aroma:        coerce(input.Aroma),
		Flavor:       coerce(input.Flavor),
		Aftertaste:   coerce(input.Aftertaste),
		Acidity:      coerce(input.Acidity),
		Body:         coerce(input.Body),
		Balance:      coerce(input.Balance),
		Notes:        input.Notes,
		IsPublic:     input.IsPublic,
	}

	if err := s.ratingRepo.Create(rating); err != nil {
		log.Printf("Error adding bean rating: %v", err)
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) UpdateRating(userID string, rating *models.BeanRating) (*models.BeanRating, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}
	if !validScale(rating.Rating) {
		return nil, ErrInvalidRating
	}

	rating.UserID = userID
	err := s.ratingRepo.Update(rating)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		log.Printf("Error updating bean rating: %v", err)
		return nil, err
	}

	return s.ratingRepo.FindByID(rating.ID, userID)
}

func (s *RatingService) DeleteRating(userID, id string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}

	err := s.ratingRepo.Delete(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRatingNotFound
		}
		log.Printf("Error deleting bean rating: %v", err)
		return err
	}
	return nil
}

// AverageRatingForBean computes the cross-user mean of a bean's overall
// ratings. A bean with no ratings yields ErrNoRatings, distinct from an
// average of zero.
func (s *RatingService) AverageRatingForBean(beanID string) (float64, error) {
	ratings, err := s.ratingRepo.FindAllForBean(beanID)
	if err != nil {
		log.Printf("Error fetching average rating: %v", err)
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, ErrNoRatings
	}

	var sum float64
	for _, rating := range ratings {
		sum += rating.Rating
	}
	return sum / float64(len(ratings)), nil
}

// decorate attaches the bean and brew method names carried by the base
// query's joins, with fixed placeholders for missing rows.
func decorate(ratings []models.BeanRating) []EnrichedRating {
	enriched := make([]EnrichedRating, len(ratings))
	for i, rating := range ratings {
		e := EnrichedRating{
			BeanRating:     rating,
			BeanName:       UnknownBean,
			BrewMethodName: UnknownMethod,
			UserName:       AnonymousUser,
		}
		if rating.Bean != nil {
			e.BeanName = rating.Bean.Name
		}
		if rating.BrewMethod != nil {
			e.BrewMethodName = rating.BrewMethod.Name
		}
		enriched[i] = e
	}
	return enriched
}

// attachSocial resolves comment counts and rater profiles with one batched
// query each. Both lookups are decorative: a failure is logged and the
// defaults stand.
func (s *RatingService) attachSocial(enriched []EnrichedRating) []EnrichedRating {
	if len(enriched) == 0 {
		return enriched
	}

	ratingIDs := make([]string, 0, len(enriched))
	userIDSet := make(map[string]bool)
	userIDs := make([]string, 0, len(enriched))
	for _, e := range enriched {
		ratingIDs = append(ratingIDs, e.ID)
		if e.BeanRating.UserID != "" && !userIDSet[e.BeanRating.UserID] {
			userIDSet[e.BeanRating.UserID] = true
			userIDs = append(userIDs, e.BeanRating.UserID)
		}
	}

	countByRating := make(map[string]int64)
	counts, err := s.ratingRepo.CommentCounts(ratingIDs)
	if err != nil {
		log.Printf("Error fetching comment counts: %v", err)
	} else {
		for _, c := range counts {
			countByRating[c.RatingID] = c.Count
		}
	}

	profileByUser := make(map[string]models.Profile)
	profiles, err := s.profileRepo.FindByIDs(userIDs)
	if err != nil {
		log.Printf("Error fetching user profiles: %v", err)
	} else {
		for _, p := range profiles {
			profileByUser[p.ID] = p
		}
	}

	for i := range enriched {
		enriched[i].CommentCount = countByRating[enriched[i].ID]
		if profile, ok := profileByUser[enriched[i].BeanRating.UserID]; ok {
			if profile.Username != "" {
				enriched[i].UserName = profile.Username
			}
			enriched[i].UserAvatar = profile.AvatarURL
		}
	}
	return enriched
}

func coerce(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func validScale(v float64) bool {
	if v < 0 || v > 5 {
		return false
	}
	return math.Mod(v*2, 1) == 0
}
