package services

import (
	"errors"
	"log"
	"time"

	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
)

const commentTimeFormat = "2006-01-02 15:04:05"

// EnrichedComment is a comment with the commenter's identity resolved and a
// preformatted local timestamp for display.
type EnrichedComment struct {
	models.BeanComment
	UserName           string `json:"user_name"`
	UserAvatar         string `json:"user_avatar,omitempty"`
	CreatedAtFormatted string `json:"created_at_formatted"`
}

type CommentService struct {
	commentRepo *repository.CommentRepository
	profileRepo *repository.ProfileRepository
}

func NewCommentService(commentRepo *repository.CommentRepository, profileRepo *repository.ProfileRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		profileRepo: profileRepo,
	}
}

// GetCommentsForRating assembles a rating's thread oldest-first. The profile
// lookup is batched and decorative; a failure leaves the anonymous defaults.
func (s *CommentService) GetCommentsForRating(ratingID string) ([]EnrichedComment, error) {
	comments, err := s.commentRepo.FindByRating(ratingID)
	if err != nil {
		log.Printf("Error fetching comments: %v", err)
		return nil, err
	}

	userIDSet := make(map[string]bool)
	userIDs := make([]string, 0, len(comments))
	for _, comment := range comments {
		if comment.UserID != "" && !userIDSet[comment.UserID] {
			userIDSet[comment.UserID] = true
			userIDs = append(userIDs, comment.UserID)
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

	enriched := make([]EnrichedComment, len(comments))
	for i, comment := range comments {
		enriched[i] = enrichComment(comment, profileByUser[comment.UserID])
	}
	return enriched, nil
}

// AddComment posts a comment on a rating. It fails before any write when no
// identity is present, then re-resolves only the poster's profile so the
// caller gets an immediately displayable comment without a thread re-fetch.
func (s *CommentService) AddComment(userID, ratingID, text string) (*EnrichedComment, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	comment := &models.BeanComment{
		ID:       uuid.NewString(),
		UserID:   userID,
		RatingID: ratingID,
		Comment:  text,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		log.Printf("Error adding comment: %v", err)
		return nil, err
	}

	var profile models.Profile
	stored, err := s.profileRepo.FindByID(userID)
	if err != nil {
		log.Printf("Error fetching user profile: %v", err)
	} else if stored != nil {
		profile = *stored
	}

	enriched := enrichComment(*comment, profile)
	return &enriched, nil
}

func (s *CommentService) DeleteComment(userID, commentID string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}

	err := s.commentRepo.Delete(commentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		log.Printf("Error deleting comment: %v", err)
		return err
	}
	return nil
}

func enrichComment(comment models.BeanComment, profile models.Profile) EnrichedComment {
	enriched := EnrichedComment{
		BeanComment:        comment,
		UserName:           AnonymousUser,
		UserAvatar:         profile.AvatarURL,
		CreatedAtFormatted: comment.CreatedAt.In(time.Local).Format(commentTimeFormat),
	}
	if profile.Username != "" {
		enriched.UserName = profile.Username
	}
	return enriched
}
