package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/brewlog-app/brewlog/internal/database"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
)

func setupCommentTestDB(t *testing.T) (*repository.CommentRepository, *repository.ProfileRepository, *CommentService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	commentRepo := repository.NewCommentRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	commentService := NewCommentService(commentRepo, profileRepo)

	return commentRepo, profileRepo, commentService
}

func TestCommentService_AddComment(t *testing.T) {
	_, profileRepo, commentService := setupCommentTestDB(t)

	assert.NoError(t, profileRepo.Upsert(&models.Profile{ID: "user-1", Username: "alice"}))

	ratingID := uuid.NewString()
	comment, err := commentService.AddComment("user-1", ratingID, "great crema")
	assert.NoError(t, err)
	assert.Equal(t, "great crema", comment.Comment)
	assert.Equal(t, "alice", comment.UserName)
	assert.NotEmpty(t, comment.CreatedAtFormatted)
}

func TestCommentService_AddComment_NotLoggedIn(t *testing.T) {
	commentRepo, _, commentService := setupCommentTestDB(t)

	ratingID := uuid.NewString()
	_, err := commentService.AddComment("", ratingID, "great crema")
	assert.Equal(t, ErrNotLoggedIn, err)

	comments, err := commentRepo.FindByRating(ratingID)
	assert.NoError(t, err)
	assert.Empty(t, comments, "no row should be written for anonymous callers")
}

func TestCommentService_AddComment_NoProfileFallsBackToAnonymous(t *testing.T) {
	_, _, commentService := setupCommentTestDB(t)

	comment, err := commentService.AddComment("user-1", uuid.NewString(), "great crema")
	assert.NoError(t, err)
	assert.Equal(t, AnonymousUser, comment.UserName)
}

func TestCommentService_GetCommentsForRating_OldestFirst(t *testing.T) {
	_, profileRepo, commentService := setupCommentTestDB(t)

	assert.NoError(t, profileRepo.Upsert(&models.Profile{ID: "user-1", Username: "alice"}))
	assert.NoError(t, profileRepo.Upsert(&models.Profile{ID: "user-2", Username: "bob"}))

	ratingID := uuid.NewString()
	_, err := commentService.AddComment("user-1", ratingID, "first")
	assert.NoError(t, err)
	_, err = commentService.AddComment("user-2", ratingID, "second")
	assert.NoError(t, err)

	comments, err := commentService.GetCommentsForRating(ratingID)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Comment)
	assert.Equal(t, "alice", comments[0].UserName)
	assert.Equal(t, "second", comments[1].Comment)
	assert.Equal(t, "bob", comments[1].UserName)
}

func TestCommentService_GetCommentsForRating_Empty(t *testing.T) {
	_, _, commentService := setupCommentTestDB(t)

	comments, err := commentService.GetCommentsForRating(uuid.NewString())
	assert.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentService_DeleteComment_OwnerOnly(t *testing.T) {
	commentRepo, _, commentService := setupCommentTestDB(t)

	ratingID := uuid.NewString()
	comment, err := commentService.AddComment("user-1", ratingID, "great crema")
	assert.NoError(t, err)

	err = commentService.DeleteComment("user-2", comment.ID)
	assert.Equal(t, ErrCommentNotFound, err)

	err = commentService.DeleteComment("user-1", comment.ID)
	assert.NoError(t, err)

	comments, err := commentRepo.FindByRating(ratingID)
	assert.NoError(t, err)
	assert.Empty(t, comments)
}
