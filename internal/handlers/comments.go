package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewlog-app/brewlog/internal/middleware"
	"github.com/brewlog-app/brewlog/internal/services"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// @Summary List comments on a rating
// @Description A rating's comment thread oldest-first, with commenter identities resolved
// @Tags comments
// @Produce json
// @Param id path string true "Rating ID"
// @Success 200 {array} services.EnrichedComment
// @Failure 500 {object} ErrorResponse
// @Router /ratings/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.GetCommentsForRating(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// @Summary Comment on a rating
// @Description Any authenticated user may comment on a public rating
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Param request body CommentRequest true "Comment text"
// @Success 201 {object} services.EnrichedComment
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /ratings/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	comment, err := h.commentService.AddComment(middleware.GetUserID(c), c.Param("id"), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// @Summary Delete a comment
// @Tags comments
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.DeleteComment(middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
