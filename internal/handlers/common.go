package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewlog-app/brewlog/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto the HTTP taxonomy: missing identity
// is 401, missing or non-owned rows are 404, bad input is 400, everything
// else is 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrSupplierNotFound),
		errors.Is(err, services.ErrBeanNotFound),
		errors.Is(err, services.ErrBrewMethodNotFound),
		errors.Is(err, services.ErrRatingNotFound),
		errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrExtractionNotFound),
		errors.Is(err, services.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidBrewRating),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
