package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/brewlog-app/brewlog/internal/middleware"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/services"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type RatingRequest struct {
	BeanID       string   `json:"bean_id" binding:"required"`
	BrewMethodID string   `json:"brew_method_id" binding:"required"`
	Rating       float64  `json:"rating" binding:"min=0,max=5"`
	Aroma        *float64 `json:"aroma"`
	Flavor       *float64 `json:"flavor"`
	Aftertaste   *float64 `json:"aftertaste"`
	Acidity      *float64 `json:"acidity"`
	Body         *float64 `json:"body"`
	Balance      *float64 `json:"balance"`
	Notes        string   `json:"notes"`
	IsPublic     bool     `json:"is_public"`
}

type AverageRatingResponse struct {
	BeanID  string  `json:"bean_id"`
	Average float64 `json:"average"`
	HasData bool    `json:"has_data"`
}

// @Summary List my ratings
// @Description List the current user's bean ratings, newest first. Pass bean_id to filter.
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param bean_id query string false "Filter by bean"
// @Success 200 {array} services.EnrichedRating
// @Failure 500 {object} ErrorResponse
// @Router /ratings [get]
func (h *RatingHandler) ListRatings(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var ratings []services.EnrichedRating
	var err error
	if beanID := c.Query("bean_id"); beanID != "" {
		ratings, err = h.ratingService.GetRatingsByBean(userID, beanID)
	} else {
		ratings, err = h.ratingService.GetRatings(userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// @Summary Global public ratings feed
// @Description One page of the cross-user public ratings feed with comment counts and rater identities attached
// @Tags ratings
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} services.EnrichedRating
// @Router /ratings/global [get]
func (h *RatingHandler) GlobalRatings(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	c.JSON(http.StatusOK, h.ratingService.GetGlobalRatings(limit, offset))
}

// @Summary Search public ratings
// @Description Case-insensitive substring match against bean names and tasting notes
// @Tags ratings
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} services.EnrichedRating
// @Router /ratings/search [get]
func (h *RatingHandler) SearchRatings(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, []services.EnrichedRating{})
		return
	}
	c.JSON(http.StatusOK, h.ratingService.SearchGlobalRatings(query))
}

// @Summary Public ratings for a bean
// @Tags ratings
// @Produce json
// @Param id path string true "Bean ID"
// @Success 200 {array} services.EnrichedRating
// @Failure 500 {object} ErrorResponse
// @Router /beans/{id}/ratings/public [get]
func (h *RatingHandler) PublicRatingsByBean(c *gin.Context) {
	ratings, err := h.ratingService.GetPublicRatingsByBean(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// @Summary Average rating for a bean
// @Description Cross-user arithmetic mean of the overall rating; has_data is false when the bean has no ratings
// @Tags ratings
// @Produce json
// @Param id path string true "Bean ID"
// @Success 200 {object} AverageRatingResponse
// @Failure 500 {object} ErrorResponse
// @Router /beans/{id}/ratings/average [get]
func (h *RatingHandler) AverageRatingForBean(c *gin.Context) {
	beanID := c.Param("id")
	average, err := h.ratingService.AverageRatingForBean(beanID)
	if err != nil {
		if err == services.ErrNoRatings {
			c.JSON(http.StatusOK, AverageRatingResponse{BeanID: beanID, HasData: false})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AverageRatingResponse{BeanID: beanID, Average: average, HasData: true})
}

// @Summary Get a rating
// @Tags ratings
// @Produce json
// @Param id path string true "Rating ID"
// @Success 200 {object} services.EnrichedRating
// @Failure 404 {object} ErrorResponse
// @Router /ratings/{id} [get]
func (h *RatingHandler) GetRating(c *gin.Context) {
	rating, err := h.ratingService.GetRating(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// @Summary Create a rating
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RatingRequest true "Rating fields"
// @Success 201 {object} models.BeanRating
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /ratings [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	rating, err := h.ratingService.CreateRating(middleware.GetUserID(c), services.RatingInput{
		BeanID:       req.BeanID,
		BrewMethodID: req.BrewMethodID,
		Rating:       req.Rating,
		Aroma:        req.Aroma,
		Flavor:       req.Flavor,
		Aftertaste:   req.Aftertaste,
		Acidity:      req.Acidity,
		Body:         req.Body,
		Balance:      req.Balance,
		Notes:        req.Notes,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

// @Summary Update a rating
// @Description Full replacement of a rating owned by the current user
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Param request body RatingRequest true "Rating fields"
// @Success 200 {object} models.BeanRating
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ratings/{id} [put]
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	rating, err := h.ratingService.UpdateRating(middleware.GetUserID(c), &models.BeanRating{
		ID:           c.Param("id"),
		BeanID:       req.BeanID,
		BrewMethodID: req.BrewMethodID,
		Rating:       req.Rating,
		Aroma:        coalesce(req.Aroma),
		Flavor:       coalesce(req.Flavor),
		Aftertaste:   coalesce(req.Aftertaste),
		Acidity:      coalesce(req.Acidity),
		Body:         coalesce(req.Body),
		Balance:      coalesce(req.Balance),
		Notes:        req.Notes,
		IsPublic:     req.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// @Summary Delete a rating
// @Tags ratings
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ratings/{id} [delete]
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	if err := h.ratingService.DeleteRating(middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func coalesce(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
