package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewlog-app/brewlog/internal/middleware"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/services"
)

type ExtractionHandler struct {
	extractionService *services.ExtractionService
}

func NewExtractionHandler(extractionService *services.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{extractionService: extractionService}
}

type ExtractionRequest struct {
	Date         string  `json:"date" binding:"required"`
	BeanName     string  `json:"bean_name" binding:"required"`
	BeanPrice    float64 `json:"bean_price"`
	CoffeeWeight float64 `json:"coffee_weight"`
	WaterWeight  float64 `json:"water_weight"`
	GrindSize    string  `json:"grind_size"`
	BrewTime     string  `json:"brew_time"`
	Temperature  float64 `json:"temperature"`
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	Notes        string  `json:"notes"`
}

// ExtractionResponse adds the derived water-to-coffee ratio, which is never
// persisted.
type ExtractionResponse struct {
	models.CoffeeExtraction
	Ratio float64 `json:"ratio"`
}

// @Summary List extractions
// @Description The current user's brew log, newest date first
// @Tags extractions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ExtractionResponse
// @Failure 500 {object} ErrorResponse
// @Router /extractions [get]
func (h *ExtractionHandler) ListExtractions(c *gin.Context) {
	extractions, err := h.extractionService.GetExtractions(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]ExtractionResponse, len(extractions))
	for i, extraction := range extractions {
		responses[i] = toExtractionResponse(extraction)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Log an extraction
// @Tags extractions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExtractionRequest true "Extraction fields"
// @Success 201 {object} ExtractionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /extractions [post]
func (h *ExtractionHandler) CreateExtraction(c *gin.Context) {
	var req ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	extraction, err := h.extractionService.CreateExtraction(middleware.GetUserID(c), requestToExtraction(req, ""))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExtractionResponse(*extraction))
}

// @Summary Update an extraction
// @Description Full replacement of an extraction owned by the current user
// @Tags extractions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Extraction ID"
// @Param request body ExtractionRequest true "Extraction fields"
// @Success 200 {object} ExtractionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /extractions/{id} [put]
func (h *ExtractionHandler) UpdateExtraction(c *gin.Context) {
	var req ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	extraction, err := h.extractionService.UpdateExtraction(middleware.GetUserID(c), requestToExtraction(req, c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExtractionResponse(*extraction))
}

// @Summary Delete an extraction
// @Tags extractions
// @Security BearerAuth
// @Param id path string true "Extraction ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /extractions/{id} [delete]
func (h *ExtractionHandler) DeleteExtraction(c *gin.Context) {
	if err := h.extractionService.DeleteExtraction(middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func requestToExtraction(req ExtractionRequest, id string) *models.CoffeeExtraction {
	return &models.CoffeeExtraction{
		ID:           id,
		Date:         req.Date,
		BeanName:     req.BeanName,
		BeanPrice:    req.BeanPrice,
		CoffeeWeight: req.CoffeeWeight,
		WaterWeight:  req.WaterWeight,
		GrindSize:    req.GrindSize,
		BrewTime:     req.BrewTime,
		Temperature:  req.Temperature,
		Rating:       req.Rating,
		Notes:        req.Notes,
	}
}

func toExtractionResponse(extraction models.CoffeeExtraction) ExtractionResponse {
	return ExtractionResponse{
		CoffeeExtraction: extraction,
		Ratio:            extraction.Ratio(),
	}
}
