package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewlog-app/brewlog/internal/services"
)

type BrewMethodHandler struct {
	brewMethodService *services.BrewMethodService
}

func NewBrewMethodHandler(brewMethodService *services.BrewMethodService) *BrewMethodHandler {
	return &BrewMethodHandler{brewMethodService: brewMethodService}
}

// @Summary List brew methods
// @Description The global brew method catalog, ordered by name
// @Tags brew-methods
// @Produce json
// @Success 200 {array} models.BrewMethod
// @Failure 500 {object} ErrorResponse
// @Router /brew-methods [get]
func (h *BrewMethodHandler) ListBrewMethods(c *gin.Context) {
	methods, err := h.brewMethodService.GetBrewMethods()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

// @Summary Get a brew method
// @Tags brew-methods
// @Produce json
// @Param id path string true "Brew method ID"
// @Success 200 {object} models.BrewMethod
// @Failure 404 {object} ErrorResponse
// @Router /brew-methods/{id} [get]
func (h *BrewMethodHandler) GetBrewMethod(c *gin.Context) {
	method, err := h.brewMethodService.GetBrewMethod(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, method)
}
