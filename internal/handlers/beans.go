package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewlog-app/brewlog/internal/middleware"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/services"
)

type BeanHandler struct {
	beanService *services.BeanService
}

func NewBeanHandler(beanService *services.BeanService) *BeanHandler {
	return &BeanHandler{beanService: beanService}
}

type BeanRequest struct {
	SupplierID  string  `json:"supplier_id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Origin      string  `json:"origin"`
	Process     string  `json:"process"`
	RoastLevel  string  `json:"roast_level"`
	Price       float64 `json:"price"`
	PurchaseURL string  `json:"purchase_url"`
	Notes       string  `json:"notes"`
}

// @Summary List beans
// @Description List the current user's beans ordered by name, with supplier names resolved. Pass supplier_id to filter.
// @Tags beans
// @Produce json
// @Security BearerAuth
// @Param supplier_id query string false "Filter by supplier"
// @Success 200 {array} services.EnrichedBean
// @Failure 500 {object} ErrorResponse
// @Router /beans [get]
func (h *BeanHandler) ListBeans(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var beans []services.EnrichedBean
	var err error
	if supplierID := c.Query("supplier_id"); supplierID != "" {
		beans, err = h.beanService.GetBeansBySupplier(userID, supplierID)
	} else {
		beans, err = h.beanService.GetBeans(userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, beans)
}

// @Summary Get a bean
// @Tags beans
// @Produce json
// @Param id path string true "Bean ID"
// @Success 200 {object} services.EnrichedBean
// @Failure 404 {object} ErrorResponse
// @Router /beans/{id} [get]
func (h *BeanHandler) GetBean(c *gin.Context) {
	bean, err := h.beanService.GetBean(middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bean)
}

// @Summary Create a bean
// @Tags beans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BeanRequest true "Bean fields"
// @Success 201 {object} models.Bean
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /beans [post]
func (h *BeanHandler) CreateBean(c *gin.Context) {
	var req BeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	bean, err := h.beanService.CreateBean(middleware.GetUserID(c), &models.Bean{
		SupplierID:  req.SupplierID,
		Name:        req.Name,
		Origin:      req.Origin,
		Process:     req.Process,
		RoastLevel:  req.RoastLevel,
		Price:       req.Price,
		PurchaseURL: req.PurchaseURL,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bean)
}

// @Summary Update a bean
// @Description Full replacement of a bean owned by the current user
// @Tags beans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bean ID"
// @Param request body BeanRequest true "Bean fields"
// @Success 200 {object} models.Bean
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /beans/{id} [put]
func (h *BeanHandler) UpdateBean(c *gin.Context) {
	var req BeanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	bean, err := h.beanService.UpdateBean(middleware.GetUserID(c), &models.Bean{
		ID:          c.Param("id"),
		SupplierID:  req.SupplierID,
		Name:        req.Name,
		Origin:      req.Origin,
		Process:     req.Process,
		RoastLevel:  req.RoastLevel,
		Price:       req.Price,
		PurchaseURL: req.PurchaseURL,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bean)
}

// @Summary Delete a bean
// @Tags beans
// @Security BearerAuth
// @Param id path string true "Bean ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /beans/{id} [delete]
func (h *BeanHandler) DeleteBean(c *gin.Context) {
	if err := h.beanService.DeleteBean(middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
