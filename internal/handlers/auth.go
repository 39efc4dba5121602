package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brewlog-app/brewlog/internal/auth"
	"github.com/brewlog-app/brewlog/internal/middleware"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	notifier    *auth.Notifier
}

func NewAuthHandler(authService *services.AuthService, notifier *auth.Notifier) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		notifier:    notifier,
	}
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionResponse struct {
	Token   string         `json:"token"`
	Profile models.Profile `json:"profile"`
}

// @Summary Sign up with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Credentials"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	profile, token, err := h.authService.SignUp(req.Email, req.Password, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notifier.Notify(auth.Event{UserID: profile.ID, SignedIn: true})
	c.JSON(http.StatusCreated, SessionResponse{Token: token, Profile: *profile})
}

// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	profile, token, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notifier.Notify(auth.Event{UserID: profile.ID, SignedIn: true})
	c.JSON(http.StatusOK, SessionResponse{Token: token, Profile: *profile})
}

// @Summary Sign out
// @Description Signals the end of a credential session. Tokens are stateless; the client discards its copy.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: services.ErrNotLoggedIn.Error()})
		return
	}

	h.notifier.Notify(auth.Event{UserID: userID, SignedIn: false})
	c.Status(http.StatusNoContent)
}

// @Summary Current user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	profile, err := h.authService.GetProfile(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
