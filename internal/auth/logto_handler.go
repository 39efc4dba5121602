package auth

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/logto-io/go/v2/client"

	"github.com/brewlog-app/brewlog/internal/config"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
)

// LogtoHandler implements the OAuth redirect sign-in flow against the hosted
// identity provider. On a successful callback the provider claims are
// projected into the local profiles table so ratings and comments can be
// decorated without another provider round-trip.
type LogtoHandler struct {
	config      *config.LogtoConfig
	profileRepo *repository.ProfileRepository
	notifier    *Notifier
}

func NewLogtoHandler(cfg *config.LogtoConfig, profileRepo *repository.ProfileRepository, notifier *Notifier) *LogtoHandler {
	return &LogtoHandler{
		config:      cfg,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

func (h *LogtoHandler) CreateLogtoClient(ctx *gin.Context) *client.LogtoClient {
	session := sessions.Default(ctx)
	logtoConfig := &client.LogtoConfig{
		Endpoint:  h.config.Endpoint,
		AppId:     h.config.AppID,
		AppSecret: h.config.AppSecret,
	}
	return client.NewLogtoClient(logtoConfig, NewSessionStorage(session))
}

func (h *LogtoHandler) Login(ctx *gin.Context) {
	logtoClient := h.CreateLogtoClient(ctx)

	signInUri, err := logtoClient.SignIn(&client.SignInOptions{
		RedirectUri: h.config.RedirectURI,
	})
	if err != nil {
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("Failed to initiate sign-in: %v", err))
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, signInUri)
}

func (h *LogtoHandler) Callback(ctx *gin.Context) {
	logtoClient := h.CreateLogtoClient(ctx)

	err := logtoClient.HandleSignInCallback(ctx.Request)
	if err != nil {
		log.Printf("Error handling sign-in callback: %v", err)
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("Failed to handle callback: %v", err))
		return
	}

	claims, err := logtoClient.GetIdTokenClaims()
	if err != nil {
		log.Printf("Error reading ID token claims: %v", err)
		ctx.String(http.StatusInternalServerError, "Failed to read identity claims")
		return
	}

	profile := &models.Profile{
		ID:        claims.Sub,
		Username:  claims.Username,
		AvatarURL: claims.Picture,
	}
	if err := h.profileRepo.Upsert(profile); err != nil {
		log.Printf("Error upserting profile: %v", err)
	}

	h.notifier.Notify(Event{UserID: claims.Sub, SignedIn: true})
	ctx.Redirect(http.StatusFound, "/")
}

func (h *LogtoHandler) Logout(ctx *gin.Context) {
	logtoClient := h.CreateLogtoClient(ctx)

	userID := ""
	if claims, err := logtoClient.GetIdTokenClaims(); err == nil {
		userID = claims.Sub
	}

	signOutUri, err := logtoClient.SignOut(h.config.PostLogoutURI)
	if err != nil {
		ctx.String(http.StatusInternalServerError, fmt.Sprintf("Failed to initiate sign-out: %v", err))
		return
	}

	h.notifier.Notify(Event{UserID: userID, SignedIn: false})
	ctx.Redirect(http.StatusTemporaryRedirect, signOutUri)
}

// RequireAuth gates browser routes on an active provider session and puts
// the authenticated user id into the request context.
func (h *LogtoHandler) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logtoClient := h.CreateLogtoClient(ctx)

		if !logtoClient.IsAuthenticated() {
			ctx.Redirect(http.StatusFound, "/auth/login")
			ctx.Abort()
			return
		}

		claims, err := logtoClient.GetIdTokenClaims()
		if err != nil {
			log.Printf("Error reading ID token claims: %v", err)
			ctx.Redirect(http.StatusFound, "/auth/login")
			ctx.Abort()
			return
		}

		ctx.Set("user_id", claims.Sub)
		ctx.Next()
	}
}
