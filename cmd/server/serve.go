package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/brewlog-app/brewlog/internal/auth"
	"github.com/brewlog-app/brewlog/internal/config"
	"github.com/brewlog-app/brewlog/internal/database"
	"github.com/brewlog-app/brewlog/internal/handlers"
	"github.com/brewlog-app/brewlog/internal/middleware"
	"github.com/brewlog-app/brewlog/internal/repository"
	"github.com/brewlog-app/brewlog/internal/services"

	_ "github.com/brewlog-app/brewlog/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Brewlog API server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	router := NewRouter(cfg, db)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Brewlog server on %s", addr)
	if cfg.TestMode {
		log.Println("TEST MODE ENABLED - Authentication bypassed")
	}
	return router.Run(addr)
}

// NewRouter wires repositories, services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	supplierRepo := repository.NewSupplierRepository(db)
	beanRepo := repository.NewBeanRepository(db)
	brewMethodRepo := repository.NewBrewMethodRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	extractionRepo := repository.NewExtractionRepository(db)

	supplierService := services.NewSupplierService(supplierRepo)
	beanService := services.NewBeanService(beanRepo)
	brewMethodService := services.NewBrewMethodService(brewMethodRepo)
	ratingService := services.NewRatingService(ratingRepo, profileRepo)
	commentService := services.NewCommentService(commentRepo, profileRepo)
	extractionService := services.NewExtractionService(extractionRepo)
	authService := services.NewAuthService(profileRepo, cfg.JWT.Secret)

	notifier := auth.NewNotifier()
	notifier.Subscribe(func(event auth.Event) {
		if event.SignedIn {
			log.Printf("User signed in: %s", event.UserID)
		} else {
			log.Printf("User signed out: %s", event.UserID)
		}
	})

	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.TestMode)

	supplierHandler := handlers.NewSupplierHandler(supplierService)
	beanHandler := handlers.NewBeanHandler(beanService)
	brewMethodHandler := handlers.NewBrewMethodHandler(brewMethodService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	commentHandler := handlers.NewCommentHandler(commentService)
	extractionHandler := handlers.NewExtractionHandler(extractionService)
	authHandler := handlers.NewAuthHandler(authService, notifier)
	feedHandler := handlers.NewFeedHandler(ratingService, cfg.Feed.PageSize)

	router := gin.Default()

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("brewlog_session", store))

	logtoHandler := auth.NewLogtoHandler(&cfg.Logto, profileRepo, notifier)

	oauthRoutes := router.Group("/auth")
	{
		oauthRoutes.GET("/login", logtoHandler.Login)
		oauthRoutes.GET("/callback", logtoHandler.Callback)
		oauthRoutes.GET("/logout", logtoHandler.Logout)
	}

	router.GET("/docs", handlers.SwaggerUIWithBearerFix())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	api.Use(authMiddleware.Optional())
	{
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/signin", authHandler.SignIn)

		api.GET("/brew-methods", brewMethodHandler.ListBrewMethods)
		api.GET("/brew-methods/:id", brewMethodHandler.GetBrewMethod)

		api.GET("/ratings/global", ratingHandler.GlobalRatings)
		api.GET("/ratings/search", ratingHandler.SearchRatings)
		api.GET("/beans/:id/ratings/public", ratingHandler.PublicRatingsByBean)
		api.GET("/beans/:id/ratings/average", ratingHandler.AverageRatingForBean)
		api.GET("/ratings/:id/comments", commentHandler.ListComments)

		api.GET("/feed", feedHandler.GetFeed)
		api.POST("/feed/more", feedHandler.LoadMore)
		api.POST("/feed/search", feedHandler.Search)

		authenticated := api.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.POST("/auth/signout", authHandler.SignOut)
			authenticated.GET("/profile", authHandler.GetProfile)

			authenticated.GET("/suppliers", supplierHandler.ListSuppliers)
			authenticated.GET("/suppliers/:id", supplierHandler.GetSupplier)
			authenticated.POST("/suppliers", supplierHandler.CreateSupplier)
			authenticated.PUT("/suppliers/:id", supplierHandler.UpdateSupplier)
			authenticated.DELETE("/suppliers/:id", supplierHandler.DeleteSupplier)

			authenticated.GET("/beans", beanHandler.ListBeans)
			authenticated.GET("/beans/:id", beanHandler.GetBean)
			authenticated.POST("/beans", beanHandler.CreateBean)
			authenticated.PUT("/beans/:id", beanHandler.UpdateBean)
			authenticated.DELETE("/beans/:id", beanHandler.DeleteBean)

			authenticated.GET("/ratings", ratingHandler.ListRatings)
			authenticated.GET("/ratings/:id", ratingHandler.GetRating)
			authenticated.POST("/ratings", ratingHandler.CreateRating)
			authenticated.PUT("/ratings/:id", ratingHandler.UpdateRating)
			authenticated.DELETE("/ratings/:id", ratingHandler.DeleteRating)

			authenticated.POST("/ratings/:id/comments", commentHandler.AddComment)
			authenticated.DELETE("/comments/:id", commentHandler.DeleteComment)

			authenticated.GET("/extractions", extractionHandler.ListExtractions)
			authenticated.POST("/extractions", extractionHandler.CreateExtraction)
			authenticated.PUT("/extractions/:id", extractionHandler.UpdateExtraction)
			authenticated.DELETE("/extractions/:id", extractionHandler.DeleteExtraction)
		}
	}

	return router
}
