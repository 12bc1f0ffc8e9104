package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Carr-Ethan/cse108-Final/internal/config"
	"github.com/Carr-Ethan/cse108-Final/internal/constants"
	"github.com/Carr-Ethan/cse108-Final/internal/database"
	"github.com/Carr-Ethan/cse108-Final/internal/handlers"
	"github.com/Carr-Ethan/cse108-Final/internal/logger"
	"github.com/Carr-Ethan/cse108-Final/internal/middleware"
	"github.com/Carr-Ethan/cse108-Final/internal/repository"
	"github.com/Carr-Ethan/cse108-Final/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up logging and Gin mode
	logger.Init(cfg.GinMode)
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Gin router
	r := gin.Default()

	// The frontend is served from a different origin and sends the session
	// cookie, so CORS must allow credentials for that one origin.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Redis store")
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)

	authService := services.NewAuthService(userRepo)
	groupService := services.NewGroupService(groupRepo)
	postService := services.NewPostService(postRepo, groupRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	groupHandler := handlers.NewGroupHandler(groupService)
	postHandler := handlers.NewPostHandler(postService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Public routes
	r.POST("/user", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Session-gated routes
	auth := r.Group("/", middleware.RequireAuth())
	{
		auth.GET("/me", authHandler.GetCurrentUser)

		auth.POST("/groups", groupHandler.CreateGroup)
		auth.GET("/groups", groupHandler.ListGroups)
		auth.GET("/mygroups", groupHandler.ListMyGroups)
		auth.POST("/groups/:name", groupHandler.JoinGroup)
		auth.GET("/members/:name", groupHandler.ListMembers)

		auth.POST("/posts", postHandler.CreatePost)
		auth.GET("/posts", postHandler.ListMyPosts)
		auth.GET("/posts/:groupName", postHandler.ListGroupPosts)
		auth.PATCH("/posts/:id", postHandler.UpdatePostStatus)
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
