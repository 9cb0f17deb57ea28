package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkvault/bookmark-api/internal/api/handler"
	"github.com/linkvault/bookmark-api/internal/api/middleware"
	"github.com/linkvault/bookmark-api/internal/core/service"
	"github.com/linkvault/bookmark-api/internal/infrastructure/config"
	mongodb "github.com/linkvault/bookmark-api/internal/infrastructure/db/mongo"
	redisdb "github.com/linkvault/bookmark-api/internal/infrastructure/db/redis"
	"github.com/linkvault/bookmark-api/internal/security/password"
	"github.com/linkvault/bookmark-api/internal/security/token"
)

// NewRouter builds the Echo instance with every collaborator wired
// explicitly: repositories into services, hasher and token service into the
// auth flow, token service into the middleware. No ambient registry.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("bookmark_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookmarkRepo := mongodb.NewBookmarkRepository(db)
	listCache := redisdb.NewListCache(rdb)

	hasher := password.NewArgon2Hasher()
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, log)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, listCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService)

	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/signin", authHandler.Signin)

	// --- Protected routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("/me", userHandler.Me)
	users.PATCH("", userHandler.Update)

	bookmarks := e.Group("/bookmarks", authMiddleware)
	bookmarks.GET("", bookmarkHandler.List)
	bookmarks.POST("", bookmarkHandler.Create)
	bookmarks.GET("/:id", bookmarkHandler.Get)
	bookmarks.PATCH("/:id", bookmarkHandler.Update)
	bookmarks.DELETE("/:id", bookmarkHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
