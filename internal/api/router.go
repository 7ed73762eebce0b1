package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/poseidontrading/refdata-api/internal/api/handler"
	"github.com/poseidontrading/refdata-api/internal/api/middleware"
	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/service"
	"github.com/poseidontrading/refdata-api/internal/infrastructure/config"
	"github.com/poseidontrading/refdata-api/internal/infrastructure/db/postgres"
	redisdb "github.com/poseidontrading/refdata-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("refdata"))

	// --- Dependencies ---
	tokens := service.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.TokenTTL)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Redis.LoginMaxFailures, cfg.Redis.LoginWindow)

	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens, limiter, log)
	userService := service.NewUserService(userRepo, log)

	bidService := service.NewBidService(postgres.NewBidRepository(db), log)
	curveService := service.NewCurvePointService(postgres.NewCurvePointRepository(db), log)
	ratingService := service.NewRatingService(postgres.NewRatingRepository(db), log)
	ruleService := service.NewRuleNameService(postgres.NewRuleNameRepository(db), log)
	tradeService := service.NewTradeService(postgres.NewTradeRepository(db), log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bidHandler := handler.NewBidHandler(bidService)
	curveHandler := handler.NewCurvePointHandler(curveService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	ruleHandler := handler.NewRuleNameHandler(ruleService)
	tradeHandler := handler.NewTradeHandler(tradeService)

	authRequired := middleware.Auth(middleware.AuthConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	})
	adminOnly := middleware.RBAC(log, domain.RoleAdmin)
	anyRole := middleware.RBAC(log, domain.RoleAdmin, domain.RoleUser)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public auth routes ---
	e.POST("/api/login/register", authHandler.Register)
	e.POST("/api/login/login", authHandler.Login)

	// --- Protected routes ---
	api := e.Group("/api", authRequired)

	bid := api.Group("/bidlist")
	bid.GET("/list", bidHandler.List, adminOnly)
	bid.POST("/add", bidHandler.Create, adminOnly)
	bid.PUT("/update/:id", bidHandler.Update, anyRole)
	bid.DELETE("/delete/:id", bidHandler.Delete, anyRole)

	curve := api.Group("/curvepoint", anyRole)
	curve.GET("/list", curveHandler.List)
	curve.POST("/add", curveHandler.Create)
	curve.PUT("/update/:id", curveHandler.Update)
	curve.DELETE("/:id", curveHandler.Delete)

	rating := api.Group("/rating")
	rating.GET("/list", ratingHandler.List, anyRole)
	rating.POST("/add", ratingHandler.Create, anyRole)
	rating.PUT("/update/:id", ratingHandler.Update, anyRole)
	rating.DELETE("/:id", ratingHandler.Delete, adminOnly)

	rule := api.Group("/rulename", anyRole)
	rule.GET("/list", ruleHandler.List)
	rule.POST("/add", ruleHandler.Create)
	rule.PUT("/update/:id", ruleHandler.Update)
	rule.DELETE("/:id", ruleHandler.Delete)

	trade := api.Group("/trade", anyRole)
	trade.GET("/list", tradeHandler.List)
	trade.POST("/add", tradeHandler.Create)
	trade.PUT("/update/:id", tradeHandler.Update)
	trade.DELETE("/:id", tradeHandler.Delete)

	user := api.Group("/user")
	user.GET("/list", userHandler.List, adminOnly)
	user.POST("/add", userHandler.Create, adminOnly)
	// Update allows both roles; the handler restricts non-admins to their own record.
	user.PUT("/update/:id", userHandler.Update, anyRole)
	user.DELETE("/:id", userHandler.Delete, adminOnly)

	return e
}
