package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"fitbook/internal/api"
	"fitbook/internal/auth"
	"fitbook/internal/booking"
	"fitbook/internal/config"
	"fitbook/internal/db"
	"fitbook/internal/fitnessclass"
	"fitbook/internal/logger"
	"fitbook/internal/user"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router     *gin.Engine
	db         *sqlx.DB
	config     *config.Config
	redis      *redis.Client
	httpServer *http.Server
}

func New(database *sqlx.DB, cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)
	api.RegisterValidation()

	router := gin.New()
	router.Use(ginzap.RecoveryWithZap(logger.L(), true))
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware(cfg.CORSAllowedOrigins))

	s := &Server{
		router: router,
		db:     database,
		config: cfg,
	}

	var limiter Limiter
	if cfg.RedisAddr != "" {
		s.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiter = NewRedisLimiter(s.redis, cfg.RateLimitRPS, cfg.RateLimitBurst)
		logger.Info("Using redis rate limiter", "addr", cfg.RedisAddr)
	} else {
		limiter = NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)
	}

	userService := user.NewService(user.NewRepository(database), cfg.JWTSecret, cfg.AccessTokenTTL)
	classService := fitnessclass.NewService(fitnessclass.NewRepository(database), cfg.DisplayLocation())
	bookingService := booking.NewService(booking.NewRepository(database), db.NewTransactor(database))

	userHandler := user.NewHandler(userService)
	classHandler := fitnessclass.NewHandler(classService)
	bookingHandler := booking.NewHandler(bookingService)

	public := router.Group("", RateLimitMiddleware(limiter), SessionMiddleware(database))
	{
		handle(public, http.MethodPost, "/signup/", userHandler.Signup)
		handle(public, http.MethodPost, "/login/", userHandler.Login)
		handle(public, http.MethodGet, "/classes/", classHandler.ListClasses)
	}

	protected := public.Group("", auth.AuthMiddleware(cfg.JWTSecret, userService))
	{
		handle(protected, http.MethodGet, "/me/", userHandler.GetMe)
		handle(protected, http.MethodPost, "/classes/", classHandler.CreateClass)
		handle(protected, http.MethodPost, "/bookings/", bookingHandler.BookClass)
		handle(protected, http.MethodGet, "/bookings/", bookingHandler.ListMyBookings)
	}

	router.GET("/health", Health(database))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return s
}

// handle registers path both with and without its trailing slash so neither
// form answers with a redirect.
func handle(r gin.IRoutes, method, path string, handlers ...gin.HandlerFunc) {
	r.Handle(method, path, handlers...)
	if trimmed := strings.TrimSuffix(path, "/"); trimmed != "" && trimmed != path {
		r.Handle(method, trimmed, handlers...)
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
