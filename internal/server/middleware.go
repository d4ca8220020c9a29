package server

import (
	"net/http"
	"strconv"
	"time"

	"fitbook/internal/api"
	"fitbook/internal/db"
	"fitbook/internal/logger"
	"fitbook/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}

// RequestIDMiddleware propagates the caller's X-Request-ID or assigns one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// SessionMiddleware pins one pooled connection to the request and returns it
// to the pool on every exit path, panics included.
func SessionMiddleware(database *sqlx.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := database.Connx(c.Request.Context())
		if err != nil {
			logger.Error("Failed to acquire database session", "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, api.ErrorResponse{Detail: "Database unavailable"})
			return
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Warn("Failed to release database session", "error", err)
			}
		}()

		c.Request = c.Request.WithContext(db.WithSession(c.Request.Context(), conn))
		c.Next()
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
