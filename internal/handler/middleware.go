package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"nextfund-ledger/internal/model"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	userIDKey          = "userID"
	bearerSchema       = "Bearer "
	webhookTokenHeader = "X-Webhook-Token"
	jobTokenHeader     = "X-Job-Token"
)

// Claims is the access token payload issued by the identity provider
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get("requestID")
		requestID, _ := rid.(string)
		userID, _ := userIDFrom(c)

		log.Info().
			Str("request_id", requestID).
			Int64("user_id", userID).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", raw).
			Str("ip", c.ClientIP()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}

// AuthMiddleware authenticates the bearer token and stores the user id in the context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerSchema) {
			unauthorized(c)
			return
		}

		token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, bearerSchema), &Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c)
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok || claims.UserID <= 0 {
			unauthorized(c)
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// SharedTokenMiddleware compares a header against a configured token. With an empty
// token the route is open when allowEmpty is set and closed otherwise.
func SharedTokenMiddleware(header, token string, allowEmpty bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			if allowEmpty {
				c.Next()
				return
			}
			unauthorized(c)
			return
		}

		if subtle.ConstantTimeCompare([]byte(c.GetHeader(header)), []byte(token)) != 1 {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{
		Error: "Unauthorized",
		Code:  "UNAUTHORIZED",
	})
}

func userIDFrom(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	userID, ok := v.(int64)
	return userID, ok
}
