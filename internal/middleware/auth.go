package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/ieltsmaster/writing-api/config"
	"github.com/ieltsmaster/writing-api/internal/dto"
	"github.com/rs/zerolog/log"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// Auth verifies the identity provider's HS256 access token (Supabase-style:
// "sub" is the user id, "email" the address) and stores the caller identity
// on the gin context. No local user table is consulted; identity is fully
// delegated to the provider.
func Auth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}

		claims := jwt.MapClaims{}
		_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.Auth.JWTSecret), nil
		})
		if err != nil {
			log.Warn().Err(err).Msg("Rejected request with invalid access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			log.Warn().Str("sub", sub).Msg("Access token has no usable subject claim")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}

		email, _ := claims["email"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)
		c.Next()
	}
}

// UserID returns the authenticated caller's id set by Auth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// Email returns the authenticated caller's email, if the token carried one.
func Email(c *gin.Context) string {
	v, _ := c.Get(ContextEmail)
	email, _ := v.(string)
	return email
}

// BearerToken extracts the raw bearer token from the Authorization header
// without verifying it. Handlers that work with or without a session (logout)
// use this directly instead of the Auth middleware.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
