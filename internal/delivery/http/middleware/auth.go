package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

// AuthMiddleware verifies bearer tokens issued by the hosted auth backend.
// Sessions live there; this service only checks the signature and claims.
type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// RequireAuth extracts and verifies the bearer token, then stores the caller's
// user id in the context under "user_id".
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _, err := m.verify(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
			})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// RequireAdmin additionally demands the "admin" role claim.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, err := m.verify(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
			})
			return
		}
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "admin access required",
			})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func (m *AuthMiddleware) verify(c *gin.Context) (string, string, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", "", domain.ErrInvalidToken
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return "", "", domain.ErrInvalidToken
	}
	if _, err := uuid.Parse(sub); err != nil {
		return "", "", domain.ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	return sub, role, nil
}
