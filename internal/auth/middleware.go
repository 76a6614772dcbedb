package auth

import (
	"net/http"
	"strings"

	"github.com/RS-Priyanshu/RSIH/internal/database/models"
	apperrors "github.com/RS-Priyanshu/RSIH/internal/errors"

	"github.com/gin-gonic/gin"
)

// ClaimsContextKey is the gin context key the validated claims are stored under
const ClaimsContextKey = "auth_claims"

// Middleware provides JWT authentication and role gating
type Middleware struct {
	tokens *TokenService
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireAuth validates the Bearer token and sets the identity on the context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrTokenMissing.Error()})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrTokenInvalid.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID.String())
		c.Set("role", string(claims.Role))
		c.Set(ClaimsContextKey, claims)

		c.Next()
	}
}

// RequireRole rejects requests whose token role does not match the route's role.
// It must run after RequireAuth.
func (m *Middleware) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrTokenMissing.Error()})
			c.Abort()
			return
		}

		if claims.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrRoleForbidden.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ClaimsFromContext returns the validated claims set by RequireAuth, or nil
func ClaimsFromContext(c *gin.Context) *Claims {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
