package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coursedeck/pkg/jwt"
	"coursedeck/pkg/session"
)

// SessionKey is the gin context key the resolved session is stored under.
const SessionKey = "session"

// AuthMiddleware validates the bearer token and loads the session record it
// points at. The record is read fresh on every request, so a logout is
// effective immediately even while the JWT is still unexpired.
func AuthMiddleware(jwtService *jwt.Service, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing Authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			} else {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session lookup failed"})
			}
			c.Abort()
			return
		}

		c.Set("user_id", sess.UserID)
		c.Set("role", sess.Role)
		c.Set(SessionKey, sess)
		c.Next()
	}
}

// RequireRole rejects requests whose session role is not in the allowed
// set. Navigation only offers views; this is the enforcement edge.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		if !allowed[c.GetString("role")] {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session stored by AuthMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
