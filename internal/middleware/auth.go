package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shubham0723/geocool-fcc-sub000/internal/utils"
)

const ContextIdentifier = "identifier"

// SessionRequired validates the auth-token cookie and stores the session's
// identifier on the request context. Anything malformed is a plain 401.
func SessionRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(utils.SessionCookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}

		identifier, ok := utils.ParseSessionToken(cookie, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid auth token"})
			return
		}

		c.Set(ContextIdentifier, identifier)
		c.Next()
	}
}

// Identifier returns the session identifier set by SessionRequired.
func Identifier(c *gin.Context) string {
	value, ok := c.Get(ContextIdentifier)
	if !ok {
		return ""
	}
	identifier, _ := value.(string)
	return identifier
}
