package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/pkg/util"
)

// Context keys for session state
const (
	UsernameKey      = "username"
	PendingSignupKey = "pending_signup"
)

// SessionMiddleware reads the session cookie on every request and
// exposes its claims (logged-in identity, staged signup) through the
// gin context. A missing, expired or tampered cookie just means an
// anonymous visitor; nothing is rejected here.
type SessionMiddleware struct {
	secret     string
	cookieName string
}

func NewSessionMiddleware(secret, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		secret:     secret,
		cookieName: cookieName,
	}
}

// LoadSession parses the session cookie into context values.
func (m *SessionMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := util.ValidateSessionToken(token, m.secret)
		if err != nil {
			// Stale or forged cookie: treat as anonymous.
			log.Debug("Session cookie rejected", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		if claims.Username != "" {
			c.Set(UsernameKey, claims.Username)
		}
		if claims.Pending != nil {
			c.Set(PendingSignupKey, claims.Pending)
		}

		log.Debug("Session loaded", map[string]interface{}{
			"username":    claims.Username,
			"has_pending": claims.Pending != nil,
		})

		c.Next()
	}
}

// GetUsername extracts the logged-in identity from context.
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(UsernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}

// GetPendingSignup extracts the staged signup from context.
func GetPendingSignup(c *gin.Context) (*util.PendingSignup, bool) {
	pending, exists := c.Get(PendingSignupKey)
	if !exists {
		return nil, false
	}
	return pending.(*util.PendingSignup), true
}
