package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ejparker/curdboard-backend/pkg/util"
)

// SessionCookie writes and clears the signed session cookie that holds
// the logged-in identity and any staged signup.
type SessionCookie struct {
	Name   string
	Secret string
	Expiry time.Duration
	Secure bool
}

// Write signs a fresh token for the given state and sets the cookie.
// When both identity and pending are empty the cookie is dropped instead.
func (sc SessionCookie) Write(c *gin.Context, username string, pending *util.PendingSignup) error {
	if username == "" && pending == nil {
		sc.Clear(c)
		return nil
	}

	token, err := util.GenerateSessionToken(username, pending, sc.Secret, sc.Expiry)
	if err != nil {
		return err
	}
	c.SetCookie(sc.Name, token, int(sc.Expiry.Seconds()), "/", "", sc.Secure, true)
	return nil
}

// Clear removes the session cookie.
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}
