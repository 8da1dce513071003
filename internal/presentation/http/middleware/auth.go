package middleware

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/solarpower/internal/domain/entity"
	"github.com/sangkips/solarpower/internal/presentation/http/dto/response"
)

const (
	// SessionCookieName is the cookie carrying the staff session token
	SessionCookieName = "power_staff"
	// LoginPath is where anonymous visitors of the back office are sent
	LoginPath = "/adm/login/"

	staffIDKey       = "staff_id"
	staffUsernameKey = "staff_username"
)

// StaffAuthenticator resolves a session token to a staff account
type StaffAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.StaffUser, error)
}

// RequireStaff redirects visitors without a valid staff session to the login page
func RequireStaff(auth StaffAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		staff, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			ClearSessionCookie(c, false)
			redirectToLogin(c)
			return
		}

		c.Set(staffIDKey, staff.ID)
		c.Set(staffUsernameKey, staff.Username)

		c.Next()
	}
}

// redirectToLogin sends browsers to the login page. Clients asking for JSON get a 401.
func redirectToLogin(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		response.Unauthorized(c, "Authentication required")
		c.Abort()
		return
	}

	target := LoginPath
	if c.Request.Method == http.MethodGet {
		target += "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

// GetStaffUsername returns the username set by RequireStaff
func GetStaffUsername(c *gin.Context) string {
	return c.GetString(staffUsernameKey)
}

// SetSessionCookie stores the staff session token in an HttpOnly cookie
func SetSessionCookie(c *gin.Context, token string, expiry time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(expiry.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie removes the staff session cookie
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
