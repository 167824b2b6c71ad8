package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/services"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// SessionAuth resolves the session cookie to a user ID and stores it in the
// Gin context. Requests without a valid, unexpired session are rejected
// with 401 before reaching any handler.
func SessionAuth(sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Authentication required",
			}})
			c.Abort()
			return
		}

		userID, err := sessions.Resolve(token)
		if err != nil {
			// Only auth failures turn into 401; storage faults keep
			// their own status so outages are not mistaken for logouts.
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.StatusCode != http.StatusUnauthorized {
				c.JSON(appErr.StatusCode, gin.H{"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
				}})
				c.Abort()
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired session",
			}})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// SetSessionCookie attaches the session token to the response as an
// httpOnly cookie. maxAge is in seconds.
func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", secure, true)
}

// ClearSessionCookie removes the session cookie from the browser.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
