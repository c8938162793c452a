package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pollsite/config"
	"pollsite/models"
)

const (
	// SessionCookieName is the cookie carrying the signed session token.
	SessionCookieName = "session"

	// SessionDuration is how long an issued session stays valid.
	SessionDuration = 24 * time.Hour

	currentUserKey = "current_user"
)

// IssueSession signs a session token for the user and sets it as an
// HttpOnly cookie on the response.
func IssueSession(c *gin.Context, userID uint) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(SessionDuration).Unix(),
		"jti":     uuid.NewString(),
	})

	tokenString, err := token.SignedString(config.SessionSecret)
	if err != nil {
		return err
	}

	c.SetCookie(SessionCookieName, tokenString, int(SessionDuration.Seconds()), "/", "", false, true)
	return nil
}

// ClearSession expires the session cookie.
func ClearSession(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// LoadSession resolves the session cookie into a user record and attaches
// it to the request context. Requests with a missing, invalid or expired
// token simply proceed unauthenticated.
func LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return config.SessionSecret, nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok {
			c.Next()
			return
		}

		var user models.User
		if err := config.DB.First(&user, uint(userID)).Error; err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAuth redirects unauthenticated requests to the auth page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusSeeOther, "/auth")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireGuest redirects authenticated requests back to the index, so a
// logged-in user never sees the login/registration page again.
func RequireGuest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) != nil {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
