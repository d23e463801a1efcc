package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopper-front/models"
	"shopper-front/utils"
)

// SessionCookie is the frontend's own signed session cookie.
const SessionCookie = "shopper_session"

// Context keys set by the auth middleware.
const (
	CtxUserID       = "user_id"
	CtxUserEmail    = "user_email"
	CtxUserRole     = "user_role"
	CtxBackendToken = "backend_token"
)

// AuthMiddleware requires a valid session cookie and redirects browsers to
// the login page otherwise. Pages behind it can read the identity keys from
// the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := utils.ValidateSessionToken(cookie)
		if err != nil {
			// Expired or tampered cookie: drop it and start over.
			c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserEmail, claims.Email)
		c.Set(CtxUserRole, claims.Role)
		c.Set(CtxBackendToken, claims.BackendToken)
		c.Next()
	}
}

// OptionalAuth attaches identity when a valid cookie is present but never
// blocks. Public pages (store detail, explorer) use it to decide whether to
// render owner controls.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err == nil && cookie != "" {
			if claims, err := utils.ValidateSessionToken(cookie); err == nil {
				c.Set(CtxUserID, claims.UserID)
				c.Set(CtxUserEmail, claims.Email)
				c.Set(CtxUserRole, claims.Role)
				c.Set(CtxBackendToken, claims.BackendToken)
			}
		}
		c.Next()
	}
}

// SellerMiddleware gates the dashboard routes on a seller-ish role.
func SellerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !models.RoleIsSeller(c.GetString(CtxUserRole)) {
			c.Redirect(http.StatusFound, "/store-explorer")
			c.Abort()
			return
		}
		c.Next()
	}
}
