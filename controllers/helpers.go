package controllers

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"shopper-front/middleware"
	"shopper-front/session"
)

// TemplateFuncs are the helpers the views need; mostly pager arithmetic.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

// pageData builds the common template payload: flash messages from the
// redirect query parameters plus whatever identity the middleware attached.
func pageData(c *gin.Context) gin.H {
	return gin.H{
		"Notice":    c.Query("notice"),
		"Error":     c.Query("error"),
		"UserID":    c.GetString(middleware.CtxUserID),
		"UserEmail": c.GetString(middleware.CtxUserEmail),
		"UserRole":  c.GetString(middleware.CtxUserRole),
		"LoggedIn":  c.GetString(middleware.CtxUserID) != "",
	}
}

func backendToken(c *gin.Context) string {
	return c.GetString(middleware.CtxBackendToken)
}

// snapshotOrNil returns the cached session snapshot for the request's token
// without forcing a backend round trip. Pages that can render anonymously
// use it for the "Welcome, name" line.
func snapshotOrNil(c *gin.Context, sessions *session.Cache) *session.Snapshot {
	token := backendToken(c)
	if token == "" {
		return nil
	}
	snap, ok := sessions.Get(token)
	if !ok {
		snap, err := sessions.Refresh(c.Request.Context(), token)
		if err != nil {
			return nil
		}
		return snap
	}
	return snap
}
