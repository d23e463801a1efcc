package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"shopper-front/backend"
	"shopper-front/models"
	"shopper-front/session"
)

type ProfileController struct {
	API      *backend.Client
	Sessions *session.Cache
}

func (ctrl *ProfileController) Show(c *gin.Context) {
	snap, err := ctrl.Sessions.GetOrRefresh(c.Request.Context(), backendToken(c))
	if err != nil {
		c.Redirect(http.StatusFound, "/logout")
		return
	}

	data := pageData(c)
	data["User"] = snap.User
	c.HTML(http.StatusOK, "profile.html", data)
}

// Update shares the dashboard account contract: partial PATCH, then a full
// snapshot refresh.
func (ctrl *ProfileController) Update(c *gin.Context) {
	token := backendToken(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/profile?error="+url.QueryEscape("Invalid profile fields"))
		return
	}

	if _, err := ctrl.API.UpdateProfile(c.Request.Context(), token, req); err != nil {
		c.Redirect(http.StatusFound, "/profile?error="+url.QueryEscape(saveErrorMessage(err, "Failed to update profile")))
		return
	}

	if _, err := ctrl.Sessions.Refresh(c.Request.Context(), token); err != nil {
		c.Redirect(http.StatusFound, "/logout")
		return
	}
	c.Redirect(http.StatusFound, "/profile?notice="+url.QueryEscape("Profile updated"))
}
