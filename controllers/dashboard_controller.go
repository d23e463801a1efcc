package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"shopper-front/backend"
	"shopper-front/models"
	"shopper-front/session"
)

type DashboardController struct {
	API      *backend.Client
	Sessions *session.Cache
}

// Home renders the seller dashboard: stat cards plus the per-store
// product/order breakdown. Aggregate fetches are best-effort and degrade to
// zeroes; the page never errors because a chart is missing.
func (ctrl *DashboardController) Home(c *gin.Context) {
	token := backendToken(c)

	snap, err := ctrl.Sessions.GetOrRefresh(c.Request.Context(), token)
	if err != nil {
		// The backend no longer recognizes the token; start over.
		c.Redirect(http.StatusFound, "/logout")
		return
	}

	summary := ctrl.API.DashboardSummary(c.Request.Context(), token)
	breakdown := ctrl.API.DashboardBreakdown(c.Request.Context(), token)

	totalStores := summary.TotalStores
	if totalStores == 0 {
		totalStores = len(snap.User.Stores)
	}

	plan := snap.User.Plan
	if plan == "" {
		plan = "none"
	}

	data := pageData(c)
	data["User"] = snap.User
	data["Projects"] = snap.Projects
	data["Summary"] = summary
	data["Breakdown"] = breakdown
	data["TotalStores"] = totalStores
	data["Plan"] = plan
	c.HTML(http.StatusOK, "home.html", data)
}

// UpdateAccount handles the "My Account" form on the dashboard. A
// successful save refreshes the session snapshot before redirecting, so the
// page never shows pre-save identity.
func (ctrl *DashboardController) UpdateAccount(c *gin.Context) {
	token := backendToken(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/home?error="+url.QueryEscape("Invalid profile fields"))
		return
	}

	if _, err := ctrl.API.UpdateProfile(c.Request.Context(), token, req); err != nil {
		c.Redirect(http.StatusFound, "/home?error="+url.QueryEscape(saveErrorMessage(err, "Failed to update profile")))
		return
	}

	if _, err := ctrl.Sessions.Refresh(c.Request.Context(), token); err != nil {
		c.Redirect(http.StatusFound, "/logout")
		return
	}
	c.Redirect(http.StatusFound, "/home?notice="+url.QueryEscape("Profile updated"))
}
