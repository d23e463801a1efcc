package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shopper-front/backend"
	"shopper-front/config"
	"shopper-front/middleware"
	"shopper-front/models"
	"shopper-front/session"
	"shopper-front/utils"
)

type AuthController struct {
	API      *backend.Client
	Sessions *session.Cache
}

func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	data := pageData(c)
	if c.Query("registered") == "1" {
		data["Notice"] = "Account created. Sign in to continue."
	}
	if c.Query("plan") == "pending" {
		data["PlanPending"] = true
	}
	c.HTML(http.StatusOK, "login.html", data)
}

// Login posts credentials to the backend and lands the user on the page
// their role calls for: sellers (and admin-like roles) on the dashboard,
// everyone else on the store explorer.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		data := pageData(c)
		data["Error"] = "Email and password are required"
		c.HTML(http.StatusBadRequest, "login.html", data)
		return
	}

	result, err := ctrl.API.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		data := pageData(c)
		data["Email"] = req.Email
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			data["Error"] = apiErr.UserMessage("Invalid credentials")
			c.HTML(http.StatusUnauthorized, "login.html", data)
		} else {
			data["Error"] = "Network error. Please try again."
			c.HTML(http.StatusBadGateway, "login.html", data)
		}
		return
	}

	cookie, err := utils.GenerateSessionToken("", result.Email, result.Role, result.Token)
	if err != nil {
		data := pageData(c)
		data["Error"] = "Could not establish a session. Please try again."
		c.HTML(http.StatusInternalServerError, "login.html", data)
		return
	}

	// Warm the session cache; the snapshot also supplies the user id for
	// the cookie claims.
	if snap, err := ctrl.Sessions.Refresh(c.Request.Context(), result.Token); err == nil {
		if signed, err := utils.GenerateSessionToken(snap.User.ID, snap.User.Email, snap.User.Role, result.Token); err == nil {
			cookie = signed
		}
	} else {
		logrus.WithError(err).Warn("session warm-up failed after login")
	}

	secure := config.AppConfig.AppEnv == "production"
	c.SetCookie(middleware.SessionCookie, cookie, int(config.AppConfig.SessionTTL.Seconds()), "/", "", secure, true)

	if models.RoleIsSeller(result.Role) {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	c.Redirect(http.StatusFound, "/store-explorer")
}

func (ctrl *AuthController) ShowRegister(c *gin.Context) {
	data := pageData(c)
	role := c.DefaultQuery("role", "client")
	plan := c.DefaultQuery("plan", "free")
	data["Role"] = role
	data["Plan"] = plan
	// Paid plans are selectable but not yet active; the notice never blocks
	// registration.
	data["PlanPending"] = role == "seller" && (plan == "pro" || plan == "business")
	c.HTML(http.StatusOK, "register.html", data)
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		data := pageData(c)
		data["Error"] = "Please fill in all required fields"
		data["Role"] = c.PostForm("role")
		data["Plan"] = c.PostForm("plan")
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	if req.Role == "" {
		req.Role = "client"
	}
	if req.Plan == "" {
		if req.Role == "seller" {
			req.Plan = "free"
		} else {
			req.Plan = "none"
		}
	}
	req.Name = strings.TrimSpace(req.FirstName + " " + req.LastName)

	if err := ctrl.API.Register(c.Request.Context(), req); err != nil {
		data := pageData(c)
		data["Role"] = req.Role
		data["Plan"] = req.Plan
		data["Form"] = req
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			data["Error"] = apiErr.UserMessage("Registration failed")
			c.HTML(http.StatusBadRequest, "register.html", data)
		} else {
			data["Error"] = "Network error. Please try again."
			c.HTML(http.StatusBadGateway, "register.html", data)
		}
		return
	}

	target := "/login?registered=1"
	if req.Role == "seller" && (req.Plan == "pro" || req.Plan == "business") {
		target += "&plan=pending"
	}
	c.Redirect(http.StatusFound, target)
}

// Logout ends the backend session best-effort, clears the session cache
// synchronously, and drops the cookie before redirecting.
func (ctrl *AuthController) Logout(c *gin.Context) {
	token := backendToken(c)
	if token != "" {
		if err := ctrl.API.Logout(c.Request.Context(), token); err != nil {
			logrus.WithError(err).Warn("backend logout failed")
		}
		ctrl.Sessions.Clear(token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login?notice="+url.QueryEscape("You have been signed out"))
}
