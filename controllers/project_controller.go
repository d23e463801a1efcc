package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shopper-front/backend"
	"shopper-front/models"
	"shopper-front/session"
	"shopper-front/utils"
)

type ProjectController struct {
	API      *backend.Client
	Sessions *session.Cache
}

func (ctrl *ProjectController) ShowAddProject(c *gin.Context) {
	data := pageData(c)
	data["Form"] = models.StoreForm{NavbarEnabled: true, LogoPosition: "left"}
	data["LogoPositions"] = models.LogoPositions
	c.HTML(http.StatusOK, "add_project.html", data)
}

// CreateProject posts the multipart store-creation form. The backend owns
// slug assignment; on success the session snapshot is refreshed so the new
// store shows up in the dashboard immediately.
func (ctrl *ProjectController) CreateProject(c *gin.Context) {
	token := backendToken(c)

	var form models.StoreForm
	if err := c.ShouldBind(&form); err != nil {
		ctrl.renderError(c, form, "Please enter a project name")
		return
	}
	if form.LogoPosition == "" {
		form.LogoPosition = "left"
	}

	logo, _ := c.FormFile("logo")
	if err := utils.ValidateUpload(logo); err != nil {
		ctrl.renderError(c, form, err.Error())
		return
	}

	store, err := ctrl.API.CreateStore(c.Request.Context(), token, form, logo)
	if err != nil {
		ctrl.renderError(c, form, saveErrorMessage(err, "Failed to create store"))
		return
	}

	if _, err := ctrl.Sessions.Refresh(c.Request.Context(), token); err != nil {
		logrus.WithError(err).Warn("session refresh failed after store creation")
	}

	c.Redirect(http.StatusFound, "/home?notice="+url.QueryEscape("Store \""+store.Name+"\" created"))
}

func (ctrl *ProjectController) renderError(c *gin.Context, form models.StoreForm, msg string) {
	data := pageData(c)
	data["Error"] = msg
	data["Form"] = form
	data["LogoPositions"] = models.LogoPositions
	c.HTML(http.StatusBadRequest, "add_project.html", data)
}
