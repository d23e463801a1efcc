package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shopper-front/backend"
	"shopper-front/config"
	"shopper-front/controllers"
	"shopper-front/middleware"
	"shopper-front/models"
	"shopper-front/routes"
	"shopper-front/session"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitRedis()
	defer models.CloseRedis()

	api := backend.New(config.AppConfig.BackendURL, config.AppConfig.BackendTimeout)
	sessions := session.NewCache(api)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware())
	router.MaxMultipartMemory = config.AppConfig.MaxUploadSize

	router.SetFuncMap(controllers.TemplateFuncs())
	router.LoadHTMLGlob("views/*.html")
	router.Static("/assets", "./assets")

	routes.SetupRoutes(router, api, sessions)

	addr := ":" + config.AppConfig.Port
	logrus.WithFields(logrus.Fields{
		"addr":    addr,
		"backend": config.AppConfig.BackendURL,
	}).Info("Server starting")

	if err := router.Run(addr); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
