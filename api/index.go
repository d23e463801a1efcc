package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"shopper-front/backend"
	"shopper-front/config"
	"shopper-front/controllers"
	"shopper-front/middleware"
	"shopper-front/models"
	"shopper-front/routes"
	"shopper-front/session"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitRedis()

		api := backend.New(config.AppConfig.BackendURL, config.AppConfig.BackendTimeout)
		sessions := session.NewCache(api)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.RequestLogger())
		router.Use(middleware.CORSMiddleware())
		router.SetFuncMap(controllers.TemplateFuncs())
		router.LoadHTMLGlob("views/*.html")

		routes.SetupRoutes(router, api, sessions)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
