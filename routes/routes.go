package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopper-front/backend"
	"shopper-front/config"
	"shopper-front/controllers"
	"shopper-front/middleware"
	"shopper-front/session"
)

func SetupRoutes(router *gin.Engine, api *backend.Client, sessions *session.Cache) {
	authCtrl := &controllers.AuthController{API: api, Sessions: sessions}
	dashCtrl := &controllers.DashboardController{API: api, Sessions: sessions}
	profileCtrl := &controllers.ProfileController{API: api, Sessions: sessions}
	projectCtrl := &controllers.ProjectController{API: api, Sessions: sessions}
	explorerCtrl := &controllers.ExplorerController{API: api, Sessions: sessions}
	storeCtrl := &controllers.StoreController{API: api, Sessions: sessions}

	authLimiter := middleware.NewRateLimiter(config.AppConfig.AuthRatePerMin, config.AppConfig.AuthRateBurst)

	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/store-explorer")
	})

	router.GET("/login", middleware.OptionalAuth(), authCtrl.ShowLogin)
	router.POST("/login", authLimiter.Handler(), authCtrl.Login)
	router.GET("/register", authCtrl.ShowRegister)
	router.POST("/register", authLimiter.Handler(), authCtrl.Register)
	router.GET("/logout", middleware.OptionalAuth(), authCtrl.Logout)
	router.POST("/logout", middleware.OptionalAuth(), authCtrl.Logout)

	router.GET("/store-explorer", middleware.OptionalAuth(), explorerCtrl.Explore)
	router.GET("/store/:slug", middleware.OptionalAuth(), storeCtrl.Show)
	router.POST("/store/:slug/products/:id/buy", storeCtrl.Buy)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/profile", profileCtrl.Show)
		auth.POST("/profile", profileCtrl.Update)

		auth.POST("/store/:slug/edit", storeCtrl.SaveStore)
		auth.POST("/store/:slug/products", storeCtrl.CreateProduct)
		auth.POST("/store/:slug/products/:id", storeCtrl.UpdateProduct)
	}

	seller := router.Group("/")
	seller.Use(middleware.AuthMiddleware(), middleware.SellerMiddleware())
	{
		seller.GET("/home", dashCtrl.Home)
		seller.POST("/home/account", dashCtrl.UpdateAccount)
		seller.GET("/add-project", projectCtrl.ShowAddProject)
		seller.POST("/add-project", projectCtrl.CreateProject)
	}
}
