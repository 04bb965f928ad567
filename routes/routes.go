package routes

import (
	"net/http"

	"arunika-backend/controllers"
	"arunika-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup mengonfigurasi dan mengembalikan Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	// File aset (logo, watermark, foto profil) dilayani statis
	r.Static("/uploads", ctrl.Cfg.UploadDir)

	authed := middleware.Authenticate(ctrl.Tokens, ctrl.DB)
	adminOnly := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		// Rute utilitas
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)

		// Rute otentikasi
		api.POST("/auth", ctrl.Login)
		api.GET("/auth", authed, ctrl.Me)
		api.DELETE("/auth", ctrl.Logout)

		// Rute produk publik
		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/:id", ctrl.GetProduct)

		// Rute order publik
		api.POST("/orders", ctrl.CreateOrder)
		api.GET("/orders/:number/download", ctrl.DownloadOrder)

		// Rute pengaturan aset; perubahan hanya untuk admin
		api.GET("/settings/:kind", ctrl.GetAsset)
		api.POST("/settings/:kind", authed, adminOnly, ctrl.UploadAsset)
		api.DELETE("/settings/:kind", authed, adminOnly, ctrl.DeleteAsset)

		// Rute admin
		admin := api.Group("/admin", authed, adminOnly)
		{
			admin.GET("/products", ctrl.GetAllProducts)
			admin.POST("/products", ctrl.CreateProduct)
			admin.PUT("/products/:id", ctrl.UpdateProduct)
			admin.DELETE("/products/:id", ctrl.DeleteProduct)
			admin.DELETE("/cleanup/products", ctrl.CleanupProducts)

			admin.GET("/orders", ctrl.GetOrders)
			admin.GET("/orders/:id", ctrl.GetOrder)
			admin.PUT("/orders/:id/confirm", ctrl.ConfirmOrder)

			admin.GET("/users", ctrl.GetUsers)
			admin.POST("/users", ctrl.CreateUser)
			admin.DELETE("/users/:id", ctrl.DeactivateUser)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
