package routes

import (
	"auth-api/internals/auth"
	"auth-api/internals/config"
	"auth-api/internals/controllers"
	"auth-api/internals/middleware"
	"auth-api/internals/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID)

	users := repository.NewUsers(db)
	blacklist := repository.NewBlacklist(db)
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenLifetime)
	authorizer := auth.NewAuthorizer(codec, blacklist)

	authCtrl := controllers.NewAuthController(users, blacklist, codec, cfg.BcryptCost)
	authMiddleware := middleware.NewRequireAuthMiddleware(users, authorizer)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "active",
			"message": "Auth API is running",
		})
	})

	public := r.Group("/auth")
	{
		public.POST("/register", authCtrl.Register)
		public.POST("/login", authCtrl.Login)
	}

	protected := r.Group("/auth")
	protected.Use(authMiddleware.RequireAuth)
	{
		protected.GET("/status", authCtrl.Status)
		protected.POST("/logout", authCtrl.Logout)
		protected.GET("/headers", authCtrl.Headers)
	}

	return r
}
