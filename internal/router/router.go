package router

import (
	"fmt"
	"strings"

	"github.com/kirana-store/kirana/internal/cache"
	"github.com/kirana-store/kirana/internal/config"
	adminhandlers "github.com/kirana-store/kirana/internal/http/handlers/admin"
	publichandlers "github.com/kirana-store/kirana/internal/http/handlers/public"
	"github.com/kirana-store/kirana/internal/logger"
	"github.com/kirana-store/kirana/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine with all routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "kirana"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}
	redisClient := cache.Client()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/delivery/check", publicHandler.CheckDelivery)

			public.GET("/cart", publicHandler.GetCart)
			public.POST("/cart/items", publicHandler.AddCartItem)
			public.PUT("/cart/items", publicHandler.UpdateCartItem)
			public.DELETE("/cart/items", publicHandler.RemoveCartItem)
			public.DELETE("/cart", publicHandler.ClearCart)
			public.GET("/cart/share", publicHandler.ShareCart)

			public.POST("/checkout", publicHandler.Checkout)
			public.POST("/orders/:order_no/pay", publicHandler.PayOrder)
			public.GET("/orders/:order_no", publicHandler.GetOrder)
		}

		admin := apiV1.Group("/admin")
		{
			admin.GET("/captcha", adminHandler.GetCaptcha)
			admin.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIP), adminHandler.Login)

			authed := admin.Group("")
			authed.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authed.GET("/me", adminHandler.Me)
				authed.PUT("/me/password", adminHandler.ChangePassword)

				authed.GET("/products", adminHandler.ListProducts)
				authed.GET("/products/:id", adminHandler.GetProduct)
				authed.POST("/products", adminHandler.CreateProduct)
				authed.PUT("/products/:id", adminHandler.UpdateProduct)
				authed.PUT("/products/:id/stock", adminHandler.SetProductStock)
				authed.DELETE("/products/:id", adminHandler.DeleteProduct)

				authed.GET("/orders", adminHandler.ListOrders)
				authed.GET("/orders/:id", adminHandler.GetOrder)
				authed.POST("/orders/:id/paid", adminHandler.MarkOrderPaid)
				authed.POST("/orders/:id/cancel", adminHandler.CancelOrder)
			}
		}
	}

	return r
}
