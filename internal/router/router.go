package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dukaan/config"
	"dukaan/internal/handler"
	"dukaan/internal/identity"
	"dukaan/internal/middleware"
	"dukaan/internal/repository"
	"dukaan/internal/service"
	"dukaan/internal/store"
	"dukaan/pkg/payment"
)

func Setup(cfg *config.Config, gateway payment.Gateway, orderStore store.OrderStore, verifier identity.Verifier, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	auditRepo := repository.NewAuditLogRepository(db)
	orderSvc := service.NewOrderService(cfg, gateway, orderStore, verifier)

	orderHandler := handler.NewOrderHandler(orderSvc, auditRepo)
	adminHandler := handler.NewAdminHandler(cfg, orderStore)

	adminMw := middleware.AdminRequired(&cfg.JWT)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		payments := api.Group("/payments")
		{
			payments.POST("/orders", orderHandler.Initiate)
			payments.POST("/confirm", orderHandler.Confirm)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)
			admin.GET("/orders", adminMw, adminHandler.ListOrders)
			admin.GET("/orders/:id", adminMw, adminHandler.GetOrder)
		}
	}
	return r
}
