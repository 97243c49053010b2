package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/streamvault/payment-service/internal/delivery/httpapi/middleware"
)

func NewRouter(handler *PaymentHandler, limiter *middleware.RateLimiter, adminToken string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/payments", limiter.Middleware(), handler.CreatePayment)
		api.POST("/payments/webhook", handler.HandleWebhook)
		api.GET("/payments/:payment_id", handler.GetOrderStatus)
	}

	admin := router.Group("/api/v1/orders", middleware.AdminAuth(adminToken))
	{
		admin.GET("", handler.ListOrders)
		admin.POST("/:payment_id/status", handler.OverrideStatus)
	}

	return router
}
