package http

import (
	"restaurant-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Router(svc service.OrderService, jwtSecret []byte, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := NewOrderHandler(svc, log)
	auth := Authenticate(jwtSecret, log)

	orders := r.Group("/orders", auth)
	{
		// /my обязан идти раньше /:id
		orders.GET("/my", LoggedInRequired(), h.GetMy)
		orders.GET("", LoggedInRequired(), h.List)
		orders.GET("/:id", LoggedInRequired(), h.GetByID)
		// создание открыто и гостям: actor, если есть, подхватится из контекста
		orders.POST("", h.Create)
		orders.PATCH("/:id", LoggedInRequired(), h.Update)
		orders.DELETE("/:id", RoleRequired(service.RoleManager), h.Delete)
	}

	return r
}
