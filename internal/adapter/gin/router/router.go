package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-services/internal/adapter/gin/handler"
	"shop-services/internal/adapter/gin/middleware"
)

// newEngine builds a gin engine with the middleware stack and the banner and
// health endpoints every resource service exposes.
func newEngine(serviceName string, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": serviceName,
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})

	return r
}

// SetupUsersRouter configures and returns the users service router
func SetupUsersRouter(h *handler.UserHandler, log *zap.Logger) *gin.Engine {
	r := newEngine("Users Service", log)

	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	return r
}

// SetupProductsRouter configures and returns the products service router
func SetupProductsRouter(h *handler.ProductHandler, log *zap.Logger) *gin.Engine {
	r := newEngine("Products Service", log)

	products := r.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	return r
}

// SetupOrdersRouter configures and returns the orders service router
func SetupOrdersRouter(h *handler.OrderHandler, log *zap.Logger) *gin.Engine {
	r := newEngine("Orders Service", log)

	orders := r.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PUT("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
	}

	return r
}
