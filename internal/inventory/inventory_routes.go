package inventory

import (
	"go-fieldops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	items := r.Group("/items")
	items.Use(middleware.AuthMiddleware())
	{
		items.GET("", handler.GetAllItems)
		items.GET("/:id", handler.GetItemById)
		items.POST("", middleware.RoleMiddleware("manager", "admin"), handler.CreateItem)
		items.PUT("/:id", middleware.RoleMiddleware("manager", "admin"), handler.UpdateItem)
		items.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.DeleteItem)
	}

	// Consumption hangs off the work order it belongs to.
	consumption := r.Group("/work-orders/:id/items")
	consumption.Use(middleware.AuthMiddleware())
	{
		consumption.GET("", handler.GetConsumption)
		consumption.POST("", middleware.RoleMiddleware("operator", "manager", "admin"), handler.Consume)
	}
}
