package workorder

import (
	"go-fieldops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	orders := r.Group("/work-orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("", handler.GetAll)
		orders.GET("/:id", handler.GetById)
		orders.POST("", middleware.RoleMiddleware("operator", "manager", "admin"), handler.Create)
		orders.PUT("/:id", middleware.RoleMiddleware("operator", "manager", "admin"), handler.Update)
		orders.POST("/:id/assign-mobile-unit", middleware.RoleMiddleware("manager", "admin"), handler.AssignMobileUnit)
		orders.POST("/:id/status", middleware.RoleMiddleware("operator", "manager", "admin"), handler.UpdateStatus)
		orders.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.Delete)
	}
}
