package fleet

import (
	"go-fieldops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.AuthMiddleware())
	{
		drivers.GET("", handler.GetAllDrivers)
		drivers.GET("/:id", handler.GetDriverById)
		drivers.POST("", middleware.RoleMiddleware("manager", "admin"), handler.CreateDriver)
		drivers.PUT("/:id", middleware.RoleMiddleware("manager", "admin"), handler.UpdateDriver)
		drivers.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.DeleteDriver)
	}

	units := r.Group("/mobile-units")
	units.Use(middleware.AuthMiddleware())
	{
		units.GET("", handler.GetAllMobileUnits)
		units.GET("/:id", handler.GetMobileUnitById)
		units.POST("", middleware.RoleMiddleware("manager", "admin"), handler.CreateMobileUnit)
		units.PUT("/:id", middleware.RoleMiddleware("manager", "admin"), handler.UpdateMobileUnit)
		units.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.DeleteMobileUnit)
		units.POST("/:id/assign-driver", middleware.RoleMiddleware("manager", "admin"), handler.AssignDriver)
		units.POST("/:id/unassign-driver", middleware.RoleMiddleware("manager", "admin"), handler.UnassignDriver)
	}
}
