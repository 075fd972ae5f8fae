package personnel

import (
	"go-fieldops/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	people := r.Group("/personnel")
	people.Use(middleware.AuthMiddleware())
	{
		people.GET("", handler.GetAll)
		people.GET("/:id", handler.GetById)
		people.POST("", middleware.RoleMiddleware("manager", "admin"), handler.Create)
		people.POST("/backfill-from-driver", middleware.RoleMiddleware("manager", "admin"), handler.BackfillFromDriver)
		people.PUT("/:id", middleware.RoleMiddleware("manager", "admin"), handler.Update)
		people.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.Deactivate)
	}
}
