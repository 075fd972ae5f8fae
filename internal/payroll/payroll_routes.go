package payroll

import (
	"go-fieldops/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the payroll surface. Every route is manager/admin
// only; banking info deletion is admin only.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("manager", "admin"))
	{
		payroll.GET("", handler.GetAccounts)
		payroll.GET("/summary", handler.Summary)
		payroll.GET("/:personnelId/ledger", handler.GetLedger)
		payroll.POST("/account", handler.CreateAccount)

		if redisClient != nil {
			payroll.POST("/transaction", middleware.Idempotency(redisClient), handler.CreateTransaction)
		} else {
			payroll.POST("/transaction", handler.CreateTransaction)
		}

		payroll.GET("/bank-info", handler.GetAllBankingInfo)
		payroll.GET("/bank-info/:personnelId", handler.GetBankingInfo)
		payroll.POST("/bank-info", handler.CreateBankingInfo)
		payroll.PUT("/bank-info/:personnelId", handler.UpdateBankingInfo)
		payroll.DELETE("/bank-info/:personnelId", middleware.RoleMiddleware("admin"), handler.DeleteBankingInfo)

		payroll.POST("/export/santander-transfer", handler.ExportSantanderTransfer)
	}
}
