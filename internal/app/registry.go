package app

import (
	"database/sql"

	"go-fieldops/internal/audit"
	"go-fieldops/internal/auth"
	"go-fieldops/internal/fleet"
	"go-fieldops/internal/inventory"
	"go-fieldops/internal/messaging/kafka"
	"go-fieldops/internal/payroll"
	"go-fieldops/internal/personnel"
	"go-fieldops/internal/workorder"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	auditRepo := audit.NewRepository(db)
	authRepo := auth.NewRepository(gormDB)
	fleetRepo := fleet.NewRepository(gormDB)
	inventoryRepo := inventory.NewRepository(gormDB, db)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	personnelRepo := personnel.NewRepository(gormDB)
	workorderRepo := workorder.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	fleetService := fleet.NewService(fleetRepo)
	inventoryService := inventory.NewService(db, inventoryRepo)
	payrollService := payroll.NewService(payrollRepo, personnelRepo, auditRepo)
	exportService := payroll.NewExportService(db, payrollRepo, auditRepo, outboxRepo)
	personnelService := personnel.NewServiceWithOutbox(db, personnelRepo, outboxRepo)
	workorderService := workorder.NewService(workorderRepo)

	// --- Handlers ---
	auditHandler := audit.NewHandler(auditRepo)
	authHandler := auth.NewHandler(authService)
	fleetHandler := fleet.NewHandler(fleetService)
	inventoryHandler := inventory.NewHandler(inventoryService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, exportService, rdb)
	personnelHandler := personnel.NewHandler(personnelService)
	workorderHandler := workorder.NewHandler(workorderService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		audit.RegisterRoutes(api, auditHandler)
		auth.RegisterRoutes(api, authHandler)
		fleet.RegisterRoutes(api, fleetHandler)
		inventory.RegisterRoutes(api, inventoryHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		personnel.RegisterRoutes(api, personnelHandler)
		workorder.RegisterRoutes(api, workorderHandler)
	}

	return nil
}
