package app

import (
	"os"

	"go-fieldops/internal/middleware"
	"go-fieldops/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure, repositories, services and routes onto the
// given router. Redis is optional: without REDIS_ADDR the payroll routes run
// without the idempotency middleware.
func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisConn, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		logger.Warn("redis unavailable, idempotency middleware disabled", zap.Error(err))
		redisConn = nil
	}

	router.Use(middleware.ContextLogger(logger))

	return registerModules(router, sqlDB, gormDB, redisConn)
}
