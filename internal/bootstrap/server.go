package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StartHTTPServer runs the gin server until SIGINT/SIGTERM, then drains
// in-flight requests. Start and stop are both written to the lifecycle audit
// logger: an export endpoint going up or down is something operations wants
// on record.
func StartHTTPServer(
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
) {
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	startedAt := time.Now()
	auditLogger.Log(context.Background(), AuditLog{
		Action:  ActionAPIStart,
		Message: "Operations API starting",
		Meta: map[string]any{
			"port": cfg.Port,
			"pid":  os.Getpid(),
		},
	})

	go func() {
		zap.L().Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	zap.L().Info("Shutdown signal received", zap.String("signal", sig.String()))

	// Recorded before Shutdown so the entry exists even if the drain hangs.
	auditLogger.Log(context.Background(), AuditLog{
		Action:  ActionAPIShutdown,
		Message: "Operations API shutting down",
		Meta: map[string]any{
			"signal": sig.String(),
			"uptime": time.Since(startedAt).String(),
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
	} else {
		zap.L().Info("Server exited gracefully")
	}
}
