package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes lifecycle entries through the process logger.
// It is the fallback used by cmd/api: unlike the business audit trail it has
// no DB dependency, so start/stop events survive a dead database.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := make([]zap.Field, 0, len(entry.Meta)+1)
	fields = append(fields, zap.String("action", entry.Action))
	for k, v := range entry.Meta {
		fields = append(fields, zap.Any(k, v))
	}
	zap.L().Named("lifecycle").Info(entry.Message, fields...)
}
