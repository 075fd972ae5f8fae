package bootstrap

import "context"

// Lifecycle actions recorded by the process-level audit logger. They use the
// same naming scheme as the DB-backed trail in internal/audit so operators
// can correlate both streams.
const (
	ActionAPIStart    = "API_START"
	ActionAPIShutdown = "API_SHUTDOWN"
)

// AuditLog is the minimal process-level audit entry. The DB-backed audit
// trail lives in internal/audit; this one exists so lifecycle events are
// captured even when the database is already gone.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
