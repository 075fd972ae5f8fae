package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionPayrollExport      = "PAYROLL_EXPORT"
	ActionBankingInfoCreated = "BANKING_INFO_CREATED"
	ActionBankingInfoUpdated = "BANKING_INFO_UPDATED"
	ActionBankingInfoDeleted = "BANKING_INFO_DELETED"
	ActionAccountCreated     = "PAYROLL_ACCOUNT_CREATED"
)

// AuditLog rows are append-only: there is no update or delete path anywhere
// in this package.
type AuditLog struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ActorID     *uuid.UUID        `gorm:"type:uuid;index"`
	Action      string            `gorm:"size:64;not null;index"`
	Description string            `gorm:"type:text"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	IPAddress   string            `gorm:"size:45"`
	UserAgent   string            `gorm:"size:255"`
	CreatedAt   time.Time
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
