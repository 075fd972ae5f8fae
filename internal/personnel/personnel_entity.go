package personnel

import (
	"time"

	"github.com/google/uuid"
)

// Personnel is the HR identity record. Rows are never hard-deleted;
// offboarding only clears IsActive.
type Personnel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName  string     `gorm:"size:120;not null"`
	Rut       string     `gorm:"size:13;not null;uniqueIndex:uq_personnel_rut"`
	RoleLabel string     `gorm:"size:60"`
	DriverID  *uuid.UUID `gorm:"type:uuid"` // set when backfilled from a fleet driver
	IsActive  bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Personnel) TableName() string {
	return "personnel"
}
