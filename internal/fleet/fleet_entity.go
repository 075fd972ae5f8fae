package fleet

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver is a field technician authorized to operate a mobile unit.
// Rut is stored in canonical dotted form ("12.345.678-9").
type Driver struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FullName      string         `gorm:"size:255;not null"`
	Rut           string         `gorm:"size:13;not null;uniqueIndex:uq_drivers_rut"`
	LicenseClass  string         `gorm:"size:4;not null"`
	LicenseExpiry *time.Time     `gorm:""`
	Phone         string         `gorm:"size:20"`
	IsActive      bool           `gorm:"not null;default:true"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Driver) TableName() string {
	return "drivers"
}

// MobileUnit is a service vehicle (movil). Code is the short operational
// label painted on the vehicle ("M-07"); Plate is the legal patente.
type MobileUnit struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code      string         `gorm:"size:10;not null;uniqueIndex:uq_mobile_units_code"`
	Plate     string         `gorm:"size:10;not null;uniqueIndex:uq_mobile_units_plate"`
	Brand     string         `gorm:"size:100"`
	Model     string         `gorm:"size:100"`
	Year      int            `gorm:""`
	DriverID  *uuid.UUID     `gorm:"type:uuid;uniqueIndex:uq_mobile_units_driver"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (MobileUnit) TableName() string {
	return "mobile_units"
}
