package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PersonnelID *uuid.UUID `gorm:"type:uuid;uniqueIndex"` // system accounts have no personnel link
	Name        string     `gorm:"size:120;not null"`
	Email       string     `gorm:"size:120;uniqueIndex:uq_users_email;not null"`
	Password    string     `gorm:"size:255;not null"` // bcrypt hash
	Role        string     `gorm:"size:20;not null;default:'operator'"`
	IsActive    bool       `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
