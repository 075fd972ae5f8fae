package workorder

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Work order lifecycle. Status labels stay in Spanish because that is what
// field crews and the back office use on printed orders.
const (
	StatusPending   = "PENDIENTE"
	StatusAssigned  = "ASIGNADA"
	StatusInProgress = "EN_CURSO"
	StatusCompleted = "COMPLETADA"
	StatusCancelled = "ANULADA"
)

// Statuses maps each status to the set it may transition into.
var Statuses = map[string][]string{
	StatusPending:    {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusPending, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// WorkOrder is an OT (orden de trabajo): one field-service job at one
// address, optionally dispatched to a mobile unit.
type WorkOrder struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Number        int64          `gorm:"not null;uniqueIndex:uq_work_orders_number;autoIncrement:false"`
	ClientName    string         `gorm:"size:255;not null"`
	Address       string         `gorm:"size:255;not null"`
	Commune       string         `gorm:"size:100"`
	Description   string         `gorm:"size:500"`
	Status        string         `gorm:"size:20;not null;default:PENDIENTE"`
	MobileUnitID  *uuid.UUID     `gorm:"type:uuid"`
	ScheduledDate time.Time      `gorm:"not null"`
	CompletedAt   *time.Time     `gorm:""`
	CreatedBy     *uuid.UUID     `gorm:"type:uuid"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (WorkOrder) TableName() string {
	return "work_orders"
}

// WorkOrderListItem is the listing read model with the dispatched unit code
// resolved in the same query.
type WorkOrderListItem struct {
	ID             string     `json:"id"`
	Number         int64      `json:"number"`
	ClientName     string     `json:"client_name"`
	Address        string     `json:"address"`
	Commune        string     `json:"commune"`
	Status         string     `json:"status"`
	MobileUnitCode *string    `json:"mobile_unit_code,omitempty"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
