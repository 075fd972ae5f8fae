package inventory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a stocked material (cable, medidores, fittings). Stock counts whole
// units of the item's measure.
type Item struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Sku       string         `gorm:"size:50;not null;uniqueIndex:uq_items_sku"`
	Name      string         `gorm:"size:255;not null"`
	Unit      string         `gorm:"size:20;not null;default:UN"`
	Stock     int64          `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Item) TableName() string {
	return "items"
}

// WorkOrderItem records material consumed by one work order. Rows are
// append-only; a mistaken consumption is corrected by a new row with the
// remaining difference, never by editing history.
type WorkOrderItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkOrderID uuid.UUID  `gorm:"type:uuid;not null;index"`
	ItemID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity    int64      `gorm:"not null"`
	UsedAt      time.Time  `gorm:"not null"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (WorkOrderItem) TableName() string {
	return "work_order_items"
}

// ConsumptionRow is the per-order consumption listing with the item resolved.
type ConsumptionRow struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"item_id"`
	Sku      string    `json:"sku"`
	ItemName string    `json:"item_name"`
	Unit     string    `json:"unit"`
	Quantity int64     `json:"quantity"`
	UsedAt   time.Time `json:"used_at"`
}
