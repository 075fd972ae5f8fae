package inventory

import "time"

type CreateItemRequest struct {
	Sku   string `json:"sku" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Unit  string `json:"unit"`
	Stock int64  `json:"stock"`
}

type UpdateItemRequest struct {
	Name  string `json:"name" binding:"required"`
	Unit  string `json:"unit"`
	Stock *int64 `json:"stock"`
}

type ConsumeRequest struct {
	ItemID   string     `json:"item_id" binding:"required,uuid"`
	Quantity int64      `json:"quantity" binding:"required"`
	UsedAt   *time.Time `json:"used_at"`
}
