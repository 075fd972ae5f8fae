package workorder

import "time"

type CreateWorkOrderRequest struct {
	ClientName    string    `json:"client_name" binding:"required"`
	Address       string    `json:"address" binding:"required"`
	Commune       string    `json:"commune"`
	Description   string    `json:"description"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

type UpdateWorkOrderRequest struct {
	ClientName    string    `json:"client_name" binding:"required"`
	Address       string    `json:"address" binding:"required"`
	Commune       string    `json:"commune"`
	Description   string    `json:"description"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

type AssignMobileUnitRequest struct {
	MobileUnitID string `json:"mobile_unit_id" binding:"required,uuid"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
