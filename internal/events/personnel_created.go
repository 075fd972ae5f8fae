package events

import "time"

const PersonnelCreatedTopic = "backoffice.personnel.lifecycle.v1"

type PersonnelCreatedEvent struct {
	EventType   string    `json:"event_type"`
	PersonnelID string    `json:"personnel_id"`
	Rut         string    `json:"rut"`
	OccurredAt  time.Time `json:"occurred_at"`
}
