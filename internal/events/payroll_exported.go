package events

import "time"

const PayrollExportedTopic = "backoffice.payroll.export.v1"

// PayrollExportedEvent notifies downstream systems (accounting, alerting)
// that a bank-transfer file was generated.
type PayrollExportedEvent struct {
	EventType    string    `json:"event_type"`
	RecordCount  int       `json:"record_count"`
	TotalAmount  int64     `json:"total_amount"`
	PersonnelIDs []string  `json:"personnel_ids"`
	OccurredAt   time.Time `json:"occurred_at"`
}
