package events

import "time"

const PayrollGeneratedTopic = "hr.payroll.generated.v1"

type PayrollGeneratedEvent struct {
	EventType     string    `json:"event_type"`
	FileID        string    `json:"file_id"`
	Month         string    `json:"month"`
	EmployeeCount int       `json:"employee_count"`
	ExcludedCount int       `json:"excluded_count"`
	RequestedBy   string    `json:"requested_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}
