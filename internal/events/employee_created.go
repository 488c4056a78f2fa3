package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID int       `json:"employee_id"`
	Department string    `json:"department"`
	OccurredAt time.Time `json:"occurred_at"`
}
