package events

import "time"

const (
	EmployeeLifecycleTopic  = "outtime.employee.lifecycle.v1"
	EmployeeRegisteredEvent = "employee.registered"
)

// EmployeeRegistered is emitted once an invite has been redeemed.
type EmployeeRegistered struct {
	EventType   string    `json:"event_type"`
	EmployeeID  string    `json:"employee_id"`
	CompanyID   string    `json:"company_id"`
	TelegramID  int64     `json:"telegram_id"`
	Name        string    `json:"name"`
	InviteToken string    `json:"invite_token"`
	OccurredAt  time.Time `json:"occurred_at"`
}
