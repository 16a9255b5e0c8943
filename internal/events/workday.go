package events

import "time"

const (
	WorkdayTopic        = "outtime.workday.v1"
	WorkdayStartedEvent = "workday.started"
	WorkdayEndedEvent   = "workday.ended"
)

type WorkdayStarted struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	CompanyID  string    `json:"company_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	StartedAt  time.Time `json:"started_at"`
}

type WorkdayEnded struct {
	EventType     string    `json:"event_type"`
	EmployeeID    string    `json:"employee_id"`
	CompanyID     string    `json:"company_id"`
	Date          string    `json:"date"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
	WorkedMinutes int64     `json:"worked_minutes"`
	ReportID      string    `json:"report_id"`
}
