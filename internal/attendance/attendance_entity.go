package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusWork     = "work"
	StatusLate     = "late"
	StatusSick     = "sick"
	StatusVacation = "vacation"
	StatusOther    = "other"
)

// Display values that are not stored labels.
const (
	DisplayNotStarted = "not_started"
	DisplayWorking    = "working"
	DisplayFinished   = "finished"
)

const UniqueDayConstraint = "uq_time_records_employee_date"

type TimeRecord struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_time_records_employee_date"`
	Date       time.Time  `gorm:"type:date;not null;uniqueIndex:uq_time_records_employee_date"`
	StartTime  *time.Time `gorm:"column:start_time"`
	EndTime    *time.Time `gorm:"column:end_time"`
	Status     string     `gorm:"type:varchar(20);not null;default:'work'"`
	CreatedAt  time.Time  `gorm:"not null;default:now()"`
	UpdatedAt  time.Time  `gorm:"not null;default:now()"`
}

func (TimeRecord) TableName() string {
	return "time_records"
}

func (r *TimeRecord) Started() bool {
	return r != nil && r.StartTime != nil
}

func (r *TimeRecord) Ended() bool {
	return r != nil && r.EndTime != nil
}

// IsWorkingStatus reports whether the label counts toward worked time.
func IsWorkingStatus(status string) bool {
	return status == StatusWork || status == StatusLate
}

func ValidStatus(status string) bool {
	switch status {
	case StatusWork, StatusLate, StatusSick, StatusVacation, StatusOther:
		return true
	}
	return false
}
