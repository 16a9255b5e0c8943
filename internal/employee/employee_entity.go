package employee

import (
	"time"

	"go-outtime/internal/company"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	TelegramID int64            `gorm:"column:telegram_id;not null"`
	Name       string           `gorm:"type:varchar(255);not null"`
	IsActive   bool             `gorm:"not null;default:true"`
	CreatedAt  time.Time        `gorm:"not null;default:now()"`
	UpdatedAt  time.Time        `gorm:"not null;default:now()"`
	Company    *company.Company `gorm:"foreignKey:CompanyID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

// Location is the timezone of the owning company, UTC when not loaded.
func (e Employee) Location() *time.Location {
	if e.Company == nil {
		return time.UTC
	}
	return e.Company.Location()
}

// WithStats is an employee row joined with attendance rollups.
type WithStats struct {
	Employee
	TotalDaysWorked int64   `gorm:"column:total_days_worked"`
	TotalReports    int64   `gorm:"column:total_reports"`
	AvgHoursPerDay  float64 `gorm:"column:avg_hours_per_day"`
}
