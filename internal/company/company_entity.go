package company

import (
	"time"

	"go-outtime/internal/shared/clock"

	"github.com/google/uuid"
)

const (
	DefaultMorningTime = "09:00:00"
	DefaultEveningTime = "18:00:00"
	DefaultTimezone    = "UTC"
)

type Company struct {
	ID                      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                    string    `gorm:"type:varchar(100);not null"`
	MorningNotificationTime string    `gorm:"column:morning_notification_time;type:varchar(8);not null;default:'09:00:00'"`
	EveningNotificationTime string    `gorm:"column:evening_notification_time;type:varchar(8);not null;default:'18:00:00'"`
	Timezone                string    `gorm:"type:varchar(64);not null;default:'UTC'"`
	CreatedAt               time.Time `gorm:"not null;default:now()"`
	UpdatedAt               time.Time `gorm:"not null;default:now()"`
}

func (Company) TableName() string {
	return "companies"
}

// Location is the company's timezone, UTC when unset or unknown.
func (c Company) Location() *time.Location {
	return clock.LoadLocation(c.Timezone)
}

// Today is the company's current calendar date.
func (c Company) Today(now time.Time) time.Time {
	return clock.DateIn(now, c.Location())
}
