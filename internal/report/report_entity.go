package report

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinContentLength is counted in runes after trimming.
const MinContentLength = 5

type Report struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_reports_employee_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uq_reports_employee_date"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;default:now()"`
	UpdatedAt  time.Time `gorm:"not null;default:now()"`
}

func (Report) TableName() string {
	return "reports"
}

// WithEmployee is a report joined with the author's name.
type WithEmployee struct {
	Report
	EmployeeName string `gorm:"column:employee_name"`
	TelegramID   int64  `gorm:"column:telegram_id"`
}

func WordCount(content string) int {
	return len(strings.Fields(content))
}
