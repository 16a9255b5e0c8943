package invite

import (
	"time"

	"go-outtime/internal/company"

	"github.com/google/uuid"
)

type Invite struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token        string           `gorm:"type:varchar(64);not null;uniqueIndex:uq_invites_token"`
	CompanyID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	EmployeeName string           `gorm:"type:varchar(255);not null"`
	IsUsed       bool             `gorm:"not null;default:false"`
	ExpiresAt    time.Time        `gorm:"not null"`
	UsedAt       *time.Time
	CreatedAt    time.Time        `gorm:"not null;default:now()"`
	Company      *company.Company `gorm:"foreignKey:CompanyID;references:ID"`
}

func (Invite) TableName() string {
	return "invites"
}

// Redeemable reports whether the invite can still be used at now. An expired
// invite is never redeemable, whatever its used flag says.
func (i Invite) Redeemable(now time.Time) bool {
	return !i.IsUsed && now.Before(i.ExpiresAt)
}

func (i Invite) CompanyName() string {
	if i.Company == nil {
		return ""
	}
	return i.Company.Name
}
