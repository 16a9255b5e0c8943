package auth

import (
	"time"

	"github.com/google/uuid"
)

// EmailConstraint is the unique constraint on users.email.
const EmailConstraint = "uq_users_email"

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Email        string     `gorm:"type:varchar(255);not null"`
	Name         string     `gorm:"type:varchar(255);not null"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(30);not null;default:'OWNER'"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
