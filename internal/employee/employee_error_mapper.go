package employee

import (
	"errors"

	employeeerrors "go-outtime/internal/employee/errors"
	"go-outtime/internal/shared/connection"

	"gorm.io/gorm"
)

const ActiveTelegramConstraint = "uq_employees_active_telegram"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if connection.IsUniqueViolation(err, ActiveTelegramConstraint) {
		return employeeerrors.ErrTelegramIDInUse
	}
	return err
}
