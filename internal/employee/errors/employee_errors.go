package employeeerrors

import (
	"go-outtime/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrTelegramIDInUse = apperror.New(
		apperror.CodeConflict,
		"This Telegram account is already linked to an active employee",
		http.StatusConflict,
	)
	ErrEmptyName = apperror.New(
		apperror.CodeValidation,
		"Name must not be empty",
		http.StatusBadRequest,
	)
)
