package companyerrors

import (
	"go-outtime/internal/shared/apperror"
	"net/http"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)

	ErrInvalidName = apperror.New(
		apperror.CodeValidation,
		"Company name must be between 2 and 100 characters",
		http.StatusBadRequest,
	)

	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeValidation,
		"Notification time must use HH:MM or HH:MM:SS",
		http.StatusBadRequest,
	)

	ErrSameNotificationTimes = apperror.New(
		apperror.CodeValidation,
		"Morning and evening notification times must differ",
		http.StatusBadRequest,
	)

	ErrInvalidTimezone = apperror.New(
		apperror.CodeValidation,
		"Unknown timezone",
		http.StatusBadRequest,
	)
)
