package attendanceerrors

import (
	"go-outtime/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found. Contact your administrator.",
		http.StatusNotFound,
	)
	ErrAlreadyStarted = apperror.New(
		apperror.CodeInvalidState,
		"Your start time is already recorded for today",
		http.StatusConflict,
	)
	ErrNotStarted = apperror.New(
		apperror.CodeInvalidState,
		"Start your day first",
		http.StatusConflict,
	)
	ErrAlreadyEnded = apperror.New(
		apperror.CodeInvalidState,
		"Your working day is already finished",
		http.StatusConflict,
	)
	ErrReportAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A report for today has already been submitted",
		http.StatusConflict,
	)
	ErrReportTooShort = apperror.New(
		apperror.CodeValidation,
		"Report must contain at least 5 characters",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeValidation,
		"Status must be one of work, late, sick, vacation, other",
		http.StatusBadRequest,
	)
	ErrInvalidTelegramID = apperror.New(
		apperror.CodeValidation,
		"Telegram ID is required",
		http.StatusBadRequest,
	)
)
