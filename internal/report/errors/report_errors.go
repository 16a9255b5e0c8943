package reporterrors

import (
	"go-outtime/internal/shared/apperror"
	"net/http"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Report not found",
		http.StatusNotFound,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"Dates must use YYYY-MM-DD and start must not be after end",
		http.StatusBadRequest,
	)
)
