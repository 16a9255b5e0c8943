package dashboarderrors

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
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Date must be in YYYY-MM-DD format",
		http.StatusBadRequest,
	)
)
