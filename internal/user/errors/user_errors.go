package usererrors

import (
	"net/http"

	"go-outtime/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A user with this email already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeValidation,
		"Role must be ADMIN or VIEWER",
		http.StatusBadRequest,
	)

	ErrOwnerImmutable = apperror.New(
		apperror.CodeForbidden,
		"The company owner cannot be changed or removed",
		http.StatusForbidden,
	)

	ErrSelfModification = apperror.New(
		apperror.CodeForbidden,
		"You cannot change your own role or remove yourself",
		http.StatusForbidden,
	)
)
