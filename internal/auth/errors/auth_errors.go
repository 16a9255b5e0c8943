package autherrors

import (
	"go-outtime/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"A user with this email already exists",
		http.StatusConflict,
	)
	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"Access token is required",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeValidation,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
	ErrWeakPassword = apperror.New(
		apperror.CodeValidation,
		"New password must be at least 6 characters",
		http.StatusBadRequest,
	)
	ErrInvalidBotKey = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid bot API key",
		http.StatusUnauthorized,
	)
)
