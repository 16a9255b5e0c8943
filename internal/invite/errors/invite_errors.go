package inviteerrors

import (
	"go-outtime/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidOrExpiredInvite = apperror.New(
		apperror.CodeNotFound,
		"Invalid or expired invite link",
		http.StatusNotFound,
	)
	ErrAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"You are already registered",
		http.StatusConflict,
	)
	ErrInviteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invite not found",
		http.StatusNotFound,
	)
	ErrInvalidTelegramID = apperror.New(
		apperror.CodeValidation,
		"Telegram ID is required",
		http.StatusBadRequest,
	)
	ErrInvalidName = apperror.New(
		apperror.CodeValidation,
		"Employee name must be between 2 and 255 characters",
		http.StatusBadRequest,
	)
)
