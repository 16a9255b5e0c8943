package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-outtime/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type startDayInput struct {
	TelegramID int64 `json:"telegram_id" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=work late"`
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "already started", http.StatusConflict)
		got := apperror.ToHTTP(fmt.Errorf("start day: %w", err))

		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "already started", got.Message)
	})

	t.Run("unknown error is hidden", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})

	t.Run("validation errors map to first field", func(t *testing.T) {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		})
		err := v.Struct(startDayInput{})

		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeValidation, got.Code)
		assert.Equal(t, "Telegram Id is required", got.Message)
	})
}

func TestAppError_Is(t *testing.T) {
	sentinel := apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)
	wrapped := apperror.Wrap(errors.New("record not found"), sentinel.Code, sentinel.Message, sentinel.HTTPStatus)

	assert.ErrorIs(t, wrapped, sentinel)
	assert.Nil(t, apperror.Wrap(nil, "X", "y", 500))
}
