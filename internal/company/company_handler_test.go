package company_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-outtime/internal/company"
	companyerrors "go-outtime/internal/company/errors"
	companyMock "go-outtime/internal/company/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	})
	return r
}

func TestHandler_UpdateSettings(t *testing.T) {
	companyID := uuid.NewString()

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := companyMock.NewMockService(ctrl)
		r := newRouter(companyID)
		r.PUT("/settings", company.NewHandler(svc).UpdateSettings)

		svc.EXPECT().
			UpdateSettings(gomock.Any(), companyID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req company.UpdateSettingsRequest) (company.SettingsResponse, error) {
				assert.Equal(t, "08:30", *req.MorningNotificationTime)
				assert.Nil(t, req.Name)
				return company.SettingsResponse{MorningNotificationTime: "08:30:00"}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings",
			strings.NewReader(`{"morning_notification_time":"08:30"}`)))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"morning_notification_time":"08:30:00"`)
	})

	t.Run("same times rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := companyMock.NewMockService(ctrl)
		r := newRouter(companyID)
		r.PUT("/settings", company.NewHandler(svc).UpdateSettings)

		svc.EXPECT().
			UpdateSettings(gomock.Any(), companyID, gomock.Any()).
			Return(company.SettingsResponse{}, companyerrors.ErrSameNotificationTimes)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings",
			strings.NewReader(`{"evening_notification_time":"09:00"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("name too short never reaches the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := companyMock.NewMockService(ctrl)
		r := newRouter(companyID)
		r.PUT("/settings", company.NewHandler(svc).UpdateSettings)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings", strings.NewReader(`{"name":"A"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetSettingsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := companyMock.NewMockService(ctrl)
	companyID := uuid.NewString()
	r := newRouter(companyID)
	r.GET("/settings", company.NewHandler(svc).GetSettings)

	svc.EXPECT().GetSettings(gomock.Any(), companyID).Return(company.SettingsResponse{}, companyerrors.ErrCompanyNotFound)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_NotificationPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := companyMock.NewMockService(ctrl)
	companyID := uuid.NewString()
	r := newRouter(companyID)
	r.GET("/settings/notifications/preview", company.NewHandler(svc).NotificationPreview)

	svc.EXPECT().NotificationPreview(gomock.Any(), companyID).Return(company.NotificationPreviewResponse{
		Timezone:    "Europe/Berlin",
		WorkingDays: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings/notifications/preview", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Europe/Berlin")
}
