package user_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-outtime/internal/domain"
	"go-outtime/internal/user"
	usererrors "go-outtime/internal/user/errors"
	userMock "go-outtime/internal/user/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(companyID, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Set("user_id", userID)
		c.Next()
	})
	return r
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	h := user.NewHandler(svc)
	companyID := uuid.NewString()

	r := setupRouter(companyID, uuid.NewString())
	r.POST("/users", h.Create)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().
			Create(gomock.Any(), companyID, user.CreateUserRequest{
				Email: "a@b.io", Name: "Ann", Password: "secret1", Role: domain.RoleViewer,
			}).
			Return(user.UserResponse{Email: "a@b.io", Role: domain.RoleViewer}, nil)

		w := httptest.NewRecorder()
		body := `{"email":"a@b.io","name":"Ann","password":"secret1","role":"VIEWER"}`
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"role":"VIEWER"`)
	})

	t.Run("bad payload", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"email":"nope"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	h := user.NewHandler(svc)
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	targetID := uuid.NewString()

	r := setupRouter(companyID, actorID)
	r.DELETE("/users/:id", h.Delete)

	svc.EXPECT().Delete(gomock.Any(), companyID, actorID, targetID).Return(usererrors.ErrOwnerImmutable)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/"+targetID, nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestHandler_UpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := userMock.NewMockService(ctrl)
	h := user.NewHandler(svc)
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	targetID := uuid.NewString()

	r := setupRouter(companyID, actorID)
	r.PUT("/users/:id/role", h.UpdateRole)

	svc.EXPECT().
		UpdateRole(gomock.Any(), companyID, actorID, targetID, "ADMIN").
		Return(user.UserResponse{ID: targetID, Role: "ADMIN"}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/users/"+targetID+"/role", strings.NewReader(`{"role":"ADMIN"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
}
