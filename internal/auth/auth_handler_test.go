package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-outtime/internal/auth"
	autherrors "go-outtime/internal/auth/errors"
	authMock "go-outtime/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *authMock.MockService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	h := auth.NewHandler(svc, auth.CookieConfig{})

	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/refresh", h.RefreshToken)
	r.POST("/logout", h.Logout)
	r.GET("/me", func(c *gin.Context) { c.Set("user_id", "u-1") }, h.Me)
	return r, svc
}

func postJSON(t *testing.T, r http.Handler, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHandler_Login(t *testing.T) {
	session := auth.Session{
		User:         auth.AuthResponse{ID: "u-1", Email: "owner@acme.test"},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}

	t.Run("web client gets cookies", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), "owner@acme.test", "secret1").Return(session, nil)

		w := postJSON(t, r, "/login", auth.LoginRequest{Email: "owner@acme.test", Password: "secret1"},
			map[string]string{"X-Client-Type": "WEB"})

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		data := decode(t, w)["data"].(map[string]any)
		assert.Equal(t, "owner@acme.test", data["user"].(map[string]any)["email"])
	})

	t.Run("api client gets body only", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)

		w := postJSON(t, r, "/login", auth.LoginRequest{Email: "owner@acme.test", Password: "secret1"},
			map[string]string{"X-Client-Type": "mobile"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(auth.Session{}, autherrors.ErrInvalidCredentials)

		w := postJSON(t, r, "/login", auth.LoginRequest{Email: "owner@acme.test", Password: "bad"}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed email never reaches the service", func(t *testing.T) {
		r, _ := setupAuthRouter(t)

		w := postJSON(t, r, "/login", map[string]string{"email": "nope", "password": "x"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(auth.Session{AccessToken: "a"}, nil)

		w := postJSON(t, r, "/register", auth.RegisterRequest{
			CompanyName: "Acme", Name: "Olga", Email: "owner@acme.test", Password: "secret1",
		}, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(auth.Session{}, autherrors.ErrEmailAlreadyRegistered)

		w := postJSON(t, r, "/register", auth.RegisterRequest{
			CompanyName: "Acme", Name: "Olga", Email: "owner@acme.test", Password: "secret1",
		}, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_RefreshToken(t *testing.T) {
	t.Run("from body", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().RefreshToken(gomock.Any(), "r-1").Return(auth.Session{AccessToken: "a-2"}, nil)

		w := postJSON(t, r, "/refresh", auth.RefreshRequest{RefreshToken: "r-1"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("from cookie", func(t *testing.T) {
		r, svc := setupAuthRouter(t)
		svc.EXPECT().RefreshToken(gomock.Any(), "r-cookie").Return(auth.Session{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "r-cookie"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		r, _ := setupAuthRouter(t)

		w := postJSON(t, r, "/refresh", map[string]string{}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_MeAndLogout(t *testing.T) {
	r, svc := setupAuthRouter(t)
	svc.EXPECT().GetMe(gomock.Any(), "u-1").Return(auth.AuthResponse{ID: "u-1", Role: "OWNER"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OWNER", decode(t, w)["data"].(map[string]any)["role"])

	w = postJSON(t, r, "/logout", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Equal(t, "", c.Value)
		assert.True(t, c.MaxAge < 0)
	}
}
