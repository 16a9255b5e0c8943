package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-outtime/internal/auth/token"
	"go-outtime/internal/domain"
	"go-outtime/internal/middleware"
	"go-outtime/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Error.Code
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "s3cret"
	iss := token.NewIssuer(token.Config{Secret: secret})
	subject := token.Subject{UserID: "u-1", CompanyID: "c-1", Role: "ADMIN"}
	access, err := iss.Issue(subject, token.TypeAccess)
	require.NoError(t, err)
	refresh, err := iss.Issue(subject, token.TypeRefresh)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/p", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString("user_id"),
			"company_id":  c.GetString("company_id"),
			"role":        c.GetString("role"),
			"ctx_company": contextutil.GetCompanyID(c.Request.Context()),
		})
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		w := serve(r, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "u-1", got["user_id"])
		assert.Equal(t, "ADMIN", got["role"])
		assert.Equal(t, "c-1", got["ctx_company"])
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: access})
		assert.Equal(t, http.StatusOK, serve(r, req).Code)
	})

	t.Run("missing", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/p", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/p", nil)
		req.Header.Set("Authorization", "Bearer "+refresh)
		assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
	})
}

func TestBotKey(t *testing.T) {
	r := gin.New()
	r.GET("/bot", middleware.BotKey("k-1"), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "k-1", http.StatusNoContent},
		{"wrong", "k-2", http.StatusUnauthorized},
		{"absent", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bot", nil)
			if tt.header != "" {
				req.Header.Set("X-Bot-Key", tt.header)
			}
			assert.Equal(t, tt.want, serve(r, req).Code)
		})
	}

	t.Run("empty configured key locks the group", func(t *testing.T) {
		r := gin.New()
		r.GET("/bot", middleware.BotKey(""), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		req := httptest.NewRequest(http.MethodGet, "/bot", nil)
		assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)
	})
}

type fakeRBAC struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func TestRBACAuthorize(t *testing.T) {
	setup := func(svc middleware.RBACService, withAuth bool) *gin.Engine {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			if withAuth {
				c.Set("user_id", "u-1")
				c.Set("company_id", "c-1")
				c.Set("role", "VIEWER")
			}
		}, middleware.RBACAuthorize(svc, "report", "export"), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		w := serve(setup(svc, true), httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{
			UserID: "u-1", CompanyID: "c-1", Role: "VIEWER", Resource: "report", Action: "export",
		}, svc.got)
	})

	t.Run("denied", func(t *testing.T) {
		w := serve(setup(&fakeRBAC{}, true), httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, w))
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := serve(setup(&fakeRBAC{err: errors.New("boom")}, true), httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no auth context", func(t *testing.T) {
		w := serve(setup(&fakeRBAC{allowed: true}, false), httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRateLimitByIP(t *testing.T) {
	r := gin.New()
	r.GET("/x", middleware.RateLimitByIP(0.001, 2), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		codes[i] = serve(r, req).Code
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/x", nil)
	other.RemoteAddr = "10.0.0.2:1234"
	assert.Equal(t, http.StatusNoContent, serve(r, other).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.GET("/x", middleware.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-ID", "rid-1")
	w := serve(r, req)
	assert.Equal(t, "rid-1", w.Body.String())
	assert.Equal(t, "rid-1", w.Header().Get("X-Request-ID"))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, w.Body.String(), 36)
}

func TestIdempotency(t *testing.T) {
	const path = "/bot/start-day"
	cacheKey := middleware.IdempotencyKey(path, "k-1")
	lockKey := cacheKey + ":lock"

	t.Run("first request runs the handler and stores the answer", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := gin.New()
		r.POST(path, middleware.Idempotency(rdb), func(c *gin.Context) {
			calls++
			c.JSON(http.StatusCreated, gin.H{"ok": true})
		})

		body := `{"ok":true}`
		payload, err := json.Marshal(struct {
			Status int             `json:"status"`
			Body   json.RawMessage `json:"body"`
		}{http.StatusCreated, json.RawMessage(body)})
		require.NoError(t, err)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, 1, 30*time.Second).SetVal(true)
		mock.ExpectSet(cacheKey, string(payload), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		w := serve(r, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("repeat is replayed without running the handler", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := gin.New()
		r.POST(path, middleware.Idempotency(rdb), func(c *gin.Context) {
			calls++
			c.Status(http.StatusTeapot)
		})

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true}}`)

		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		w := serve(r, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, "true", w.Header().Get(middleware.ReplayHeader))
		assert.Zero(t, calls)
	})

	t.Run("concurrent duplicate is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		r := gin.New()
		r.POST(path, middleware.Idempotency(rdb), func(c *gin.Context) { c.Status(http.StatusOK) })

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, 1, 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set(middleware.IdempotencyHeader, "k-1")
		assert.Equal(t, http.StatusConflict, serve(r, req).Code)
	})

	t.Run("no key passes through", func(t *testing.T) {
		r := gin.New()
		r.POST(path, middleware.Idempotency(nil), func(c *gin.Context) { c.Status(http.StatusAccepted) })
		assert.Equal(t, http.StatusAccepted, serve(r, httptest.NewRequest(http.MethodPost, path, nil)).Code)
	})
}
