package auth

import (
	"net/http"
	"strings"
	"time"

	autherrors "go-outtime/internal/auth/errors"
	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

// CookieConfig controls the session cookies set for browser clients.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Handler struct {
	service Service
	cookies CookieConfig
}

func NewHandler(s Service, cookies CookieConfig) *Handler {
	if cookies.AccessTTL <= 0 {
		cookies.AccessTTL = 15 * time.Minute
	}
	if cookies.RefreshTTL <= 0 {
		cookies.RefreshTTL = 7 * 24 * time.Hour
	}
	return &Handler{service: s, cookies: cookies}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		zap.L().Named("auth.handler").Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// isWebClient decides whether tokens also travel as cookies.
func isWebClient(c *gin.Context) bool {
	if ct := strings.ToLower(c.GetHeader("X-Client-Type")); ct != "" {
		return ct == "web"
	}
	return strings.Contains(c.GetHeader("User-Agent"), "Mozilla")
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeSession(c *gin.Context, status int, s Session) {
	if isWebClient(c) {
		h.setCookie(c, accessCookie, s.AccessToken, int(h.cookies.AccessTTL.Seconds()))
		h.setCookie(c, refreshCookie, s.RefreshToken, int(h.cookies.RefreshTTL.Seconds()))
	}
	response.Success(c, status, s, nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	s, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeSession(c, http.StatusCreated, s)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	s, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeSession(c, http.StatusOK, s)
}

// RefreshToken reads the refresh token from the cookie first, then the body.
func (h *Handler) RefreshToken(c *gin.Context) {
	raw, _ := c.Cookie(refreshCookie)
	if raw == "" {
		var req RefreshRequest
		_ = c.ShouldBindJSON(&req)
		raw = req.RefreshToken
	}
	if raw == "" {
		writeServiceError(c, autherrors.ErrMissingToken)
		return
	}

	s, err := h.service.RefreshToken(c.Request.Context(), raw)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	h.writeSession(c, http.StatusOK, s)
}

func (h *Handler) Me(c *gin.Context) {
	resp, err := h.service.GetMe(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), c.GetString("user_id"), req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password changed"}, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setCookie(c, accessCookie, "", -1)
	h.setCookie(c, refreshCookie, "", -1)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"}, nil)
}
