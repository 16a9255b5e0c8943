package dashboard

import (
	"net/http"

	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("dashboard request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Overview(c *gin.Context) {
	resp, err := h.service.Overview(c.Request.Context(), c.GetString("company_id"), c.Query("date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Weekly(c *gin.Context) {
	resp, err := h.service.Weekly(c.Request.Context(), c.GetString("company_id"), c.Query("end_date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) QuickActions(c *gin.Context) {
	resp, err := h.service.QuickActions(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Notifications(c *gin.Context) {
	items, err := h.service.Notifications(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if items == nil {
		items = []Notification{}
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": items, "total": len(items)}, nil)
}

func (h *Handler) EmployeeDetails(c *gin.Context) {
	resp, err := h.service.EmployeeDetails(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SettingsStats(c *gin.Context) {
	resp, err := h.service.SettingsStats(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
