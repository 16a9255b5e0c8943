package middleware

import (
	"go-outtime/internal/domain"
	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/contextutil"
	"go-outtime/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by rbac.Service; declared here so routes do not
// import the rbac package.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		companyID := c.GetString("company_id")
		if userID == "" || companyID == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			UserID:    userID,
			CompanyID: companyID,
			Role:      c.GetString("role"),
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), zap.L()).Error("rbac enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			abortWith(c, apperror.ErrInternal)
			return
		}
		if !allowed {
			response.Abort(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code,
				"You do not have permission to "+action+" "+resource)
			return
		}
		c.Next()
	}
}
