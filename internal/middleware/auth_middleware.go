package middleware

import (
	"crypto/subtle"
	"errors"
	"strings"

	autherrors "go-outtime/internal/auth/errors"
	"go-outtime/internal/auth/token"
	"go-outtime/internal/shared/apperror"
	"go-outtime/internal/shared/contextutil"
	"go-outtime/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Abort(c, err.HTTPStatus, err.Code, err.Message)
}

// AuthMiddleware accepts a bearer token or the access_token cookie and puts
// user_id, company_id and role on both the gin and the request context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw string
		if v, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
			raw = strings.TrimSpace(v)
		}
		if raw == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				raw = cookie
			}
		}
		if raw == "" {
			abortWith(c, autherrors.ErrMissingToken)
			return
		}

		claims, err := token.Parse(secret, raw, token.TypeAccess)
		if err != nil {
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				appErr = autherrors.ErrInvalidToken
			}
			abortWith(c, appErr)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("company_id", claims.CompanyID)
		c.Set("role", claims.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		ctx = contextutil.WithCompanyID(ctx, claims.CompanyID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// BotKey guards the endpoints the bot process calls over HTTP.
func BotKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-Bot-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			abortWith(c, autherrors.ErrInvalidBotKey)
			return
		}
		c.Next()
	}
}
