package middleware

import (
	"Recycle/pkg/context"
	"Recycle/pkg/jwt"
	"Recycle/pkg/log"
	"Recycle/pkg/response"
	stdctx "context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionStore 登录会话，登出后 token 即失效
type SessionStore interface {
	Get(ctx stdctx.Context, tokenID string) (int64, error)
}

func Auth(secret []byte, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Invalid authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		userID, err := sessions.Get(c.Request.Context(), claims.ID)
		if err != nil || userID != claims.UserID {
			log.L.Debug("session rejected", zap.String("token_id", claims.ID), zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxTokenID, claims.ID)
		c.Next()
	}
}
