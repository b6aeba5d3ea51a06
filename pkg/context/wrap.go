package context

import (
	"Recycle/pkg/log"
	"Recycle/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID  = "user_id"
	CtxTokenID = "token_id"
)

var ErrNoUser = errors.New("user_id 不存在")

type HandlerFunc func(*gin.Context) error

func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil || c.Writer.Written() {
			return
		}
		var be *response.BizError
		if errors.As(err, &be) {
			response.Fail(c, be.Code, be.Msg)
			return
		}
		log.L.Error("unhandled error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, ErrNoUser
	}
	uid, ok := v.(int64)
	if !ok || uid == 0 {
		return 0, errors.New("user_id 类型错误")
	}
	return uid, nil
}

func GetTokenID(c *gin.Context) string {
	return c.GetString(CtxTokenID)
}
