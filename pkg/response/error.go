package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BizError Code 即 HTTP 状态码
type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func BadRequest(msg string) *BizError   { return NewError(http.StatusBadRequest, msg) }
func Unauthorized(msg string) *BizError { return NewError(http.StatusUnauthorized, msg) }
func NotFound(msg string) *BizError     { return NewError(http.StatusNotFound, msg) }
func Conflict(msg string) *BizError     { return NewError(http.StatusConflict, msg) }
func Internal(msg string) *BizError     { return NewError(http.StatusInternalServerError, msg) }

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Error: msg})
}
