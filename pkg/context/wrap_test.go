package context

import (
	"Recycle/pkg/response"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/x", Wrap(h))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestWrapBizError(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return response.NotFound("User not found")
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

func TestWrapPlainError(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return errors.New("dial tcp: connection refused")
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestWrapAlreadyWritten(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		c.String(http.StatusTeapot, "tea")
		return errors.New("ignored")
	})
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "tea", w.Body.String())
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, err := GetUserID(c)
	assert.ErrorIs(t, err, ErrNoUser)

	c.Set(CtxUserID, int64(7))
	uid, err := GetUserID(c)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), uid)
}
