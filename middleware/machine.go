package middleware

import (
	"Recycle/config"
	"Recycle/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
)

const MachineKeyHeader = "X-Machine-Key"

// Machine 回收机终端鉴权
func Machine(conf *config.Machine) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !conf.Allowed(c.GetHeader(MachineKeyHeader)) {
			response.Abort(c, http.StatusUnauthorized, "Invalid machine key")
			return
		}
		c.Next()
	}
}
