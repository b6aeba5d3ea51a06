package handler

import (
	"Recycle/pkg/context"
	"Recycle/pkg/response"
	"Recycle/service"
	"Recycle/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Scan 用户端展示给回收机扫描的身份码
type Scan struct {
	IdentifyService service.IIdentifyService
	UserService     service.IUserService
}

func (s *Scan) RegisterRouter(r gin.IRouter, authed gin.HandlerFunc) {
	g := r.Group("/scan", authed)
	g.GET("/payload", context.Wrap(s.Payload))
	g.GET("/qrcode", context.Wrap(s.QRCode))
}

func (s *Scan) Payload(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not authenticated")
	}
	user, err := s.UserService.GetUser(c.Request.Context(), uid)
	if err != nil {
		return toBizError(err, "Failed to build QR payload")
	}
	payload, err := s.IdentifyService.Payload(user)
	if err != nil {
		return toBizError(err, "Failed to build QR payload")
	}
	response.Success(c, types.PayloadResp{Payload: payload})
	return nil
}

func (s *Scan) QRCode(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not authenticated")
	}
	user, err := s.UserService.GetUser(c.Request.Context(), uid)
	if err != nil {
		return toBizError(err, "Failed to build QR code")
	}
	png, err := s.IdentifyService.QRCode(user)
	if err != nil {
		return toBizError(err, "Failed to build QR code")
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
	return nil
}
