package handler

import (
	"Recycle/pkg/context"
	"Recycle/pkg/response"
	"Recycle/service"
	"Recycle/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// 上传图片上限
const maxImageSize = 8 << 20

type Machine struct {
	IdentifyService service.IIdentifyService
	UserService     service.IUserService
}

func (m *Machine) RegisterRouter(r gin.IRouter, machine gin.HandlerFunc) {
	r.GET("/users/:id", machine, context.Wrap(m.GetUser))
	r.POST("/machine/identify", machine, context.Wrap(m.Identify))
}

func (m *Machine) GetUser(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.NotFound("User not found")
	}
	user, err := m.UserService.GetUser(c.Request.Context(), id)
	if err != nil {
		return toBizError(err, "Failed to fetch user")
	}
	response.Success(c, types.NewUser(user))
	return nil
}

// Identify 支持 multipart 上传二维码图片，或 JSON/表单提交扫描结果与手输条码
func (m *Machine) Identify(c *gin.Context) error {
	ctx := c.Request.Context()

	if file, err := c.FormFile("image"); err == nil {
		if file.Size > maxImageSize {
			return response.NewError(http.StatusRequestEntityTooLarge, "Image too large")
		}
		f, err := file.Open()
		if err != nil {
			return toBizError(errors.Join(service.ErrUnreadableImage, err), "Failed to identify user")
		}
		defer f.Close()

		user, err := m.IdentifyService.IdentifyImage(ctx, f)
		if err != nil {
			return toBizError(err, "Failed to identify user")
		}
		response.Success(c, types.IdentifyResp{User: types.NewUser(user)})
		return nil
	}

	var req types.IdentifyReq
	if err := c.ShouldBind(&req); err != nil || req.Code == "" {
		return response.BadRequest("Provide a QR image or a code")
	}
	user, err := m.IdentifyService.Identify(ctx, req.Code)
	if err != nil {
		return toBizError(err, "Failed to identify user")
	}
	response.Success(c, types.IdentifyResp{User: types.NewUser(user)})
	return nil
}
