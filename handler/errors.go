package handler

import (
	"Recycle/pkg/log"
	"Recycle/pkg/response"
	"Recycle/service"
	"errors"

	"go.uber.org/zap"
)

var bizErrors = []struct {
	target error
	biz    *response.BizError
}{
	{service.ErrInvalidArgument, response.BadRequest("Missing required fields")},
	{service.ErrUserNotFound, response.NotFound("User not found")},
	{service.ErrInsufficientPoints, response.BadRequest("Insufficient points")},
	{service.ErrInvalidVoucher, response.BadRequest("Invalid voucher selected")},
	{service.ErrInvalidWasteType, response.BadRequest("Invalid waste type")},
	{service.ErrInvalidPayload, response.BadRequest("Invalid QR payload")},
	{service.ErrUnreadableImage, response.BadRequest("Could not read QR code from image. Please try again.")},
	{service.ErrEmailTaken, response.Conflict("Email already registered")},
	{service.ErrInvalidCredentials, response.Unauthorized("Invalid email or password")},
	{service.ErrSessionExpired, response.Unauthorized("Not authenticated")},
}

// toBizError 业务错误映射为对应状态码，其余按 500 返回 fallback 文案
func toBizError(err error, fallback string) error {
	for _, e := range bizErrors {
		if errors.Is(err, e.target) {
			return e.biz
		}
	}
	log.L.Error(fallback, zap.Error(err))
	return response.Internal(fallback)
}
