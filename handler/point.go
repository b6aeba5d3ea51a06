package handler

import (
	"Recycle/pkg/context"
	"Recycle/pkg/response"
	"Recycle/service"
	"Recycle/types"

	"github.com/gin-gonic/gin"
)

type Point struct {
	PointService   service.IPointService
	VoucherService service.IVoucherService
}

func (p *Point) RegisterRouter(r gin.IRouter, authed, machine gin.HandlerFunc) {
	r.POST("/points/add", machine, context.Wrap(p.Add))
	r.POST("/machine/recycle", machine, context.Wrap(p.Recycle))
	r.POST("/points/redeem", authed, context.Wrap(p.Redeem))
}

// Add 回收机按积分直接入账
func (p *Point) Add(c *gin.Context) error {
	var req types.AddPointsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Missing required fields")
	}

	res, err := p.PointService.Credit(c.Request.Context(), &service.CreditOpt{
		UserID:    int64(req.UserID),
		Points:    req.Points,
		WasteType: req.WasteType,
	})
	if err != nil {
		return toBizError(err, "Failed to process waste")
	}
	response.Success(c, types.AddPointsResp{
		Message:      "Points added successfully",
		User:         types.NewUser(res.User),
		WasteHistory: types.NewWasteHistory(res.History),
	})
	return nil
}

// Recycle 回收机上报品类和数量，按价目表计分
func (p *Point) Recycle(c *gin.Context) error {
	var req types.RecycleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("Missing required fields")
	}

	res, err := p.PointService.Recycle(c.Request.Context(), &service.RecycleOpt{
		UserID:    int64(req.UserID),
		WasteType: req.WasteType,
		Quantity:  req.Quantity,
		MachineID: req.MachineID,
		Meta:      req.Meta,
	})
	if err != nil {
		return toBizError(err, "Failed to process waste")
	}
	response.Success(c, types.AddPointsResp{
		Message:      "Points added successfully",
		User:         types.NewUser(res.User),
		WasteHistory: types.NewWasteHistory(res.History),
	})
	return nil
}

func (p *Point) Redeem(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not authenticated")
	}
	var req types.RedeemReq
	if err := c.ShouldBindJSON(&req); err != nil || req.VoucherID == "" {
		return response.BadRequest("Invalid voucher selected")
	}

	res, err := p.VoucherService.Redeem(c.Request.Context(), uid, req.VoucherID)
	if err != nil {
		return toBizError(err, "Failed to redeem points")
	}
	response.Success(c, types.RedeemResp{
		Message:     "Voucher redeemed successfully",
		User:        types.NewUser(res.User),
		VoucherCode: res.Code,
	})
	return nil
}
