package handler

import (
	"Recycle/pkg/context"
	"Recycle/pkg/response"
	"Recycle/service"
	"Recycle/types"

	"github.com/gin-gonic/gin"
)

type History struct {
	HistoryService   service.IHistoryService
	VoucherService   service.IVoucherService
	DashboardService service.IDashboardService
}

func (h *History) RegisterRouter(r gin.IRouter, authed gin.HandlerFunc) {
	g := r.Group("/", authed)
	g.GET("/history", context.Wrap(h.List))
	g.GET("/vouchers", context.Wrap(h.Vouchers))
	g.GET("/dashboard", context.Wrap(h.Dashboard))
}

func (h *History) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not authenticated")
	}
	list, err := h.HistoryService.ListForUser(c.Request.Context(), uid)
	if err != nil {
		return toBizError(err, "Failed to fetch history")
	}
	response.Success(c, types.HistoryResp{History: types.NewWasteHistoryList(list)})
	return nil
}

func (h *History) Vouchers(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not authenticated")
	}
	list, err := h.VoucherService.ListIssued(c.Request.Context(), uid)
	if err != nil {
		return toBizError(err, "Failed to fetch vouchers")
	}
	response.Success(c, types.VouchersResp{Vouchers: types.NewIssuedVoucherList(list)})
	return nil
}

func (h *History) Dashboard(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("Not authenticated")
	}
	d, err := h.DashboardService.Dashboard(c.Request.Context(), uid)
	if err != nil {
		return toBizError(err, "Failed to load dashboard")
	}
	response.Success(c, types.DashboardResp{
		User:    types.NewUser(d.User),
		History: types.NewWasteHistoryList(d.History),
	})
	return nil
}
