package types

import (
	"Recycle/models"
	"time"
)

type IssuedVoucher struct {
	VoucherID string    `json:"voucherId"`
	Code      string    `json:"code"`
	Cost      int64     `json:"cost"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewIssuedVoucherList(list []*models.IssuedVoucher) []*IssuedVoucher {
	out := make([]*IssuedVoucher, 0, len(list))
	for _, v := range list {
		out = append(out, &IssuedVoucher{
			VoucherID: v.VoucherID,
			Code:      v.Code,
			Cost:      v.Cost,
			CreatedAt: v.CreatedAt,
		})
	}
	return out
}

type VouchersResp struct {
	Vouchers []*IssuedVoucher `json:"vouchers"`
}
