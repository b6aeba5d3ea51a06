package dao

import (
	"Recycle/models"
	"context"

	"gorm.io/gorm"
)

type Voucher struct {
	Repo[models.IssuedVoucher]
}

func NewVoucher(db *gorm.DB) *Voucher {
	return &Voucher{
		Repo: NewRepo[models.IssuedVoucher](db),
	}
}

func (v *Voucher) IsCodeExist(ctx context.Context, code string) (bool, error) {
	return v.IsExist(ctx, "code = ?", code)
}

func (v *Voucher) ListByUser(ctx context.Context, userID int64) ([]*models.IssuedVoucher, error) {
	return v.FindAll(ctx, "created_at DESC, id DESC", "user_id = ?", userID)
}
