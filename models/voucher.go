package models

import "time"

// IssuedVoucher 已发放的兑换码，code 全局唯一
type IssuedVoucher struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_voucher_user" json:"user_id"`
	VoucherID string    `gorm:"column:voucher_id;size:32;not null" json:"voucher_id"`
	Code      string    `gorm:"column:code;size:32;not null;uniqueIndex:uk_voucher_code" json:"code"`
	Cost      int64     `gorm:"column:cost;not null" json:"cost"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (IssuedVoucher) TableName() string {
	return "issued_vouchers"
}
