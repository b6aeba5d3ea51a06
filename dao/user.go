package dao

import (
	"Recycle/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.FindByWhere(ctx, "email = ?", email)
}

func (u *Users) FindByBarcode(ctx context.Context, barcodeID string) (*models.User, error) {
	return u.FindByWhere(ctx, "barcode_id = ?", barcodeID)
}

func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.IsExist(ctx, "email = ?", email)
}

func (u *Users) SetBarcode(ctx context.Context, id int64, barcodeID string) error {
	return u.Model(ctx).Where("id = ?", id).Update("barcode_id", barcodeID).Error
}

// IncrPoints 原子加分，返回受影响行数（0 表示用户不存在）
func (u *Users) IncrPoints(ctx context.Context, id int64, points int64) (int64, error) {
	result := u.Model(ctx).
		Where("id = ?", id).
		Update("points", gorm.Expr("points + ?", points))
	return result.RowsAffected, result.Error
}

// DecrPoints 原子扣分，余额不足或用户不存在时影响行数为 0
func (u *Users) DecrPoints(ctx context.Context, id int64, points int64) (int64, error) {
	result := u.Model(ctx).
		Where("id = ? AND points >= ?", id, points).
		Update("points", gorm.Expr("points - ?", points))
	return result.RowsAffected, result.Error
}
