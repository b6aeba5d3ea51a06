package dao

import (
	"Recycle/models"
	"context"

	"gorm.io/gorm"
)

type WasteHistory struct {
	Repo[models.WasteHistory]
}

func NewWasteHistory(db *gorm.DB) *WasteHistory {
	return &WasteHistory{
		Repo: NewRepo[models.WasteHistory](db),
	}
}

// ListByUser 最新的在前，不分页
func (w *WasteHistory) ListByUser(ctx context.Context, userID int64) ([]*models.WasteHistory, error) {
	return w.FindAll(ctx, "created_at DESC, id DESC", "user_id = ?", userID)
}

func (w *WasteHistory) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := w.Model(ctx).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
