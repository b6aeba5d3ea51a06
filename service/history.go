package service

import (
	"Recycle/dao"
	"Recycle/models"
	"context"
	"fmt"
)

var _ IHistoryService = (*HistoryService)(nil)

type IHistoryService interface {
	// ListForUser 全量返回，最新的在前
	ListForUser(ctx context.Context, userID int64) ([]*models.WasteHistory, error)
}

type HistoryService struct {
	HistoryRepo *dao.WasteHistory
}

// TODO: 记录量变大后改为按 id 游标分页
func (h *HistoryService) ListForUser(ctx context.Context, userID int64) ([]*models.WasteHistory, error) {
	list, err := h.HistoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list waste history: %w", err)
	}
	return list, nil
}
