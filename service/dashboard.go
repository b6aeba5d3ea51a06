package service

import (
	"Recycle/models"
	"context"

	"github.com/sourcegraph/conc/pool"
)

var _ IDashboardService = (*DashboardService)(nil)

type IDashboardService interface {
	Dashboard(ctx context.Context, userID int64) (*Dashboard, error)
}

type DashboardService struct {
	UserService    IUserService
	HistoryService IHistoryService
}

type Dashboard struct {
	User    *models.User
	History []*models.WasteHistory
}

// Dashboard 用户信息和回收记录并行查询
func (d *DashboardService) Dashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	var out Dashboard

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		user, err := d.UserService.GetUser(ctx, userID)
		out.User = user
		return err
	})
	p.Go(func(ctx context.Context) error {
		history, err := d.HistoryService.ListForUser(ctx, userID)
		out.History = history
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
