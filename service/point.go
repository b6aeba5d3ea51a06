package service

import (
	"Recycle/dao"
	"Recycle/models"
	"Recycle/pkg/log"
	"Recycle/pkg/metrics"
	"Recycle/pkg/pricing"
	"Recycle/pkg/snowflake"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IPointService = (*PointService)(nil)

type IPointService interface {
	// Credit 加分并追加一条回收记录，两步在同一事务内
	Credit(ctx context.Context, opt *CreditOpt) (*CreditResult, error)
	// Debit 扣分，余额不足返回 ErrInsufficientPoints
	Debit(ctx context.Context, userID int64, points int64) (*models.User, error)
	// Recycle 按价目表计算积分后入账
	Recycle(ctx context.Context, opt *RecycleOpt) (*CreditResult, error)
}

type PointService struct {
	DB          *gorm.DB
	UsersRepo   *dao.Users
	HistoryRepo *dao.WasteHistory
}

type CreditOpt struct {
	UserID    int64
	Points    int64
	WasteType string
	Quantity  int
	MachineID string
	Meta      map[string]any
}

type RecycleOpt struct {
	UserID    int64
	WasteType string
	Quantity  int
	MachineID string
	Meta      map[string]any
}

type CreditResult struct {
	User    *models.User
	History *models.WasteHistory
}

func (p *PointService) Credit(ctx context.Context, opt *CreditOpt) (*CreditResult, error) {
	if opt == nil || opt.UserID <= 0 || opt.Points <= 0 || strings.TrimSpace(opt.WasteType) == "" {
		return nil, ErrInvalidArgument
	}
	quantity := opt.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var result CreditResult
	err := dao.Transaction(ctx, p.DB, func(ctx context.Context) error {
		rows, err := p.UsersRepo.IncrPoints(ctx, opt.UserID, opt.Points)
		if err != nil {
			return fmt.Errorf("increment points: %w", err)
		}
		if rows == 0 {
			return ErrUserNotFound
		}

		record := &models.WasteHistory{
			ID:        snowflake.GenID(),
			UserID:    opt.UserID,
			Type:      strings.TrimSpace(opt.WasteType),
			Points:    opt.Points,
			Quantity:  quantity,
			MachineID: opt.MachineID,
		}
		if len(opt.Meta) > 0 {
			record.Meta = datatypes.JSONMap(opt.Meta)
		}
		if err := p.HistoryRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("create waste history: %w", err)
		}

		user, err := p.UsersRepo.FindById(ctx, opt.UserID)
		if err != nil {
			return fmt.Errorf("reload user: %w", err)
		}
		result.User = user
		result.History = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveCredit(result.History.Type, opt.Points)
	log.L.Info("points credited",
		zap.Int64("user_id", opt.UserID),
		zap.Int64("points", opt.Points),
		zap.String("type", result.History.Type),
		zap.Int64("balance", result.User.Points),
	)
	return &result, nil
}

func (p *PointService) Debit(ctx context.Context, userID int64, points int64) (*models.User, error) {
	if userID <= 0 || points <= 0 {
		return nil, ErrInvalidArgument
	}

	var user *models.User
	err := dao.Transaction(ctx, p.DB, func(ctx context.Context) error {
		rows, err := p.UsersRepo.DecrPoints(ctx, userID, points)
		if err != nil {
			return fmt.Errorf("decrement points: %w", err)
		}
		if rows == 0 {
			// 区分用户不存在和余额不足
			exists, err := p.UsersRepo.IsExist(ctx, "id = ?", userID)
			if err != nil {
				return fmt.Errorf("check user: %w", err)
			}
			if !exists {
				return ErrUserNotFound
			}
			return ErrInsufficientPoints
		}

		user, err = p.UsersRepo.FindById(ctx, userID)
		if err != nil {
			return fmt.Errorf("reload user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveDebit(points)
	return user, nil
}

func (p *PointService) Recycle(ctx context.Context, opt *RecycleOpt) (*CreditResult, error) {
	if opt == nil || opt.UserID <= 0 || strings.TrimSpace(opt.WasteType) == "" {
		return nil, ErrInvalidArgument
	}
	if opt.Quantity > pricing.MaxQuantity {
		return nil, ErrInvalidArgument
	}
	w, ok := pricing.LookupWasteType(opt.WasteType)
	if !ok {
		return nil, ErrInvalidWasteType
	}
	points, _ := pricing.PointsFor(w.ID, opt.Quantity)
	quantity := max(opt.Quantity, 1)

	meta := make(map[string]any, len(opt.Meta)+1)
	for k, v := range opt.Meta {
		meta[k] = v
	}
	meta["weight_grams"] = w.WeightInGrams * quantity

	return p.Credit(ctx, &CreditOpt{
		UserID:    opt.UserID,
		Points:    points,
		WasteType: w.ID,
		Quantity:  quantity,
		MachineID: opt.MachineID,
		Meta:      meta,
	})
}
