package service

import (
	"Recycle/dao"
	"Recycle/models"
	"Recycle/pkg/log"
	"Recycle/pkg/metrics"
	"Recycle/pkg/pricing"
	"Recycle/pkg/snowflake"
	"Recycle/pkg/voucher"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 兑换码碰撞时的最大重试次数
const maxCodeAttempts = 5

var _ IVoucherService = (*VoucherService)(nil)

type IVoucherService interface {
	// Redeem 扣除券对应积分并发放兑换码，扣分与发码在同一事务内
	Redeem(ctx context.Context, userID int64, voucherID string) (*RedeemResult, error)
	ListIssued(ctx context.Context, userID int64) ([]*models.IssuedVoucher, error)
}

type VoucherService struct {
	DB           *gorm.DB
	VoucherRepo  *dao.Voucher
	PointService IPointService
	Generator    *voucher.Generator
}

type RedeemResult struct {
	User *models.User
	Code string
}

func (v *VoucherService) Redeem(ctx context.Context, userID int64, voucherID string) (*RedeemResult, error) {
	item, ok := pricing.LookupVoucher(voucherID)
	if !ok {
		metrics.ObserveRedeemRejected("invalid_voucher")
		return nil, ErrInvalidVoucher
	}

	var result RedeemResult
	err := dao.Transaction(ctx, v.DB, func(ctx context.Context) error {
		user, err := v.PointService.Debit(ctx, userID, item.PointsCost)
		if err != nil {
			return err
		}

		code, err := v.uniqueCode(ctx, item.ID)
		if err != nil {
			return err
		}
		issued := &models.IssuedVoucher{
			ID:        snowflake.GenID(),
			UserID:    userID,
			VoucherID: item.ID,
			Code:      code,
			Cost:      item.PointsCost,
		}
		if err := v.VoucherRepo.Create(ctx, issued); err != nil {
			return fmt.Errorf("save issued voucher: %w", err)
		}

		result.User = user
		result.Code = code
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientPoints) {
			metrics.ObserveRedeemRejected("insufficient_points")
		}
		return nil, err
	}

	metrics.ObserveVoucherIssued(item.ID)
	log.L.Info("voucher issued",
		zap.Int64("user_id", userID),
		zap.String("voucher_id", item.ID),
		zap.Int64("balance", result.User.Points),
	)
	return &result, nil
}

func (v *VoucherService) uniqueCode(ctx context.Context, voucherID string) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := v.Generator.Generate(voucherID)
		exists, err := v.VoucherRepo.IsCodeExist(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check voucher code: %w", err)
		}
		if !exists {
			return code, nil
		}
		log.L.Warn("voucher code collision", zap.String("code", code))
	}
	return "", errors.New("could not generate a unique voucher code")
}

func (v *VoucherService) ListIssued(ctx context.Context, userID int64) ([]*models.IssuedVoucher, error) {
	list, err := v.VoucherRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list issued vouchers: %w", err)
	}
	return list, nil
}
