package service

import (
	"Recycle/pkg/testutil"
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Z]{4}-[0-9]{6}-[A-Z0-9]{6}-[A-Z0-9]{2}$`)

func TestRedeem_InsufficientBalanceLeavesUserUnchanged(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, s.db, "tara", 50)

	for i := 0; i < 3; i++ {
		_, err := s.voucher.Redeem(ctx, u.ID, "swiggy-10")
		assert.ErrorIs(t, err, ErrInsufficientPoints)
	}

	got, err := s.user.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), got.Points)

	issued, err := s.voucher.ListIssued(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, issued)
}

func TestRedeem_ExactBalance(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, s.db, "vikram", 10000)

	res, err := s.voucher.Redeem(ctx, u.ID, "amazon-100")
	require.NoError(t, err)
	assert.Zero(t, res.User.Points)
	assert.Regexp(t, codePattern, res.Code)
	assert.Equal(t, "AMZN-", res.Code[:5])

	issued, err := s.voucher.ListIssued(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, issued, 1)
	assert.Equal(t, res.Code, issued[0].Code)
	assert.Equal(t, "amazon-100", issued[0].VoucherID)
	assert.Equal(t, int64(10000), issued[0].Cost)

	exists, err := s.vouchers.IsCodeExist(ctx, res.Code)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRedeem_CodesAreDistinct(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, s.db, "lina", 1000)

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		res, err := s.voucher.Redeem(ctx, u.ID, "flipkart-10")
		require.NoError(t, err)
		assert.Equal(t, "FLPK-", res.Code[:5])
		_, dup := seen[res.Code]
		assert.False(t, dup, "duplicate code %s", res.Code)
		seen[res.Code] = struct{}{}
	}

	got, err := s.user.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Points)
}

func TestRedeem_InvalidVoucher(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, s.db, "omar", 500)

	_, err := s.voucher.Redeem(ctx, u.ID, "netflix-500")
	assert.ErrorIs(t, err, ErrInvalidVoucher)

	got, err := s.user.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), got.Points)
}

func TestRedeem_UserNotFound(t *testing.T) {
	s := newSuite(t)
	_, err := s.voucher.Redeem(context.Background(), 424242, "zomato-100")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
