package service

import (
	"Recycle/dao"
	"Recycle/dao/cache"
	"Recycle/pkg/testutil"
	"Recycle/pkg/voucher"
	"testing"

	"gorm.io/gorm"
)

type suite struct {
	db        *gorm.DB
	users     *dao.Users
	history   *dao.WasteHistory
	vouchers  *dao.Voucher
	user      *UserService
	point     *PointService
	historySv *HistoryService
	voucher   *VoucherService
	identify  *IdentifyService
	auth      *AuthService
	dashboard *DashboardService
}

func newSuite(t *testing.T) *suite {
	t.Helper()
	conf := testutil.TestConfig()
	db := testutil.NewDB(t)
	rdb, _ := testutil.NewRedis(t)

	s := &suite{
		db:       db,
		users:    dao.NewUsers(db),
		history:  dao.NewWasteHistory(db),
		vouchers: dao.NewVoucher(db),
	}
	s.user = &UserService{UsersRepo: s.users}
	s.point = &PointService{DB: db, UsersRepo: s.users, HistoryRepo: s.history}
	s.historySv = &HistoryService{HistoryRepo: s.history}
	s.voucher = &VoucherService{DB: db, VoucherRepo: s.vouchers, PointService: s.point, Generator: voucher.NewGenerator()}
	s.identify = &IdentifyService{QRConfig: conf.QRCode, UserService: s.user, UsersRepo: s.users}
	s.auth = &AuthService{Config: conf, UsersRepo: s.users, Session: cache.NewSessionStorage(rdb)}
	s.dashboard = &DashboardService{UserService: s.user, HistoryService: s.historySv}
	return s
}
