package handler_test

import (
	"Recycle/config"
	"Recycle/dao"
	"Recycle/dao/cache"
	"Recycle/handler"
	"Recycle/pkg/server"
	"Recycle/pkg/testutil"
	"Recycle/pkg/voucher"
	"Recycle/service"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testApp struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
	conf   *config.Config
}

func newTestApp(t *testing.T, machineKeys ...string) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := testutil.TestConfig()
	conf.Machine.Keys = machineKeys
	db := testutil.NewDB(t)
	rdb, _ := testutil.NewRedis(t)

	users := dao.NewUsers(db)
	history := dao.NewWasteHistory(db)
	sessions := cache.NewSessionStorage(rdb)

	userSv := &service.UserService{UsersRepo: users}
	pointSv := &service.PointService{DB: db, UsersRepo: users, HistoryRepo: history}
	historySv := &service.HistoryService{HistoryRepo: history}
	voucherSv := &service.VoucherService{DB: db, VoucherRepo: dao.NewVoucher(db), PointService: pointSv, Generator: voucher.NewGenerator()}
	identifySv := &service.IdentifyService{QRConfig: conf.QRCode, UserService: userSv, UsersRepo: users}
	authSv := &service.AuthService{Config: conf, UsersRepo: users, Session: sessions}

	h := &server.Handlers{
		Auth:    &handler.Auth{AuthService: authSv, UserService: userSv},
		Point:   &handler.Point{PointService: pointSv, VoucherService: voucherSv},
		History: &handler.History{HistoryService: historySv, VoucherService: voucherSv, DashboardService: &service.DashboardService{UserService: userSv, HistoryService: historySv}},
		Machine: &handler.Machine{IdentifyService: identifySv, UserService: userSv},
		Scan:    &handler.Scan{IdentifyService: identifySv, UserService: userSv},
		Pricing: &handler.Pricing{},
	}
	return &testApp{t: t, engine: server.NewGinEngine(h, conf, sessions), db: db, conf: conf}
}

func (a *testApp) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	a.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// login 用种子用户的默认密码登录，返回 Authorization 头
func (a *testApp) login(email string) map[string]string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/login", gin.H{"email": email, "password": "password123"}, nil)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	decode(a.t, w, &resp)
	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decode(t, w, &body)
	return body.Error
}

type userView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int64  `json:"points"`
}

func TestAddPoints(t *testing.T) {
	app := newTestApp(t)
	u := testutil.SeedUser(t, app.db, "asha", 0)

	w := app.do(http.MethodPost, "/api/points/add", gin.H{
		"userId":    strconv.FormatInt(u.ID, 10),
		"points":    10,
		"wasteType": "plastic",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Message      string   `json:"message"`
		User         userView `json:"user"`
		WasteHistory struct {
			Type   string `json:"type"`
			Points int64  `json:"points"`
		} `json:"wasteHistory"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "Points added successfully", resp.Message)
	assert.Equal(t, int64(10), resp.User.Points)
	assert.Equal(t, strconv.FormatInt(u.ID, 10), resp.User.ID)
	assert.Equal(t, "plastic", resp.WasteHistory.Type)
	assert.Equal(t, int64(10), resp.WasteHistory.Points)
}

func TestAddPoints_Errors(t *testing.T) {
	app := newTestApp(t)
	u := testutil.SeedUser(t, app.db, "ravi", 0)

	w := app.do(http.MethodPost, "/api/points/add", gin.H{"userId": u.ID, "wasteType": "plastic"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields", errorOf(t, w))

	w = app.do(http.MethodPost, "/api/points/add", gin.H{"userId": "999", "points": 5, "wasteType": "paper"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", errorOf(t, w))

	w = app.do(http.MethodPost, "/api/points/add", gin.H{"userId": "abc", "points": 5, "wasteType": "paper"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecycle(t *testing.T) {
	app := newTestApp(t)
	u := testutil.SeedUser(t, app.db, "sara", 0)

	w := app.do(http.MethodPost, "/api/machine/recycle", gin.H{
		"userId":    u.ID,
		"wasteType": "glass-bottle",
		"quantity":  2,
		"machineId": "kiosk-1",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		User userView `json:"user"`
	}
	decode(t, w, &resp)
	assert.Equal(t, int64(60), resp.User.Points)

	w = app.do(http.MethodPost, "/api/machine/recycle", gin.H{"userId": u.ID, "wasteType": "plastic", "quantity": 1 << 40}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, "/api/machine/recycle", gin.H{"userId": u.ID, "wasteType": "tyres"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid waste type", errorOf(t, w))
}

func TestMachineKey(t *testing.T) {
	app := newTestApp(t, "kiosk-secret")
	u := testutil.SeedUser(t, app.db, "omar", 0)
	body := gin.H{"userId": u.ID, "points": 5, "wasteType": "paper"}

	w := app.do(http.MethodPost, "/api/points/add", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(http.MethodPost, "/api/points/add", body, map[string]string{"X-Machine-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(http.MethodPost, "/api/points/add", body, map[string]string{"X-Machine-Key": "kiosk-secret"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/users/"+strconv.FormatInt(u.ID, 10), nil, map[string]string{"X-Machine-Key": "kiosk-secret"})
	require.Equal(t, http.StatusOK, w.Code)
	var view userView
	decode(t, w, &view)
	assert.Equal(t, int64(5), view.Points)
}

func TestGetUser_NotFound(t *testing.T) {
	app := newTestApp(t)
	w := app.do(http.MethodGet, "/api/users/12345", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", errorOf(t, w))

	w = app.do(http.MethodGet, "/api/users/not-a-number", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRedeem(t *testing.T) {
	app := newTestApp(t)
	poor := testutil.SeedUser(t, app.db, "tara", 50)
	rich := testutil.SeedUser(t, app.db, "vikram", 10000)

	auth := app.login(poor.Email)
	for i := 0; i < 2; i++ {
		w := app.do(http.MethodPost, "/api/points/redeem", gin.H{"voucherId": "swiggy-10"}, auth)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Insufficient points", errorOf(t, w))
	}
	w := app.do(http.MethodGet, "/api/auth/me", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		User userView `json:"user"`
	}
	decode(t, w, &me)
	assert.Equal(t, int64(50), me.User.Points)

	w = app.do(http.MethodPost, "/api/points/redeem", gin.H{"voucherId": "bogus"}, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid voucher selected", errorOf(t, w))

	auth = app.login(rich.Email)
	w = app.do(http.MethodPost, "/api/points/redeem", gin.H{"voucherId": "zomato-100"}, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Message     string   `json:"message"`
		User        userView `json:"user"`
		VoucherCode string   `json:"voucherCode"`
	}
	decode(t, w, &resp)
	assert.Zero(t, resp.User.Points)
	assert.Regexp(t, `^ZMTO-[0-9]{6}-[A-Z0-9]{6}-[A-Z0-9]{2}$`, resp.VoucherCode)

	w = app.do(http.MethodGet, "/api/vouchers", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var vouchers struct {
		Vouchers []struct {
			Code string `json:"code"`
		} `json:"vouchers"`
	}
	decode(t, w, &vouchers)
	require.Len(t, vouchers.Vouchers, 1)
	assert.Equal(t, resp.VoucherCode, vouchers.Vouchers[0].Code)
}

func TestHistoryAndDashboard(t *testing.T) {
	app := newTestApp(t)
	u := testutil.SeedUser(t, app.db, "hana", 0)
	for _, typ := range []string{"plastic", "metal"} {
		w := app.do(http.MethodPost, "/api/points/add", gin.H{"userId": u.ID, "points": 10, "wasteType": typ}, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := app.do(http.MethodGet, "/api/history", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	auth := app.login(u.Email)
	w = app.do(http.MethodGet, "/api/history", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		History []struct {
			Type string `json:"type"`
		} `json:"history"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.History, 2)
	assert.Equal(t, "metal", resp.History[0].Type)
	assert.Equal(t, "plastic", resp.History[1].Type)

	w = app.do(http.MethodGet, "/api/dashboard", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var dash struct {
		User    userView `json:"user"`
		History []any    `json:"history"`
	}
	decode(t, w, &dash)
	assert.Equal(t, int64(20), dash.User.Points)
	assert.Len(t, dash.History, 2)
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodPost, "/api/auth/signup", gin.H{"name": "Priya", "email": "priya@example.com", "password": "hunter22"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.do(http.MethodPost, "/api/auth/signup", gin.H{"name": "Priya", "email": "priya@example.com", "password": "hunter22"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = app.do(http.MethodPost, "/api/auth/signup", gin.H{"name": "X", "email": "not-an-email", "password": "hunter22"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(http.MethodPost, "/api/auth/login", gin.H{"email": "priya@example.com", "password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(http.MethodPost, "/api/auth/login", gin.H{"email": "priya@example.com", "password": "hunter22"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	auth := map[string]string{"Authorization": "Bearer " + login.Token}

	w = app.do(http.MethodGet, "/api/auth/me", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodPost, "/api/auth/logout", nil, auth)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/api/auth/me", nil, auth)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", errorOf(t, w))

	w = app.do(http.MethodGet, "/api/auth/me", nil, map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScanAndIdentify(t *testing.T) {
	app := newTestApp(t)
	u := testutil.SeedUser(t, app.db, "zoya", 7)
	auth := app.login(u.Email)

	w := app.do(http.MethodGet, "/api/scan/payload", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Payload string `json:"payload"`
	}
	decode(t, w, &payload)
	assert.Contains(t, payload.Payload, strconv.FormatInt(u.ID, 10))

	w = app.do(http.MethodPost, "/api/machine/identify", gin.H{"code": payload.Payload}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ident struct {
		User userView `json:"user"`
	}
	decode(t, w, &ident)
	assert.Equal(t, int64(7), ident.User.Points)

	w = app.do(http.MethodPost, "/api/machine/identify", gin.H{"code": "?!"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid QR payload", errorOf(t, w))

	w = app.do(http.MethodGet, "/api/scan/qrcode", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	png := w.Body.Bytes()

	w = app.upload(t, "/api/machine/identify", png)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decode(t, w, &ident)
	assert.Equal(t, strconv.FormatInt(u.ID, 10), ident.User.ID)

	w = app.upload(t, "/api/machine/identify", []byte("garbage"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Could not read QR code from image. Please try again.", errorOf(t, w))
}

func (a *testApp) upload(t *testing.T, path string, image []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "qr.png")
	require.NoError(t, err)
	_, err = fw.Write(image)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func TestPricingAndHealth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(http.MethodGet, "/api/pricing/vouchers", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var vouchers struct {
		Vouchers []struct {
			ID         string `json:"id"`
			PointsCost int64  `json:"pointsCost"`
		} `json:"vouchers"`
	}
	decode(t, w, &vouchers)
	assert.Len(t, vouchers.Vouchers, 4)

	w = app.do(http.MethodGet, "/api/pricing/waste-types", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
