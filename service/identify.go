package service

import (
	"Recycle/config"
	"Recycle/dao"
	"Recycle/models"
	"Recycle/pkg/qrcode"
	"Recycle/pkg/utils"
	"Recycle/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

var (
	numericID = regexp.MustCompile(`^[0-9]{1,19}$`)
	barcodeID = regexp.MustCompile(`^[A-Z0-9]{4,32}$`)
)

var _ IIdentifyService = (*IdentifyService)(nil)

type IIdentifyService interface {
	// Payload 用户端二维码内容
	Payload(user *models.User) (string, error)
	QRCode(user *models.User) ([]byte, error)
	// Identify 回收机扫码或手输后查找用户
	Identify(ctx context.Context, raw string) (*models.User, error)
	IdentifyImage(ctx context.Context, r io.Reader) (*models.User, error)
}

type IdentifyService struct {
	QRConfig    *config.QRCode
	UserService IUserService
	UsersRepo   *dao.Users
	Now         func() time.Time `wire:"-"`
}

func (s *IdentifyService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *IdentifyService) Payload(user *models.User) (string, error) {
	payload := types.QRPayload{
		UserID:    strconv.FormatInt(user.ID, 10),
		Name:      user.Name,
		Timestamp: s.now().UTC(),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *IdentifyService) QRCode(user *models.User) ([]byte, error) {
	payload, err := s.Payload(user)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(payload, s.QRConfig.Size)
}

func (s *IdentifyService) IdentifyImage(ctx context.Context, r io.Reader) (*models.User, error) {
	text, err := qrcode.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}
	return s.Identify(ctx, text)
}

func (s *IdentifyService) Identify(ctx context.Context, raw string) (*models.User, error) {
	ident, err := ParseIdentity(raw)
	if err != nil {
		return nil, err
	}
	if numericID.MatchString(ident) {
		id, err := strconv.ParseInt(ident, 10, 64)
		if err != nil {
			return nil, ErrInvalidPayload
		}
		return s.UserService.GetUser(ctx, id)
	}
	return s.findByBarcode(ctx, ident)
}

func (s *IdentifyService) findByBarcode(ctx context.Context, code string) (*models.User, error) {
	// 新码可直接解出 ID，旧数据里的条码只能查表
	if id, err := utils.DecodeBarcodeID(s.QRConfig.HashSalt, code); err == nil {
		user, err := s.UserService.GetUser(ctx, id)
		if err == nil || !errors.Is(err, ErrUserNotFound) {
			return user, err
		}
	}
	user, err := s.UsersRepo.FindByBarcode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by barcode: %w", err)
	}
	return user, nil
}

// ParseIdentity 从二维码文本或手输内容里取出用户标识。
// 支持 {"userId": ...}、旧版 {"id": ...}、纯数字 ID 和条码短码。
func ParseIdentity(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPayload
	}

	if strings.HasPrefix(raw, "{") {
		if !gjson.Valid(raw) {
			return "", ErrInvalidPayload
		}
		v := gjson.Get(raw, "userId")
		if !v.Exists() {
			v = gjson.Get(raw, "id")
		}
		if !v.Exists() || (v.Type != gjson.String && v.Type != gjson.Number) {
			return "", ErrInvalidPayload
		}
		// 数字形式的 ID 用原始文本，避免 float64 精度丢失
		if v.Type == gjson.Number {
			raw = v.Raw
		} else {
			raw = strings.TrimSpace(v.Str)
		}
	}

	if numericID.MatchString(raw) {
		return raw, nil
	}
	code := strings.ToUpper(raw)
	if barcodeID.MatchString(code) {
		return code, nil
	}
	return "", ErrInvalidPayload
}
