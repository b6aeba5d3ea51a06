package service

import (
	"Recycle/config"
	"Recycle/dao"
	"Recycle/dao/cache"
	"Recycle/models"
	"Recycle/pkg/encrypt"
	"Recycle/pkg/jwt"
	"Recycle/pkg/log"
	"Recycle/pkg/snowflake"
	"Recycle/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Signup(ctx context.Context, opt *SignupOpt) (*models.User, error)
	Login(ctx context.Context, email string, password string) (*LoginResult, error)
	Logout(ctx context.Context, tokenID string) error
}

type AuthService struct {
	Config    *config.Config
	UsersRepo *dao.Users
	Session   *cache.SessionStorage
}

type SignupOpt struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresIn int64
}

// Signup 注册，同时生成供回收机手输的条码
func (a *AuthService) Signup(ctx context.Context, opt *SignupOpt) (*models.User, error) {
	if opt == nil || strings.TrimSpace(opt.Name) == "" || opt.Email == "" || opt.Password == "" {
		return nil, ErrInvalidArgument
	}
	email := strings.ToLower(strings.TrimSpace(opt.Email))

	exists, err := a.UsersRepo.IsEmailExist(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := encrypt.HashPassword(opt.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrInvalidArgument
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := snowflake.GenID()
	barcode, err := utils.GenBarcodeID(a.Config.QRCode.HashSalt, id)
	if err != nil {
		return nil, fmt.Errorf("gen barcode: %w", err)
	}

	user := &models.User{
		ID:        id,
		Name:      strings.TrimSpace(opt.Name),
		Email:     email,
		Password:  hash,
		BarcodeID: barcode,
	}
	if err := a.UsersRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.L.Info("user signed up", zap.Int64("user_id", user.ID))
	return user, nil
}

func (a *AuthService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	user, err := a.UsersRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	ttl := a.Config.Jwt.TTL()
	tokenID := uuid.NewString()
	token, err := jwt.GenerateToken([]byte(a.Config.Jwt.Secret), user.ID, tokenID, jwt.TypeAccess, ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	if err := a.Session.Save(ctx, tokenID, user.ID, ttl); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(ttl.Seconds()),
	}, nil
}

func (a *AuthService) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return ErrSessionExpired
	}
	return a.Session.Delete(ctx, tokenID)
}
