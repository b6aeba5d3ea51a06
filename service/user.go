package service

import (
	"Recycle/dao"
	"Recycle/models"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
}

type UserService struct {
	UsersRepo *dao.Users
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	user, err := s.UsersRepo.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}
