package types

import (
	"Recycle/models"
	"strconv"
)

// User 对外展示的用户信息，ID 用字符串避免前端精度丢失
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BarcodeID string `json:"barcodeId,omitempty"`
	Points    int64  `json:"points"`
}

func NewUser(u *models.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        strconv.FormatInt(u.ID, 10),
		Name:      u.Name,
		Email:     u.Email,
		BarcodeID: u.BarcodeID,
		Points:    u.Points,
	}
}

type UserResp struct {
	User *User `json:"user"`
}

type MessageResp struct {
	Message string `json:"message"`
}
