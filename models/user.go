package models

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	Name      string    `gorm:"column:name;size:64;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex:uk_email" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	BarcodeID string    `gorm:"column:barcode_id;size:32;uniqueIndex:uk_barcode_id" json:"barcode_id"`
	Points    int64     `gorm:"column:points;not null;default:0" json:"points"` // 不能为负
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
