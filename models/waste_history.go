package models

import (
	"time"

	"gorm.io/datatypes"
)

// WasteHistory 每次回收入账一条，只增不改
type WasteHistory struct {
	ID        int64             `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	UserID    int64             `gorm:"column:user_id;not null;index:idx_user_created,priority:1" json:"user_id"`
	Type      string            `gorm:"column:type;size:64;not null" json:"type"`
	Points    int64             `gorm:"column:points;not null" json:"points"`
	Quantity  int               `gorm:"column:quantity;not null;default:1" json:"quantity"`
	MachineID string            `gorm:"column:machine_id;size:64" json:"machine_id,omitempty"`
	Meta      datatypes.JSONMap `gorm:"column:meta" json:"meta,omitempty"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime;index:idx_user_created,priority:2" json:"created_at"`
}

func (WasteHistory) TableName() string {
	return "waste_histories"
}
