package types

import (
	"Recycle/models"
	"strconv"
	"time"
)

// AddPointsReq 回收机直接按积分入账
type AddPointsReq struct {
	UserID    ID     `json:"userId"`
	Points    int64  `json:"points"`
	WasteType string `json:"wasteType"`
}

// RecycleReq 回收机按品类计价入账
type RecycleReq struct {
	UserID    ID             `json:"userId"`
	WasteType string         `json:"wasteType"`
	Quantity  int            `json:"quantity" binding:"max=10000"`
	MachineID string         `json:"machineId"`
	Meta      map[string]any `json:"meta"`
}

type AddPointsResp struct {
	Message      string        `json:"message"`
	User         *User         `json:"user"`
	WasteHistory *WasteHistory `json:"wasteHistory"`
}

type RedeemReq struct {
	VoucherID string `json:"voucherId"`
}

type RedeemResp struct {
	Message     string `json:"message"`
	User        *User  `json:"user"`
	VoucherCode string `json:"voucherCode"`
}

type WasteHistory struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Points    int64     `json:"points"`
	Quantity  int       `json:"quantity"`
	MachineID string    `json:"machineId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewWasteHistory(h *models.WasteHistory) *WasteHistory {
	if h == nil {
		return nil
	}
	return &WasteHistory{
		ID:        strconv.FormatInt(h.ID, 10),
		Type:      h.Type,
		Points:    h.Points,
		Quantity:  h.Quantity,
		MachineID: h.MachineID,
		CreatedAt: h.CreatedAt,
	}
}

func NewWasteHistoryList(list []*models.WasteHistory) []*WasteHistory {
	out := make([]*WasteHistory, 0, len(list))
	for _, h := range list {
		out = append(out, NewWasteHistory(h))
	}
	return out
}

type HistoryResp struct {
	History []*WasteHistory `json:"history"`
}

type DashboardResp struct {
	User    *User           `json:"user"`
	History []*WasteHistory `json:"history"`
}
