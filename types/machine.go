package types

import "time"

// QRPayload 用户端二维码内容，只有 userId 是必需的
type QRPayload struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type IdentifyReq struct {
	Code string `json:"code" form:"code"`
}

type IdentifyResp struct {
	User *User `json:"user"`
}

type PayloadResp struct {
	Payload string `json:"payload"`
}
