package service

import "errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUserNotFound       = errors.New("user not found")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidVoucher     = errors.New("invalid voucher")
	ErrInvalidWasteType   = errors.New("unknown waste type")
	ErrInvalidPayload     = errors.New("invalid qr payload")
	ErrUnreadableImage    = errors.New("unreadable qr image")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
)
