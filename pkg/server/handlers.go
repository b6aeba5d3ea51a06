package server

import (
	"Recycle/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	Point   *handler.Point
	History *handler.History
	Machine *handler.Machine
	Scan    *handler.Scan
	Pricing *handler.Pricing
}
