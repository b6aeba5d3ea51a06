package handler

import (
	"Recycle/pkg/pricing"
	"Recycle/pkg/response"

	"github.com/gin-gonic/gin"
)

type Pricing struct{}

func (p *Pricing) RegisterRouter(r gin.IRouter) {
	g := r.Group("/pricing")
	g.GET("/waste-types", p.WasteTypes)
	g.GET("/vouchers", p.Vouchers)
}

func (p *Pricing) WasteTypes(c *gin.Context) {
	response.Success(c, gin.H{"wasteTypes": pricing.WasteTypes()})
}

func (p *Pricing) Vouchers(c *gin.Context) {
	response.Success(c, gin.H{"vouchers": pricing.Vouchers()})
}
