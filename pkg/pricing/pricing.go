// Package pricing 保存回收品类积分和兑换券价格，两张表都是静态的，不接受用户修改。
package pricing

import "strings"

type WasteType struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PointsPerUnit int64  `json:"pointsPerUnit"`
	WeightInGrams int    `json:"weightInGrams"`
}

type Voucher struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Provider   string `json:"provider"`
	PointsCost int64  `json:"pointsCost"`
	Value      int    `json:"value"` // 面值，单位卢比
}

// 回收机按钮对应的大类
var wasteCategories = []WasteType{
	{ID: "plastic", Name: "Plastic", PointsPerUnit: 10, WeightInGrams: 20},
	{ID: "paper", Name: "Paper", PointsPerUnit: 5, WeightInGrams: 50},
	{ID: "glass", Name: "Glass", PointsPerUnit: 15, WeightInGrams: 200},
	{ID: "metal", Name: "Metal", PointsPerUnit: 20, WeightInGrams: 15},
}

// 按单品计价的目录
var wasteItems = []WasteType{
	{ID: "plastic-bottle", Name: "Plastic Bottle", PointsPerUnit: 20, WeightInGrams: 20},
	{ID: "plastic-wrap", Name: "Plastic Wrap", PointsPerUnit: 5, WeightInGrams: 5},
	{ID: "glass-bottle", Name: "Glass Bottle", PointsPerUnit: 30, WeightInGrams: 200},
	{ID: "cardboard", Name: "Cardboard", PointsPerUnit: 15, WeightInGrams: 100},
	{ID: "aluminum-can", Name: "Aluminum Can", PointsPerUnit: 25, WeightInGrams: 15},
}

var vouchers = []Voucher{
	{ID: "amazon-100", Name: "₹100 Amazon Voucher", Provider: "Amazon", PointsCost: 10000, Value: 100},
	{ID: "zomato-100", Name: "₹100 Zomato Voucher", Provider: "Zomato", PointsCost: 10000, Value: 100},
	{ID: "swiggy-10", Name: "₹10 Swiggy Voucher", Provider: "Swiggy", PointsCost: 100, Value: 10},
	{ID: "flipkart-10", Name: "₹10 Flipkart Voucher", Provider: "Flipkart", PointsCost: 100, Value: 10},
}

var (
	wasteIndex   = make(map[string]WasteType)
	voucherIndex = make(map[string]Voucher)
)

func init() {
	for _, w := range wasteCategories {
		wasteIndex[w.ID] = w
	}
	for _, w := range wasteItems {
		wasteIndex[w.ID] = w
	}
	for _, v := range vouchers {
		voucherIndex[v.ID] = v
	}
}

// WasteTypes 返回全部回收品类，大类在前
func WasteTypes() []WasteType {
	out := make([]WasteType, 0, len(wasteCategories)+len(wasteItems))
	out = append(out, wasteCategories...)
	return append(out, wasteItems...)
}

func LookupWasteType(id string) (WasteType, bool) {
	w, ok := wasteIndex[strings.ToLower(strings.TrimSpace(id))]
	return w, ok
}

// PointsFor 计算 quantity 件该品类应得积分，quantity<=0 按 1 件算
// MaxQuantity 单次投放的件数上限
const MaxQuantity = 10000

// PointsFor quantity 超过 MaxQuantity 时返回 false
func PointsFor(id string, quantity int) (int64, bool) {
	w, ok := LookupWasteType(id)
	if !ok || quantity > MaxQuantity {
		return 0, false
	}
	if quantity <= 0 {
		quantity = 1
	}
	return w.PointsPerUnit * int64(quantity), true
}

func Vouchers() []Voucher {
	out := make([]Voucher, len(vouchers))
	copy(out, vouchers)
	return out
}

func LookupVoucher(id string) (Voucher, bool) {
	v, ok := voucherIndex[id]
	return v, ok
}
