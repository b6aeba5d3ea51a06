package voucher

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	alphabet       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	fallbackPrefix = "FLPK"
)

var prefixes = map[string]string{
	"amazon":   "AMZN",
	"zomato":   "ZMTO",
	"swiggy":   "SWGY",
	"flipkart": "FLPK",
}

// Prefix 按券 ID 的供应商段（第一个 '-' 之前）选前缀
func Prefix(voucherID string) string {
	provider, _, _ := strings.Cut(strings.ToLower(voucherID), "-")
	if p, ok := prefixes[provider]; ok {
		return p
	}
	return fallbackPrefix
}

// Generator 生成 PREFIX-DDDDDD-XXXXXX-YY 格式的兑换码
type Generator struct {
	Now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{Now: time.Now}
}

func (g *Generator) Generate(voucherID string) string {
	millis := strconv.FormatInt(g.Now().UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	millis = strings.Repeat("0", 6-len(millis)) + millis

	var b strings.Builder
	b.WriteString(Prefix(voucherID))
	b.WriteByte('-')
	b.WriteString(millis)
	b.WriteByte('-')
	b.WriteString(randomString(6))
	b.WriteByte('-')
	b.WriteString(randomString(2))
	return b.String()
}

func randomString(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
