package utils

import (
	"errors"

	"github.com/speps/go-hashids/v2"
)

const barcodeMinLength = 10

func newHashID(salt string) (*hashids.HashID, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = barcodeMinLength
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	return hashids.NewWithData(hd)
}

// GenBarcodeID 把用户 ID 编成纯字母短码，回收机可手动录入，不会与数字 ID 混淆
func GenBarcodeID(salt string, id int64) (string, error) {
	h, err := newHashID(salt)
	if err != nil {
		return "", err
	}
	return h.EncodeInt64([]int64{id})
}

// DecodeBarcodeID GenBarcodeID 的逆运算
func DecodeBarcodeID(salt string, code string) (int64, error) {
	h, err := newHashID(salt)
	if err != nil {
		return 0, err
	}
	ids, err := h.DecodeInt64WithError(code)
	if err != nil {
		return 0, err
	}
	if len(ids) != 1 {
		return 0, errors.New("invalid barcode")
	}
	return ids[0], nil
}
