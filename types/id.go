package types

import (
	"bytes"
	"errors"
	"strconv"
)

// ID 兼容 "123" 和 123 两种写法，输出统一为字符串
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || string(b) == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return errors.New("invalid id")
	}
	*id = ID(v)
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatInt(int64(id), 10))), nil
}
