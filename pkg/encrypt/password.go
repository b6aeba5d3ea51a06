package encrypt

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt 加密，超过 72 字节返回 bcrypt.ErrPasswordTooLong
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
