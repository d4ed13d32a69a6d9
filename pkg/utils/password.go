package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword bcrypt 自带随机盐和 cost，哈希串自描述，不用单独存盐
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword 密码不匹配返回 (false, nil)；库里的哈希坏了才算 error
func CheckPassword(pw, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
