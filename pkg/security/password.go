package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = 12

// HashPassword 使用 bcrypt 哈希密码
func HashPassword(password string) (string, error) {
	if err := ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash 验证密码
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePasswordStrength 验证密码强度
func ValidatePasswordStrength(password string) error {
	if password == "" {
		return errors.New("密码不能为空")
	}
	if len(password) < 6 {
		return errors.New("密码长度不能少于6位")
	}
	if len(password) > 72 {
		return errors.New("密码长度不能超过72位")
	}
	return nil
}
