package jwt

import (
	"errors"
	"fmt"
	"time"

	"petadot/pkg/config"

	"github.com/golang-jwt/jwt/v4"
)

// JWT错误定义
var (
	ErrTokenExpired     = errors.New("token已过期")
	ErrTokenNotValidYet = errors.New("token尚未激活")
	ErrTokenMalformed   = errors.New("token格式错误")
	ErrTokenInvalid     = errors.New("token无效")
)

// CustomClaims JWT载荷
type CustomClaims struct {
	UID     uint   `json:"uid"`
	Role    string `json:"role"` // individual 或 ong
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenType 令牌类型
type TokenType string

const (
	TokenTypeAdmin TokenType = "admin"
	TokenTypeApp   TokenType = "app"
)

// JWTManager JWT管理器
type JWTManager struct {
	signingKey []byte
	tokenType  TokenType
}

// NewJWTManager 创建JWT管理器
func NewJWTManager(tokenType TokenType) *JWTManager {
	signingKey := config.GetConfig().JWT.SigningKey
	if signingKey == "" {
		signingKey = "default-secret-key" // 开发环境默认值，生产环境必须设置
	}

	return &JWTManager{
		signingKey: []byte(signingKey),
		tokenType:  tokenType,
	}
}

// GenerateToken 生成token
func (j *JWTManager) GenerateToken(uid uint, role string, isAdmin bool, duration ...time.Duration) (string, error) {
	expiry := config.GetConfig().JWT.Expiry
	if len(duration) > 0 {
		expiry = duration[0]
	}

	claims := CustomClaims{
		UID:     uid,
		Role:    role,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    fmt.Sprintf("%s-%s", config.GetConfig().JWT.Issuer, j.tokenType),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.signingKey)
}

// ParseToken 解析token
func (j *JWTManager) ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return j.signingKey, nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorMalformed != 0:
				return nil, ErrTokenMalformed
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrTokenExpired
			case ve.Errors&jwt.ValidationErrorNotValidYet != 0:
				return nil, ErrTokenNotValidYet
			}
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	// 校验签发方与令牌类型一致
	expectedIssuer := fmt.Sprintf("%s-%s", config.GetConfig().JWT.Issuer, j.tokenType)
	if claims.Issuer != expectedIssuer {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// ParseAppToken 解析App端token
func ParseAppToken(tokenString string) (*CustomClaims, error) {
	return NewJWTManager(TokenTypeApp).ParseToken(tokenString)
}

// ParseAdminToken 解析管理端token
func ParseAdminToken(tokenString string) (*CustomClaims, error) {
	return NewJWTManager(TokenTypeAdmin).ParseToken(tokenString)
}
