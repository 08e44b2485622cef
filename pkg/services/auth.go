package service

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flexbone/ocr-go/pkg/configs"
	_interface "github.com/flexbone/ocr-go/pkg/interfaces"
	structure "github.com/flexbone/ocr-go/pkg/types/structures"
	"github.com/flexbone/ocr-go/pkg/utils"
)

// AuthImpl은 데모 사용자 인증 서비스 구현체입니다.
// 설정의 데모 사용자 목록으로 자격 증명을 확인하고 HS256 JWT를 발급합니다.
type AuthImpl struct {
	config *configs.EnvConfig
	users  map[string]string
}

// NewAuthService는 새 인증 서비스를 생성합니다
func NewAuthService(config *configs.EnvConfig) _interface.AuthService {
	return &AuthImpl{
		config: config,
		users:  config.ParsedDemoUsers(),
	}
}

// Login은 자격 증명을 확인하고 액세스 토큰과 만료 시간(초)을 반환합니다
func (a *AuthImpl) Login(username string, password string) (string, int64, *structure.AppError) {
	stored, exists := a.users[username]
	if !exists || subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		utils.Warn("auth", "로그인 실패: %s", username)
		return "", 0, structure.NewAuthenticationError("Invalid username or password")
	}

	expiresIn := int64(a.config.Auth.JWTExpirationMinutes) * 60
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": username,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(expiresIn) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.config.Auth.JWTSecret))
	if err != nil {
		utils.Error("auth", "토큰 서명 실패: %v", err)
		return "", 0, structure.NewAuthenticationError("Failed to issue token")
	}

	return signed, expiresIn, nil
}

// VerifyToken은 토큰을 검증하고 사용자 이름(sub)을 반환합니다
func (a *AuthImpl) VerifyToken(tokenString string) (string, *structure.AppError) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.config.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", structure.NewAuthenticationError("Invalid or malformed token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", structure.NewAuthenticationError("Invalid or malformed token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", structure.NewAuthenticationError("Invalid or malformed token")
	}

	return sub, nil
}
