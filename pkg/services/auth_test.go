package service

import (
	"strings"
	"testing"

	constants "github.com/flexbone/ocr-go/pkg/types"
)

func TestLoginSuccess(t *testing.T) {
	auth := NewAuthService(testConfig())

	token, expiresIn, appErr := auth.Login("demo", "demo123")
	if appErr != nil {
		t.Fatalf("올바른 자격 증명으로 로그인 실패: %v", appErr)
	}
	if token == "" {
		t.Error("빈 토큰이 발급되었습니다")
	}
	// header.payload.signature
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("JWT 형식이 아닙니다: %d개 구간", len(parts))
	}
	if expiresIn != 30*60 {
		t.Errorf("expiresIn = %d, want %d", expiresIn, 30*60)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	auth := NewAuthService(testConfig())

	_, _, appErr := auth.Login("demo", "wrong-password")
	if appErr == nil {
		t.Fatal("잘못된 비밀번호가 통과했습니다")
	}
	if appErr.Code != constants.ERR_AUTHENTICATION {
		t.Errorf("Code = %s, want %s", appErr.Code, constants.ERR_AUTHENTICATION)
	}
	if appErr.StatusCode != 401 {
		t.Errorf("StatusCode = %d, want 401", appErr.StatusCode)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	auth := NewAuthService(testConfig())

	_, _, appErr := auth.Login("nobody", "demo123")
	if appErr == nil || appErr.Code != constants.ERR_AUTHENTICATION {
		t.Errorf("존재하지 않는 사용자가 거부되지 않았습니다: %v", appErr)
	}
}

func TestVerifyTokenRoundtrip(t *testing.T) {
	auth := NewAuthService(testConfig())

	token, _, appErr := auth.Login("demo", "demo123")
	if appErr != nil {
		t.Fatalf("로그인 실패: %v", appErr)
	}

	sub, appErr := auth.VerifyToken(token)
	if appErr != nil {
		t.Fatalf("발급 직후 토큰 검증 실패: %v", appErr)
	}
	if sub != "demo" {
		t.Errorf("sub = %q, want %q", sub, "demo")
	}
}

func TestVerifyTokenTampered(t *testing.T) {
	auth := NewAuthService(testConfig())

	token, _, _ := auth.Login("demo", "demo123")

	// 서명 구간 변조
	tampered := token[:len(token)-2] + "xx"

	if _, appErr := auth.VerifyToken(tampered); appErr == nil {
		t.Error("변조된 토큰이 검증을 통과했습니다")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(testConfig())

	otherConfig := testConfig()
	otherConfig.Auth.JWTSecret = "a-different-secret"
	verifier := NewAuthService(otherConfig)

	token, _, _ := issuer.Login("demo", "demo123")

	if _, appErr := verifier.VerifyToken(token); appErr == nil {
		t.Error("다른 비밀 키로 서명된 토큰이 통과했습니다")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	auth := NewAuthService(testConfig())

	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, appErr := auth.VerifyToken(tokenString); appErr == nil {
			t.Errorf("%q: 잘못된 토큰이 통과했습니다", tokenString)
		}
	}
}
