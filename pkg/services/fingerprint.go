package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint는 이미지 바이트의 SHA-256 다이제스트를 16진수 문자열로 반환합니다.
// 동일한 바이트는 항상 동일한 지문을 가지며 캐시 키로 사용됩니다.
// 파일명이나 Content-Type과 무관하게 바이트가 같으면 같은 이미지로 취급됩니다.
func Fingerprint(content []byte) string {
	digest := sha256.Sum256(content)
	return hex.EncodeToString(digest[:])
}
