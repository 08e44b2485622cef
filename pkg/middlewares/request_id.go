package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// 요청 ID를 보관하는 로컬 키
const RequestIDKey = "requestID"

// RequestID 미들웨어는 요청마다 고유 ID를 부여하고 응답 헤더에 싣습니다.
// 클라이언트가 X-Request-ID를 보냈으면 그대로 사용합니다.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set("X-Request-ID", requestID)

		return c.Next()
	}
}

// GetRequestID는 컨텍스트에서 요청 ID를 꺼냅니다
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDKey).(string); ok {
		return id
	}
	return "unknown"
}
