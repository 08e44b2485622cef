package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/flexbone/ocr-go/pkg/configs"
	constants "github.com/flexbone/ocr-go/pkg/types"
	response "github.com/flexbone/ocr-go/pkg/types/dtos/responses"
)

// RateLimit 미들웨어는 IP당 요청 수를 제한합니다.
// 설정에서 꺼져 있으면 검사 없이 통과시킵니다.
func RateLimit(config *configs.EnvConfig) fiber.Handler {
	if !config.RateLimit.Enabled {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	window := time.Duration(config.RateLimit.WindowSeconds) * time.Second

	return limiter.New(limiter.Config{
		Max:        config.RateLimit.Requests,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(response.Error{
				Success: false,
				Error: response.ErrorDetail{
					Code:    constants.ERR_RATE_LIMIT,
					Message: "Rate limit exceeded, try again later",
					Details: map[string]interface{}{
						"retry_after_seconds": config.RateLimit.WindowSeconds,
					},
				},
				Metadata: response.Metadata{
					RequestID:        GetRequestID(c),
					ProcessingTimeMs: 0,
				},
			})
		},
	})
}
